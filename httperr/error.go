/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httperr

import (
	"fmt"
	"net/http"
	"strings"

	"dirpx.dev/problem/apis"
)

var (
	_ apis.TitledException     = (*Exception)(nil)
	_ apis.ValidationException = (*Validation)(nil)
)

// Exception is a framework HTTP exception.
type Exception struct {
	// Status is the HTTP status code.
	Status int

	// Name is the exception type name, e.g. "NotFoundException".
	Name string

	// Title is the explicit problem title. Empty means "derive from Name".
	Title string

	// Message is the human-readable message. It becomes the problem detail.
	Message string
}

// New builds an exception without an explicit title. An empty message
// defaults to the status phrase.
func New(status int, name, message string) *Exception {
	if message == "" {
		message = http.StatusText(status)
	}
	return &Exception{Status: status, Name: name, Message: message}
}

// Error implements the built-in error interface.
func (e *Exception) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

// HTTPStatus implements apis.HTTPException.
func (e *Exception) HTTPStatus() int { return e.Status }

// ExceptionName implements apis.HTTPException.
func (e *Exception) ExceptionName() string { return e.Name }

// ExceptionTitle implements apis.TitledException.
func (e *Exception) ExceptionTitle() string { return e.Title }

// WithMessage returns a copy of e with a replaced message.
func (e *Exception) WithMessage(msg string) *Exception {
	cp := *e
	cp.Message = msg
	return &cp
}

// Validation is a rejected-input exception carrying one or more messages.
type Validation struct {
	Exception
	Details []string
}

// Error returns the first message, or the status phrase when there is none.
func (v *Validation) Error() string {
	if v == nil {
		return "<nil>"
	}
	if len(v.Details) > 0 {
		return v.Details[0]
	}
	return v.Message
}

// Messages implements apis.ValidationException.
func (v *Validation) Messages() []string { return v.Details }

// RouteNotFound is the exception a router raises when nothing matches the
// request. Its message has the form "Cannot GET /path".
func RouteNotFound(method, path string) *Exception {
	return NotFound(fmt.Sprintf("Cannot %s %s", strings.ToUpper(method), path))
}
