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

package problem

import (
	"errors"
	"fmt"
	"maps"
)

// Error is the structured error carrier: an intentionally raised failure
// that already describes itself as a problem.
//
// It carries:
//   - Status: the HTTP status code to respond with;
//   - Payload: the problem fields (title and detail required, type and
//     instance optional, arbitrary extensions);
//   - Cause: an optional wrapped error for errors.Is / errors.As.
//
// Payload.Type and Payload.Instance are left empty unless supplied; an error
// handler defaults them. Payload.Status is ignored in favour of Status.
//
// All mutation helpers (WithX) return a shallow copy, so Error values can be
// declared once at package level and refined per call site.
type Error struct {
	Status  int
	Payload Detail
	Cause   error
}

// New wraps payload with an explicit status. Both are stored unchanged; no
// field is validated.
func New(status int, payload Detail) *Error {
	return &Error{Status: status, Payload: payload}
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return problem.E(http.StatusBadRequest,
//	    "You do not have enough credit.",
//	    "Your current balance is 30, but that costs 50.",
//	    problem.WithType("https://example.com/probs/out-of-credit"),
//	    problem.WithExtension("balance", 30),
//	)
//
// Options are applied in order.
func E(status int, title, detail string, opts ...Option) *Error {
	e := &Error{Status: status, Payload: Detail{Title: title, Detail: detail}}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) && pe != nil {
		return pe, true
	}
	return nil, false
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<status> <title>: <detail>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d %s: %s", e.Status, e.Payload.Title, e.Payload.Detail)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// HTTPStatus returns the status the error was raised with.
func (e *Error) HTTPStatus() int { return e.Status }

// Problem returns a copy of the payload as supplied by the caller.
func (e *Error) Problem() Detail { return e.Payload.Clone() }

// WithType returns a copy of e with the problem type URI set.
func (e *Error) WithType(uri string) *Error {
	cp := *e
	cp.Payload.Type = uri
	return &cp
}

// WithInstance returns a copy of e with the problem instance set.
func (e *Error) WithInstance(instance string) *Error {
	cp := *e
	cp.Payload.Instance = instance
	return &cp
}

// WithExtension returns a copy of e with one extra extension member.
//
// The extension map is always copied, so the receiver is never modified.
func (e *Error) WithExtension(k string, v any) *Error {
	cp := *e
	m := make(map[string]any, len(e.Payload.Extensions)+1)
	maps.Copy(m, e.Payload.Extensions)
	m[k] = v
	cp.Payload.Extensions = m
	return &cp
}

// WithExtensions returns a copy of e with kv merged into its extensions,
// kv taking precedence on conflicts.
func (e *Error) WithExtensions(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(e.Payload.Extensions)+len(kv))
	maps.Copy(m, e.Payload.Extensions)
	maps.Copy(m, kv)
	cp.Payload.Extensions = m
	return &cp
}

// WithCause returns a copy of e with the given underlying cause attached.
// If err is nil, e is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
