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

// Package httpx connects the problem handler to net/http.
//
// Context adapts an http.ResponseWriter and *http.Request to apis.Context.
// Wrap, Recover, NotFound and MethodNotAllowed cover the usual ways an error
// reaches the edge of a net/http server: a handler returning it, a handler
// panicking, or the router finding nothing to dispatch to.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"dirpx.dev/problem/apis"
)

var _ apis.Context = (*Context)(nil)

// ErrAlreadySent is returned by SendJSON after the response was written.
var ErrAlreadySent = errors.New("httpx: response already sent")

// Context is a single-use apis.Context over net/http.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	status int
	sent   bool
}

// NewContext wraps w and r.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{w: w, r: r, status: http.StatusOK}
}

// RequestPath returns the path of the request URL.
func (c *Context) RequestPath() string {
	if c.r == nil || c.r.URL == nil {
		return ""
	}
	return c.r.URL.Path
}

// SetStatus records the status written by SendJSON.
func (c *Context) SetStatus(code int) { c.status = code }

// SetHeader sets a response header.
func (c *Context) SetHeader(name, value string) { c.w.Header().Set(name, value) }

// SendJSON writes the status line and body. Only the first call writes.
func (c *Context) SendJSON(body any) error {
	if c.sent {
		return ErrAlreadySent
	}
	c.sent = true

	b, err := json.Marshal(body)
	if err != nil {
		c.w.WriteHeader(http.StatusInternalServerError)
		return err
	}
	c.w.WriteHeader(c.status)
	_, err = c.w.Write(b)
	return err
}

// Sent reports whether SendJSON has been called.
func (c *Context) Sent() bool { return c.sent }
