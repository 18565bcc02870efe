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

// Package ginx connects the problem handler to gin.
//
//	h := handler.New(handler.WithSlog(logger))
//	r := gin.New()
//	r.Use(ginx.Middleware(h))
//	r.NoRoute(ginx.NoRoute(h))
//
// Handlers report failures with c.Error(err) or by panicking; the middleware
// writes the last reported error as a problem details response unless the
// handler already wrote a response.
package ginx

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"dirpx.dev/problem/apis"
	"dirpx.dev/problem/handler"
	"dirpx.dev/problem/httperr"
	"dirpx.dev/problem/httpx"
)

var _ apis.Context = (*Context)(nil)

// Context adapts *gin.Context to apis.Context.
type Context struct {
	c *gin.Context
}

// NewContext wraps c.
func NewContext(c *gin.Context) *Context {
	return &Context{c: c}
}

// RequestPath returns the path of the request URL.
func (x *Context) RequestPath() string { return x.c.Request.URL.Path }

// SetStatus sets the response status.
func (x *Context) SetStatus(code int) { x.c.Status(code) }

// SetHeader sets a response header.
func (x *Context) SetHeader(name, value string) { x.c.Header(name, value) }

// SendJSON writes body. It fails with httpx.ErrAlreadySent when gin already
// wrote a response.
func (x *Context) SendJSON(body any) error {
	if x.c.Writer.Written() {
		return httpx.ErrAlreadySent
	}
	b, err := json.Marshal(body)
	if err != nil {
		x.c.Status(http.StatusInternalServerError)
		x.c.Writer.WriteHeaderNow()
		return err
	}
	_, err = x.c.Writer.Write(b)
	return err
}

// Middleware recovers panics and renders the last error recorded with
// c.Error as a problem. Install it first so it covers every handler.
func Middleware(h *handler.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			c.Abort()
			h.HandleContext(c.Request.Context(), httpx.PanicError(rec), NewContext(c))
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		h.HandleContext(c.Request.Context(), c.Errors.Last().Err, NewContext(c))
	}
}

// NoRoute renders a 404 problem for unmatched requests.
func NoRoute(h *handler.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.HandleContext(c.Request.Context(), httperr.RouteNotFound(c.Request.Method, c.Request.URL.Path), NewContext(c))
		c.Abort()
	}
}
