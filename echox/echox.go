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

// Package echox connects the problem handler to echo.
//
//	h := handler.New()
//	e := echo.New()
//	e.HTTPErrorHandler = echox.ErrorHandler(h)
//	e.Use(middleware.Recover())
//
// echo reports its own failures, route-not-found included, as
// *echo.HTTPError. ErrorHandler turns those into framework HTTP exceptions
// (400 becomes the validation exception) before classification, so they get
// the same titles as any other exception. echo's Recover middleware hands
// panics to the same error handler.
package echox

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"dirpx.dev/problem/apis"
	"dirpx.dev/problem/handler"
	"dirpx.dev/problem/httperr"
	"dirpx.dev/problem/httpx"
)

var _ apis.Context = (*Context)(nil)

// Context adapts echo.Context to apis.Context.
type Context struct {
	c      echo.Context
	status int
}

// NewContext wraps c.
func NewContext(c echo.Context) *Context {
	return &Context{c: c, status: http.StatusOK}
}

// RequestPath returns the path of the request URL.
func (x *Context) RequestPath() string { return x.c.Request().URL.Path }

// SetStatus records the status written by SendJSON.
func (x *Context) SetStatus(code int) { x.status = code }

// SetHeader sets a response header.
func (x *Context) SetHeader(name, value string) { x.c.Response().Header().Set(name, value) }

// SendJSON writes the status line and body unless the response is already
// committed.
func (x *Context) SendJSON(body any) error {
	res := x.c.Response()
	if res.Committed {
		return httpx.ErrAlreadySent
	}
	b, err := json.Marshal(body)
	if err != nil {
		res.WriteHeader(http.StatusInternalServerError)
		return err
	}
	res.WriteHeader(x.status)
	_, err = res.Write(b)
	return err
}

// ErrorHandler returns an echo.HTTPErrorHandler writing problem responses.
func ErrorHandler(h *handler.Handler) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		h.HandleContext(c.Request().Context(), Convert(err), NewContext(c))
	}
}

// Convert replaces err with the matching framework exception when err itself
// is an *echo.HTTPError. Wrapping errors are returned unchanged, so a
// *problem.Error caused by an echo error is still classified as structured.
func Convert(err error) error {
	he, ok := err.(*echo.HTTPError)
	if !ok || he == nil {
		return err
	}
	msg := message(he)
	if he.Code == http.StatusBadRequest {
		return httperr.BadRequest(msg)
	}
	ex := httperr.New(he.Code, exceptionName(he.Code), msg)
	ex.Title = http.StatusText(he.Code)
	return ex
}

func message(he *echo.HTTPError) string {
	switch m := he.Message.(type) {
	case string:
		return m
	case nil:
		return http.StatusText(he.Code)
	case error:
		return m.Error()
	default:
		return fmt.Sprint(m)
	}
}

// exceptionName builds "<StatusPhrase>Exception" from the status phrase,
// keeping only letters, e.g. 404 → "NotFoundException".
func exceptionName(status int) string {
	var b strings.Builder
	for _, w := range strings.Fields(http.StatusText(status)) {
		for _, r := range w {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				b.WriteRune(r)
			}
		}
	}
	if b.Len() == 0 {
		b.WriteString("Http")
	}
	b.WriteString("Exception")
	return b.String()
}
