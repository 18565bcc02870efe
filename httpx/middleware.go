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

package httpx

import (
	"fmt"
	"net/http"

	"dirpx.dev/problem/handler"
	"dirpx.dev/problem/httperr"
)

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Wrap adapts fn to http.Handler. A returned error is written by h as a
// problem details response.
func Wrap(h *handler.Handler, fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.HandleContext(r.Context(), err, NewContext(w, r))
		}
	})
}

// Recover returns middleware that turns a panic in next into a problem
// response. Panic values that are errors keep their identity, so a
// panicking *problem.Error is still rendered as a structured problem.
// http.ErrAbortHandler is re-panicked.
func Recover(h *handler.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				h.HandleContext(r.Context(), PanicError(rec), NewContext(w, r))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// NotFound responds with a 404 problem whose detail is "Cannot <METHOD> <path>".
func NotFound(h *handler.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.HandleContext(r.Context(), httperr.RouteNotFound(r.Method, r.URL.Path), NewContext(w, r))
	})
}

// MethodNotAllowed responds with a 405 problem.
func MethodNotAllowed(h *handler.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := httperr.MethodNotAllowed(fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path))
		h.HandleContext(r.Context(), err, NewContext(w, r))
	})
}

// PanicError converts a recovered panic value to an error. Error values are
// returned as-is.
func PanicError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("%v", v)
}
