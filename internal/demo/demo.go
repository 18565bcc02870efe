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

// Package demo is a small chi application that exercises every error
// category through net/http. It backs cmd/problemd and the end-to-end
// tests.
package demo

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dirpx.dev/problem"
	"dirpx.dev/problem/handler"
	"dirpx.dev/problem/httperr"
	"dirpx.dev/problem/httpx"
)

// Service is the business layer behind the demo routes.
type Service struct{}

// Hello returns the greeting served at /test.
func (Service) Hello() string { return "Hello World!" }

// Fail returns an error that no layer classifies.
func (Service) Fail() error { return errors.New("something went wrong in service") }

// Router returns the demo routes, with every failure rendered by h:
//
//	GET /test
//	GET /test/problem-detail-exception
//	GET /test/problem-detail-exception-auto
//	GET /test/bad-request
//	GET /test/not-found
//	GET /test/raw-error
//	GET /test/error-in-service
//	GET /test/panic
func Router(h *handler.Handler, svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(httpx.Recover(h))
	r.NotFound(httpx.NotFound(h).ServeHTTP)
	r.MethodNotAllowed(httpx.MethodNotAllowed(h).ServeHTTP)

	r.Route("/test", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = io.WriteString(w, svc.Hello())
		})
		r.Method(http.MethodGet, "/problem-detail-exception", httpx.Wrap(h, outOfCredit))
		r.Method(http.MethodGet, "/problem-detail-exception-auto", httpx.Wrap(h, outOfCreditAuto))
		r.Method(http.MethodGet, "/bad-request", httpx.Wrap(h, func(http.ResponseWriter, *http.Request) error {
			return httperr.BadRequest("some custom detail")
		}))
		r.Method(http.MethodGet, "/not-found", httpx.Wrap(h, func(http.ResponseWriter, *http.Request) error {
			return httperr.NotFound()
		}))
		r.Method(http.MethodGet, "/raw-error", httpx.Wrap(h, func(http.ResponseWriter, *http.Request) error {
			return errors.New("something went wrong")
		}))
		r.Method(http.MethodGet, "/error-in-service", httpx.Wrap(h, func(http.ResponseWriter, *http.Request) error {
			return svc.Fail()
		}))
		r.Get("/panic", func(http.ResponseWriter, *http.Request) {
			panic(problem.E(http.StatusServiceUnavailable, "Maintenance", "back soon"))
		})
	})
	return r
}

const (
	creditTitle  = "You do not have enough credit."
	creditDetail = "Your current balance is 30, but that costs 50."
)

func outOfCredit(http.ResponseWriter, *http.Request) error {
	return problem.E(http.StatusBadRequest, creditTitle, creditDetail,
		problem.WithType("https://example.com/probs/out-of-credit"),
		problem.WithInstance("/account/12345/msgs/abc"),
	)
}

func outOfCreditAuto(http.ResponseWriter, *http.Request) error {
	return problem.E(452, creditTitle, creditDetail)
}
