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
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/problem"
	"dirpx.dev/problem/handler"
	"dirpx.dev/problem/httperr"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestContext_SendOnce(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	c := NewContext(rec, httptest.NewRequest(http.MethodGet, "/a/b?q=1", nil))

	assert.Equal(t, "/a/b", c.RequestPath())
	c.SetStatus(http.StatusConflict)
	c.SetHeader("Content-Type", problem.MediaType)
	require.NoError(t, c.SendJSON(map[string]int{"n": 1}))
	assert.True(t, c.Sent())

	err := c.SendJSON(map[string]int{"n": 2})
	assert.ErrorIs(t, err, ErrAlreadySent)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"n":1}`, rec.Body.String())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	h := handler.New()
	srv := Wrap(h, func(w http.ResponseWriter, r *http.Request) error {
		return fmt.Errorf("load: %w", httperr.BadRequest("name must not be empty", "age must be positive"))
	})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, problem.MediaType, rec.Header().Get("Content-Type"))
	assert.Equal(t, map[string]any{
		"status":   float64(400),
		"type":     "https://httpstatuses.com/400",
		"title":    "Bad Request",
		"detail":   "name must not be empty",
		"instance": "/users",
	}, decode(t, rec))
}

func TestWrap_NoErrorPassesThrough(t *testing.T) {
	t.Parallel()

	srv := Wrap(handler.New(), func(w http.ResponseWriter, r *http.Request) error {
		_, err := w.Write([]byte("Hello World!"))
		return err
	})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello World!", rec.Body.String())
}

func TestRecover(t *testing.T) {
	t.Parallel()

	h := handler.New()
	tests := []struct {
		name       string
		panicValue any
		wantStatus int
		wantDetail string
	}{
		{"error value", errors.New("something went wrong"), 500, "something went wrong"},
		{"string value", "kaboom", 500, "kaboom"},
		{"structured error", problem.E(http.StatusPaymentRequired, "Pay up", "balance too low"), 402, "balance too low"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := Recover(h)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic(tt.panicValue)
			}))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test/raw-error", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, tt.wantDetail, body["detail"])
			assert.Equal(t, "/test/raw-error", body["instance"])
		})
	}
}

func TestRecover_AbortHandlerRepanics(t *testing.T) {
	t.Parallel()

	srv := Recover(handler.New())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		srv.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NotFound(handler.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/not-found", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{
		"status":   float64(404),
		"type":     "https://httpstatuses.com/404",
		"title":    "Not Found",
		"detail":   "Cannot GET /not-found",
		"instance": "/not-found",
	}, decode(t, rec))
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	MethodNotAllowed(handler.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/test", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Method Not Allowed", body["title"])
	assert.Equal(t, "Cannot DELETE /test", body["detail"])
}

func TestWrap_UnencodableExtensionStillWellFormed(t *testing.T) {
	t.Parallel()

	srv := Wrap(handler.New(), func(http.ResponseWriter, *http.Request) error {
		return problem.E(http.StatusPaymentRequired, "Quota", "over quota",
			problem.WithExtension("ratio", math.NaN()))
	})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quota", nil))

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, problem.MediaType, rec.Header().Get("Content-Type"))
	assert.Equal(t, map[string]any{
		"status":   float64(402),
		"type":     "https://httpstatuses.com/402",
		"title":    "Quota",
		"detail":   "over quota",
		"instance": "/quota",
	}, decode(t, rec))
}
