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

package ginx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/problem"
	"dirpx.dev/problem/handler"
	"dirpx.dev/problem/httperr"
	"dirpx.dev/problem/typeuri"
)

func newEngine(h *handler.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(h))
	r.NoRoute(NoRoute(h))

	r.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, "Hello World!") })
	r.GET("/test/not-found", func(c *gin.Context) { _ = c.Error(httperr.NotFound()) })
	r.GET("/test/bad-request", func(c *gin.Context) { _ = c.Error(httperr.BadRequest("some custom detail")) })
	r.GET("/test/raw-error", func(c *gin.Context) { panic(errors.New("something went wrong")) })
	r.GET("/test/problem-detail-exception-auto", func(c *gin.Context) {
		_ = c.Error(problem.New(452, problem.Detail{
			Title:  "You do not have enough credit.",
			Detail: "Your current balance is 30, but that costs 50.",
		}))
	})
	r.GET("/test/written", func(c *gin.Context) {
		c.String(http.StatusAccepted, "partial")
		_ = c.Error(errors.New("late"))
	})
	return r
}

func serve(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	if rec.Header().Get("Content-Type") == problem.MediaType {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestGin(t *testing.T) {
	r := newEngine(handler.New(handler.WithTitledTypeResolver(typeuri.Template("[customurl]/{status}/{title}"))))

	rec, _ := serve(t, r, "/test")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello World!", rec.Body.String())

	rec, body := serve(t, r, "/test/not-found")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", body["title"])
	assert.Equal(t, "Not Found", body["detail"])

	rec, body = serve(t, r, "/test/bad-request")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "some custom detail", body["detail"])
	assert.Equal(t, "[customurl]/400/Bad Request", body["type"])

	rec, body = serve(t, r, "/test/raw-error")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "something went wrong", body["detail"])

	rec, body = serve(t, r, "/test/problem-detail-exception-auto")
	assert.Equal(t, 452, rec.Code)
	assert.Equal(t, "/test/problem-detail-exception-auto", body["instance"])

	rec, body = serve(t, r, "/not-found")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cannot GET /not-found", body["detail"])
	assert.Equal(t, "/not-found", body["instance"])
}

func TestGin_WrittenResponseUntouched(t *testing.T) {
	r := newEngine(handler.New())

	rec, body := serve(t, r, "/test/written")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
	assert.Nil(t, body)
}
