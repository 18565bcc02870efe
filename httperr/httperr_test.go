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
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/problem/apis"
)

func TestCatalog_DefaultsToStatusPhrase(t *testing.T) {
	t.Parallel()

	e := NotFound()
	assert.Equal(t, http.StatusNotFound, e.HTTPStatus())
	assert.Equal(t, "NotFoundException", e.ExceptionName())
	assert.Equal(t, "Not Found", e.ExceptionTitle())
	assert.Equal(t, "Not Found", e.Error())
}

func TestCatalog_CustomMessage(t *testing.T) {
	t.Parallel()

	e := Conflict("version mismatch")
	assert.Equal(t, http.StatusConflict, e.Status)
	assert.Equal(t, "version mismatch", e.Error())

	assert.Equal(t, "Payload Too Large", PayloadTooLarge().ExceptionTitle())
	assert.Equal(t, http.StatusRequestEntityTooLarge, PayloadTooLarge().Status)
	assert.Equal(t, "Service Unavailable", ServiceUnavailable("").Message)
}

func TestNew_HasNoTitle(t *testing.T) {
	t.Parallel()

	e := New(http.StatusTeapot, "ImATeapotException", "")
	assert.Empty(t, e.ExceptionTitle())
	assert.Equal(t, "I'm a teapot", e.Error())
}

func TestBadRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		messages []string
		wantErr  string
	}{
		{name: "single", messages: []string{"some custom detail"}, wantErr: "some custom detail"},
		{name: "many", messages: []string{"name must be a string", "age must be positive"}, wantErr: "name must be a string"},
		{name: "none", messages: nil, wantErr: "Bad Request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := BadRequest(tt.messages...)
			assert.Equal(t, http.StatusBadRequest, v.HTTPStatus())
			assert.Equal(t, "BadRequestException", v.ExceptionName())
			assert.Equal(t, tt.wantErr, v.Error())
			assert.Equal(t, tt.messages, v.Messages())
		})
	}
}

func TestBadRequest_MatchesValidationInterface(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("bind: %w", BadRequest("x"))

	var ve apis.ValidationException
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"x"}, ve.Messages())

	var he apis.HTTPException
	require.True(t, errors.As(NotFound(), &he))
	assert.False(t, errors.As(NotFound(), &ve))
}

func TestRouteNotFound(t *testing.T) {
	t.Parallel()

	e := RouteNotFound("get", "/not-found")
	assert.Equal(t, http.StatusNotFound, e.Status)
	assert.Equal(t, "Cannot GET /not-found", e.Message)
	assert.Equal(t, "Not Found", e.Title)
}

func TestWithMessage_Copies(t *testing.T) {
	t.Parallel()

	base := Forbidden()
	e := base.WithMessage("no access to project")
	assert.Equal(t, "Forbidden", base.Message)
	assert.Equal(t, "no access to project", e.Message)
}
