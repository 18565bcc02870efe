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

package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/problem"
)

func TestSlogLogger_WritesBodyFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))
	h := New(WithSlog(l))

	h.Handle(problem.E(402, "You do not have enough credit.", "Your current balance is 30, but that costs 50.",
		problem.WithExtension("balance", 30),
	), newRecorder("/account"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "problem response", entry["msg"])
	assert.Equal(t, float64(402), entry["status"])
	assert.Equal(t, "https://httpstatuses.com/402", entry["type"])
	assert.Equal(t, "/account", entry["instance"])
	assert.Equal(t, map[string]any{"balance": float64(30)}, entry["extensions"])
}

func TestWithSlog_NilIgnored(t *testing.T) {
	t.Parallel()

	h := New(WithSlog(nil))
	assert.Nil(t, h.logger)
}
