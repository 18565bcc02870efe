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

package promx

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/problem/category"
)

func TestObserver_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	o, err := NewObserver(reg)
	require.NoError(t, err)

	o.Observe(category.Validation, 400)
	o.Observe(category.Validation, 400)
	o.Observe(category.Unclassified, 500)

	assert.Equal(t, 2.0, testutil.ToFloat64(o.Collector().WithLabelValues("validation", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.Collector().WithLabelValues("unclassified", "500")))

	expected := `
# HELP problem_responses_total Problem details responses emitted, by category and HTTP status.
# TYPE problem_responses_total counter
problem_responses_total{category="unclassified",status="500"} 1
problem_responses_total{category="validation",status="400"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), MetricName))
}

func TestObserver_RegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewObserver(reg)
	require.NoError(t, err)
	b, err := NewObserver(reg)
	require.NoError(t, err)

	a.Observe(category.Structured, 452)
	b.Observe(category.Structured, 452)
	assert.Equal(t, 2.0, testutil.ToFloat64(b.Collector().WithLabelValues("structured", "452")))
}

func TestObserver_Nil(t *testing.T) {
	var o *Observer
	assert.NotPanics(t, func() { o.Observe(category.Structured, 400) })
}
