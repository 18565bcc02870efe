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

// Package promx exports problem responses as Prometheus metrics.
package promx

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/problem/apis"
	"dirpx.dev/problem/category"
)

// MetricName is the fully qualified name of the response counter.
const MetricName = "problem_responses_total"

// Observer counts emitted problems by category and status.
type Observer struct {
	responses *prometheus.CounterVec
}

var _ apis.Observer = (*Observer)(nil)

// NewObserver creates the counter and registers it with reg. A nil reg
// registers with prometheus.DefaultRegisterer.
//
// Registering twice with the same registry reuses the existing collector.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	cv := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "problem",
		Name:      "responses_total",
		Help:      "Problem details responses emitted, by category and HTTP status.",
	}, []string{"category", "status"})

	if err := reg.Register(cv); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		cv = existing
	}
	return &Observer{responses: cv}, nil
}

// Observe implements apis.Observer.
func (o *Observer) Observe(c category.Category, status int) {
	if o == nil {
		return
	}
	o.responses.WithLabelValues(c.String(), strconv.Itoa(status)).Inc()
}

// Collector exposes the underlying counter, mostly for tests.
func (o *Observer) Collector() *prometheus.CounterVec { return o.responses }
