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

package apis

import (
	"context"

	"dirpx.dev/problem"
	"dirpx.dev/problem/category"
)

// TypeResolver maps a status code to a problem type URI.
type TypeResolver func(status int) string

// TitledTypeResolver maps a status code and a problem title to a problem
// type URI.
type TitledTypeResolver func(status int, title string) string

// Logger receives every problem body an error handler emits, synchronously
// and before the response is written.
type Logger interface {
	Error(ctx context.Context, body problem.Detail)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(ctx context.Context, body problem.Detail)

// Error calls f(ctx, body).
func (f LoggerFunc) Error(ctx context.Context, body problem.Detail) { f(ctx, body) }

// Observer is notified of the category and status of every emitted problem.
// It is meant for metrics.
type Observer interface {
	Observe(c category.Category, status int)
}
