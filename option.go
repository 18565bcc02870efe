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

package problem

// Option is a functional option for E. It takes an *Error and returns a
// (possibly new) *Error.
type Option func(*Error) *Error

// WithType sets the problem type URI.
func WithType(uri string) Option {
	return func(e *Error) *Error { return e.WithType(uri) }
}

// WithInstance sets the problem instance.
func WithInstance(instance string) Option {
	return func(e *Error) *Error { return e.WithInstance(instance) }
}

// WithExtension adds a single extension member.
func WithExtension(k string, v any) Option {
	return func(e *Error) *Error { return e.WithExtension(k, v) }
}

// WithExtensions merges several extension members.
func WithExtensions(kv map[string]any) Option {
	return func(e *Error) *Error { return e.WithExtensions(kv) }
}

// WithCause attaches an underlying cause.
func WithCause(err error) Option {
	return func(e *Error) *Error { return e.WithCause(err) }
}
