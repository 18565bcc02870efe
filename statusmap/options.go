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

package statusmap

import "google.golang.org/grpc/codes"

// Option configures the mapper at build time.
type Option func(*builder)

type builder struct {
	override map[int]codes.Code
	fallback codes.Code
}

func newBuilder() *builder {
	return &builder{
		override: make(map[int]codes.Code),
		fallback: codes.Unknown,
	}
}

// WithGRPCOverride registers an exact gRPC code for an HTTP status. It wins
// over every default.
func WithGRPCOverride(httpStatus int, c codes.Code) Option {
	return func(b *builder) { b.override[httpStatus] = c }
}

// WithFallback sets the code used for statuses outside 4xx and 5xx that
// have no default or override.
func WithFallback(c codes.Code) Option {
	return func(b *builder) { b.fallback = c }
}
