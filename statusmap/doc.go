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

// Package statusmap projects HTTP status codes onto gRPC status codes.
//
// The problem handler speaks HTTP statuses. When the same problem has to
// cross a gRPC boundary (see package grpcx) its status is translated with an
// immutable StatusMapper built here.
//
// # Resolution model
//
// A mapper resolves an HTTP status in the following order:
//
//  1. exact override registered with WithGRPCOverride;
//  2. library default for that exact status (400 → InvalidArgument,
//     404 → NotFound, 503 → Unavailable, ...);
//  3. class default: any other 4xx → FailedPrecondition, any other
//     5xx → Internal;
//  4. fallback (codes.Unknown unless changed with WithFallback).
//
// # Diagnostics
//
// Explain returns a human-readable trace of which tier matched. It is meant
// for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction the
// mapper is safe to share across goroutines.
package statusmap
