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

// Package handler is the terminal error handler that turns any error into
// exactly one RFC 7807 problem details response.
//
// # Overview
//
// A Handler is built once with New and shared by every request. For each
// error it:
//
//  1. classifies the error into one of four categories (see package
//     category), first matching rule wins:
//     a *problem.Error anywhere in the chain, then an
//     apis.ValidationException, then an apis.HTTPException, then anything
//     else;
//  2. derives status, title, detail, type and instance for that category;
//  3. hands the body to the configured Logger and Observer, if any;
//  4. writes status, Content-Type: application/problem+json and the JSON
//     body through the apis.Context, once.
//
// # Type URIs
//
// The "type" member comes from the payload of a structured error when
// present, otherwise from the configured resolver. Two resolver arities are
// supported (WithTypeResolver, WithTitledTypeResolver). Without a resolver,
// or when the resolver panics or returns "", the type is
// https://httpstatuses.com/{status}.
//
// # Body shape
//
// The status is always repeated inside the body:
//
//	{"status":404,"type":"https://httpstatuses.com/404","title":"Not Found",
//	 "detail":"Cannot GET /not-found","instance":"/not-found"}
//
// # Immutability
//
// A Handler has no mutable state after New. It is safe for concurrent use
// and performs no locking.
package handler
