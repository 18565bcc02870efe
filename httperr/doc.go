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

// Package httperr provides framework-style HTTP exceptions.
//
// These are the errors a router or handler raises for well-known HTTP
// conditions ("not found", "forbidden", ...). Each carries its status, the
// conventional exception name ("NotFoundException") and, for the built-in
// catalog, an explicit title ("Not Found"). Exceptions created with New
// carry no title; an error handler derives one from the name.
//
// BadRequest returns a *Validation: the rejected-input exception carrying
// one or more messages, of which the first becomes the problem detail.
package httperr
