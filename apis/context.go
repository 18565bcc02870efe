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

// Context is the request/response pair an error handler works against.
//
// Implementations wrap a framework's native request context. The handler
// reads RequestPath, then calls SetStatus, SetHeader and SendJSON, in that
// order, exactly once per error.
type Context interface {
	// RequestPath returns the path of the in-flight request. It is used as
	// the default problem instance.
	RequestPath() string

	// SetStatus records the response status code.
	SetStatus(code int)

	// SetHeader sets a single response header.
	SetHeader(name, value string)

	// SendJSON serializes body and writes the response. It is terminal:
	// implementations SHOULD reject a second call.
	SendJSON(body any) error
}
