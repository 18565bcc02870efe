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

// HTTPException represents a framework-level error that knows its own HTTP
// status and exception name, such as a "not found" or "forbidden" error
// raised by a router or a handler.
//
// The name follows the framework convention "<StatusPhrase>Exception", e.g.
// "NotFoundException". It is used to derive a problem title when the
// exception does not provide one explicitly.
type HTTPException interface {
	error

	// HTTPStatus returns the status code to respond with.
	HTTPStatus() int

	// ExceptionName returns the exception type name.
	ExceptionName() string
}

// TitledException is implemented by exceptions that carry an explicit,
// human-readable title. When the title is non-empty it is used verbatim
// instead of deriving one from the exception name.
type TitledException interface {
	HTTPException

	// ExceptionTitle returns the title, or "" when none is known.
	ExceptionTitle() string
}

// ValidationException represents a rejected-input error: a "bad request"
// carrying one or more messages.
//
// Implementations SHOULD return the messages in the order they were
// reported; the first one becomes the problem detail.
type ValidationException interface {
	HTTPException

	// Messages returns the validation messages. May be empty.
	Messages() []string
}
