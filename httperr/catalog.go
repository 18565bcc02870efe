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

package httperr

import "net/http"

// BadRequest is the validation exception. Messages may be empty, in which
// case the message defaults to "Bad Request".
func BadRequest(messages ...string) *Validation {
	return &Validation{
		Exception: Exception{
			Status:  http.StatusBadRequest,
			Name:    "BadRequestException",
			Title:   "Bad Request",
			Message: http.StatusText(http.StatusBadRequest),
		},
		Details: messages,
	}
}

// builtin uses the first non-empty message, else the status phrase.
func builtin(status int, name, title string, message []string) *Exception {
	msg := http.StatusText(status)
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	return &Exception{Status: status, Name: name, Title: title, Message: msg}
}

// Unauthorized returns a 401 UnauthorizedException.
func Unauthorized(message ...string) *Exception {
	return builtin(http.StatusUnauthorized, "UnauthorizedException", "Unauthorized", message)
}

// PaymentRequired returns a 402 PaymentRequiredException.
func PaymentRequired(message ...string) *Exception {
	return builtin(http.StatusPaymentRequired, "PaymentRequiredException", "Payment Required", message)
}

// Forbidden returns a 403 ForbiddenException.
func Forbidden(message ...string) *Exception {
	return builtin(http.StatusForbidden, "ForbiddenException", "Forbidden", message)
}

// NotFound returns a 404 NotFoundException. The message defaults to the
// status phrase, matching what routers report for a missing resource.
func NotFound(message ...string) *Exception {
	return builtin(http.StatusNotFound, "NotFoundException", "Not Found", message)
}

// MethodNotAllowed returns a 405 MethodNotAllowedException.
func MethodNotAllowed(message ...string) *Exception {
	return builtin(http.StatusMethodNotAllowed, "MethodNotAllowedException", "Method Not Allowed", message)
}

// NotAcceptable returns a 406 NotAcceptableException.
func NotAcceptable(message ...string) *Exception {
	return builtin(http.StatusNotAcceptable, "NotAcceptableException", "Not Acceptable", message)
}

// RequestTimeout returns a 408 RequestTimeoutException.
func RequestTimeout(message ...string) *Exception {
	return builtin(http.StatusRequestTimeout, "RequestTimeoutException", "Request Timeout", message)
}

// Conflict returns a 409 ConflictException.
func Conflict(message ...string) *Exception {
	return builtin(http.StatusConflict, "ConflictException", "Conflict", message)
}

// Gone returns a 410 GoneException.
func Gone(message ...string) *Exception {
	return builtin(http.StatusGone, "GoneException", "Gone", message)
}

// PayloadTooLarge returns a 413 PayloadTooLargeException.
func PayloadTooLarge(message ...string) *Exception {
	return builtin(http.StatusRequestEntityTooLarge, "PayloadTooLargeException", "Payload Too Large", message)
}

// UnsupportedMediaType returns a 415 UnsupportedMediaTypeException.
func UnsupportedMediaType(message ...string) *Exception {
	return builtin(http.StatusUnsupportedMediaType, "UnsupportedMediaTypeException", "Unsupported Media Type", message)
}

// UnprocessableEntity returns a 422 UnprocessableEntityException.
func UnprocessableEntity(message ...string) *Exception {
	return builtin(http.StatusUnprocessableEntity, "UnprocessableEntityException", "Unprocessable Entity", message)
}

// TooManyRequests returns a 429 TooManyRequestsException.
func TooManyRequests(message ...string) *Exception {
	return builtin(http.StatusTooManyRequests, "TooManyRequestsException", "Too Many Requests", message)
}

// InternalServerError returns a 500 exception. Prefer returning the
// underlying error directly so it is classified as an internal fault.
func InternalServerError(message ...string) *Exception {
	return builtin(http.StatusInternalServerError, "InternalServerErrorException", "Internal Server Error", message)
}

// NotImplemented returns a 501 NotImplementedException.
func NotImplemented(message ...string) *Exception {
	return builtin(http.StatusNotImplemented, "NotImplementedException", "Not Implemented", message)
}

// BadGateway returns a 502 BadGatewayException.
func BadGateway(message ...string) *Exception {
	return builtin(http.StatusBadGateway, "BadGatewayException", "Bad Gateway", message)
}

// ServiceUnavailable returns a 503 ServiceUnavailableException.
func ServiceUnavailable(message ...string) *Exception {
	return builtin(http.StatusServiceUnavailable, "ServiceUnavailableException", "Service Unavailable", message)
}

// GatewayTimeout returns a 504 GatewayTimeoutException.
func GatewayTimeout(message ...string) *Exception {
	return builtin(http.StatusGatewayTimeout, "GatewayTimeoutException", "Gateway Timeout", message)
}
