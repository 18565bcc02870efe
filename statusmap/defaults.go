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

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// defaultGRPC holds the library's mappings for well-known HTTP statuses.
// The choices follow the semantics of each status rather than the
// transport-level mapping gRPC applies to raw HTTP/2 responses.
var defaultGRPC = map[int]codes.Code{
	// Input / preconditions / protocol.
	http.StatusBadRequest:           codes.InvalidArgument,
	http.StatusUnprocessableEntity:  codes.InvalidArgument,
	http.StatusUnsupportedMediaType: codes.InvalidArgument,
	http.StatusPreconditionFailed:   codes.FailedPrecondition,
	http.StatusTooEarly:             codes.FailedPrecondition,

	// Resource state.
	http.StatusNotFound: codes.NotFound,
	http.StatusGone:     codes.NotFound, // gRPC has no 410; NotFound is the closest practical choice.
	http.StatusConflict: codes.Aborted,

	// AuthN / AuthZ.
	http.StatusUnauthorized: codes.Unauthenticated,
	http.StatusForbidden:    codes.PermissionDenied,

	// Method / capability.
	http.StatusMethodNotAllowed: codes.Unimplemented,
	http.StatusNotImplemented:   codes.Unimplemented,

	// Rate / quotas / size.
	http.StatusTooManyRequests:       codes.ResourceExhausted,
	http.StatusRequestEntityTooLarge: codes.ResourceExhausted,

	// Time / cancellation.
	http.StatusRequestTimeout: codes.DeadlineExceeded,
	http.StatusGatewayTimeout: codes.DeadlineExceeded,
	499:                       codes.Canceled, // nginx "client closed request"

	// Availability / dependencies.
	http.StatusInternalServerError: codes.Internal,
	http.StatusBadGateway:          codes.Unavailable,
	http.StatusServiceUnavailable:  codes.Unavailable,
}
