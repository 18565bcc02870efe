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

// Package grpcx carries problem details across gRPC.
//
// The server interceptor classifies a failed call with the same
// handler.Handler used for HTTP (the full method name plays the role of the
// request path) and returns a gRPC status whose code is projected through a
// statusmap mapper. The status details carry:
//
//   - google.rpc.ErrorInfo, reason = category in upper snake case,
//     domain = problem type, metadata = the canonical members;
//   - google.protobuf.Struct holding the full problem body, extensions
//     included.
//
// ExtractProblem reverses this on the client side.
package grpcx

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/problem"
	"dirpx.dev/problem/apis"
	"dirpx.dev/problem/category"
	"dirpx.dev/problem/handler"
	"dirpx.dev/problem/statusmap"
)

var defaultMapper = statusmap.MustNew()

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that turns
// handler errors into problem-carrying gRPC statuses.
//
// Errors that already are gRPC statuses pass through untouched, and context
// cancellation maps to the matching gRPC code. A nil mapper uses the
// statusmap defaults.
func UnaryServerInterceptor(h *handler.Handler, m apis.StatusMapper) grpc.UnaryServerInterceptor {
	if m == nil {
		m = defaultMapper
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		resp, err := next(ctx, req)
		if err == nil {
			return resp, nil
		}

		if _, ok := gstatus.FromError(err); ok {
			return nil, err
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, gstatus.FromContextError(err).Err()
		}

		cat, body := h.Emit(ctx, err, info.FullMethod)
		return nil, ToStatus(cat, body, m).Err()
	}
}

// ToStatus projects a problem onto a gRPC status. If the details cannot be
// attached the bare status is returned. A nil mapper uses the defaults.
// A mapper answering codes.OK is overridden with codes.Unknown, since an OK
// status carries no error.
func ToStatus(cat category.Category, body problem.Detail, m apis.StatusMapper) *gstatus.Status {
	if m == nil {
		m = defaultMapper
	}
	code := m.GRPCStatus(body.Status)
	if code == codes.OK {
		code = codes.Unknown
	}
	base := gstatus.New(code, body.Detail)

	info := &errdetails.ErrorInfo{
		Reason: strings.ToUpper(cat.String()),
		Domain: body.Type,
		Metadata: map[string]string{
			problem.KeyStatus:   strconv.Itoa(body.Status),
			problem.KeyTitle:    body.Title,
			problem.KeyDetail:   body.Detail,
			problem.KeyInstance: body.Instance,
		},
	}

	full := &structpb.Struct{}
	if b, err := json.Marshal(body); err == nil {
		if err := protojson.Unmarshal(b, full); err != nil {
			full = nil
		}
	} else {
		full = nil
	}

	var (
		with *gstatus.Status
		err  error
	)
	if full != nil {
		with, err = base.WithDetails(info, full)
	} else {
		with, err = base.WithDetails(info)
	}
	if err != nil {
		return base
	}
	return with
}

// ExtractProblem pulls the problem body out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractProblem(err error) (problem.Detail, bool) {
	if err == nil {
		return problem.Detail{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return problem.Detail{}, false
	}

	var info *errdetails.ErrorInfo
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *structpb.Struct:
			b, err := json.Marshal(v.AsMap())
			if err != nil {
				continue
			}
			var p problem.Detail
			if err := json.Unmarshal(b, &p); err == nil {
				return p, true
			}
		case *errdetails.ErrorInfo:
			info = v
		}
	}
	if info == nil {
		return problem.Detail{}, false
	}

	md := info.GetMetadata()
	status, _ := strconv.Atoi(md[problem.KeyStatus])
	return problem.Detail{
		Type:     info.GetDomain(),
		Title:    md[problem.KeyTitle],
		Detail:   md[problem.KeyDetail],
		Instance: md[problem.KeyInstance],
		Status:   status,
	}, true
}

// ExtractCategory returns the category recorded in a gRPC error's
// ErrorInfo.
func ExtractCategory(err error) (category.Category, bool) {
	st, ok := gstatus.FromError(err)
	if !ok || err == nil {
		return category.Empty, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			c, perr := category.Parse(info.GetReason())
			if perr != nil {
				return category.Empty, false
			}
			return c, true
		}
	}
	return category.Empty, false
}
