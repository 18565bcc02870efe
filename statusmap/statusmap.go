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
	"fmt"
	"maps"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/problem/apis"
)

// maxCode is the largest canonical gRPC code (Unauthenticated).
const maxCode = codes.Unauthenticated

// New constructs an immutable apis.StatusMapper snapshot.
//
// Errors indicate an override or fallback that is not a canonical gRPC error
// code (codes.OK included), or an override for a status outside 100..599.
func New(opts ...Option) (apis.StatusMapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	for st, c := range b.override {
		if st < 100 || st > 599 {
			return nil, fmt.Errorf("statusmap: invalid HTTP status %d in override", st)
		}
		if c == codes.OK || c > maxCode {
			return nil, fmt.Errorf("statusmap: invalid gRPC code %d for HTTP status %d", uint32(c), st)
		}
	}
	if b.fallback == codes.OK || b.fallback > maxCode {
		return nil, fmt.Errorf("statusmap: invalid fallback gRPC code %d", uint32(b.fallback))
	}

	return &mapper{
		override: freeze(b.override),
		defaults: freeze(defaultGRPC),
		fallback: b.fallback,
	}, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew(opts ...Option) apis.StatusMapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

type mapper struct {
	override map[int]codes.Code
	defaults map[int]codes.Code
	fallback codes.Code
}

// GRPCStatus resolves a gRPC code for the given HTTP status.
func (m *mapper) GRPCStatus(httpStatus int) codes.Code {
	c, _ := m.resolve(httpStatus)
	return c
}

// Explain produces a one-line trace of how GRPCStatus resolved httpStatus.
//
// Example output:
//
//	http=404 grpc: source=default -> NOT_FOUND(5)
//
// source ∈ {override | default | class | fallback}.
func (m *mapper) Explain(httpStatus int) string {
	c, src := m.resolve(httpStatus)
	return fmt.Sprintf("http=%d grpc: source=%s -> %s(%d)", httpStatus, src, codeName(c), uint32(c))
}

func (m *mapper) resolve(httpStatus int) (codes.Code, string) {
	if v, ok := m.override[httpStatus]; ok {
		return v, "override"
	}
	if v, ok := m.defaults[httpStatus]; ok {
		return v, "default"
	}
	switch {
	case httpStatus >= 400 && httpStatus < 500:
		return codes.FailedPrecondition, "class"
	case httpStatus >= 500 && httpStatus < 600:
		return codes.Internal, "class"
	}
	return m.fallback, "fallback"
}

// codeName renders a code the way gRPC spells it on the wire, e.g.
// NOT_FOUND.
func codeName(c codes.Code) string {
	var b strings.Builder
	s := c.String()
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if i > 0 && ch >= 'A' && ch <= 'Z' && s[i-1] >= 'a' && s[i-1] <= 'z' {
			b.WriteByte('_')
		}
		b.WriteByte(ch)
	}
	return strings.ToUpper(b.String())
}

func freeze(src map[int]codes.Code) map[int]codes.Code {
	if len(src) == 0 {
		return nil
	}
	return maps.Clone(src)
}
