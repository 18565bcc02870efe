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
	"testing"

	"google.golang.org/grpc/codes"
)

func TestDefaults_Sane(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(status int, want codes.Code) {
		t.Helper()
		if got := m.GRPCStatus(status); got != want {
			t.Fatalf("GRPCStatus(%d) = %v; want %v", status, got, want)
		}
	}
	check(400, codes.InvalidArgument)
	check(401, codes.Unauthenticated)
	check(403, codes.PermissionDenied)
	check(404, codes.NotFound)
	check(409, codes.Aborted)
	check(429, codes.ResourceExhausted)
	check(500, codes.Internal)
	check(503, codes.Unavailable)
	check(504, codes.DeadlineExceeded)
}

func TestClassDefaults(t *testing.T) {
	m := MustNew()
	if got := m.GRPCStatus(452); got != codes.FailedPrecondition {
		t.Fatalf("4xx class default: got %v", got)
	}
	if got := m.GRPCStatus(599); got != codes.Internal {
		t.Fatalf("5xx class default: got %v", got)
	}
	if got := m.GRPCStatus(302); got != codes.Unknown {
		t.Fatalf("fallback: got %v", got)
	}
}

func TestSuccessStatusNeverOK(t *testing.T) {
	m := MustNew()
	for _, status := range []int{200, 201, 204} {
		if got := m.GRPCStatus(status); got == codes.OK {
			t.Fatalf("GRPCStatus(%d) = OK; an error must never map to OK", status)
		}
	}
}

func TestPriority_OverrideOverDefault(t *testing.T) {
	m, err := New(
		WithGRPCOverride(404, codes.Unimplemented),
		WithGRPCOverride(452, codes.ResourceExhausted),
		WithFallback(codes.Internal),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus(404); got != codes.Unimplemented {
		t.Fatalf("override must win; got %v", got)
	}
	if got := m.GRPCStatus(452); got != codes.ResourceExhausted {
		t.Fatalf("override must win over class; got %v", got)
	}
	if got := m.GRPCStatus(302); got != codes.Internal {
		t.Fatalf("fallback override; got %v", got)
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"status too low", WithGRPCOverride(99, codes.Internal)},
		{"status too high", WithGRPCOverride(600, codes.Internal)},
		{"code out of range", WithGRPCOverride(400, codes.Code(42))},
		{"fallback out of range", WithFallback(codes.Code(17))},
		{"override to OK", WithGRPCOverride(418, codes.OK)},
		{"fallback to OK", WithFallback(codes.OK)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); err == nil {
				t.Fatalf("New(%s) expected error", tt.name)
			}
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustNew should panic on invalid input")
		}
	}()
	_ = MustNew(WithFallback(codes.Code(99)))
}

func TestCodeName(t *testing.T) {
	tests := map[codes.Code]string{
		codes.OK:                "OK",
		codes.NotFound:          "NOT_FOUND",
		codes.DeadlineExceeded:  "DEADLINE_EXCEEDED",
		codes.Unauthenticated:   "UNAUTHENTICATED",
		codes.ResourceExhausted: "RESOURCE_EXHAUSTED",
	}
	for c, want := range tests {
		if got := codeName(c); got != want {
			t.Fatalf("codeName(%v) = %q, want %q", c, got, want)
		}
	}
}
