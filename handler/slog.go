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

package handler

import (
	"context"
	"log/slog"
	"slices"

	"dirpx.dev/problem"
	"dirpx.dev/problem/apis"
)

var _ apis.Logger = (*SlogLogger)(nil)

// SlogLogger logs problem bodies to a *slog.Logger at error level.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps l. A nil l logs to slog.Default().
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// Error implements apis.Logger.
func (s *SlogLogger) Error(ctx context.Context, body problem.Detail) {
	l := s.l
	if l == nil {
		l = slog.Default()
	}
	attrs := []slog.Attr{
		slog.Int(problem.KeyStatus, body.Status),
		slog.String(problem.KeyType, body.Type),
		slog.String(problem.KeyTitle, body.Title),
		slog.String(problem.KeyDetail, body.Detail),
		slog.String(problem.KeyInstance, body.Instance),
	}
	if len(body.Extensions) > 0 {
		keys := make([]string, 0, len(body.Extensions))
		for k := range body.Extensions {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		ext := make([]any, 0, len(keys))
		for _, k := range keys {
			ext = append(ext, slog.Any(k, body.Extensions[k]))
		}
		attrs = append(attrs, slog.Group("extensions", ext...))
	}
	l.LogAttrs(ctx, slog.LevelError, "problem response", attrs...)
}
