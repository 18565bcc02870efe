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
	"log/slog"

	"dirpx.dev/problem/apis"
	"dirpx.dev/problem/typeuri"
)

// Option configures a Handler at build time.
type Option func(*config)

type config struct {
	resolver apis.TitledTypeResolver
	logger   apis.Logger
	observer apis.Observer
}

// WithTypeResolver sets a status-only type URI resolver. It replaces any
// resolver set before it.
func WithTypeResolver(r apis.TypeResolver) Option {
	return func(c *config) { c.resolver = typeuri.Titled(r) }
}

// WithTitledTypeResolver sets a (status, title) type URI resolver. It
// replaces any resolver set before it.
func WithTitledTypeResolver(r apis.TitledTypeResolver) Option {
	return func(c *config) { c.resolver = r }
}

// WithLogger sets the logger that receives every emitted body.
func WithLogger(l apis.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithSlog logs every emitted body to l at error level. A nil l is ignored.
func WithSlog(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = NewSlogLogger(l)
		}
	}
}

// WithObserver sets the observer notified of every emitted problem.
func WithObserver(o apis.Observer) Option {
	return func(c *config) { c.observer = o }
}
