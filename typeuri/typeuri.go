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

// Package typeuri builds problem type URI resolvers.
//
// A resolver maps the status of a problem (and, for the titled variant, its
// title) to the URI that goes into the "type" member. When no resolver is
// configured an error handler uses Default, which points at
// https://httpstatuses.com/{status}.
package typeuri

import (
	"strconv"
	"strings"

	"dirpx.dev/problem/apis"
)

// DefaultBase is the base of the default type URI scheme.
const DefaultBase = "https://httpstatuses.com"

// Placeholders recognized by Template.
const (
	StatusPlaceholder = "{status}"
	TitlePlaceholder  = "{title}"
)

// Default returns https://httpstatuses.com/{status}.
func Default(status int) string {
	return DefaultBase + "/" + strconv.Itoa(status)
}

// BaseURL returns a resolver producing base + "/" + status. A trailing slash
// on base is ignored.
func BaseURL(base string) apis.TypeResolver {
	base = strings.TrimRight(base, "/")
	return func(status int) string {
		return base + "/" + strconv.Itoa(status)
	}
}

// Template returns a resolver that substitutes {status} and {title} in
// pattern. The title is inserted verbatim, without escaping.
//
//	typeuri.Template("https://errors.example.com/{status}/{title}")
func Template(pattern string) apis.TitledTypeResolver {
	return func(status int, title string) string {
		return strings.NewReplacer(
			StatusPlaceholder, strconv.Itoa(status),
			TitlePlaceholder, title,
		).Replace(pattern)
	}
}

// Titled lifts a status-only resolver to the titled signature.
func Titled(r apis.TypeResolver) apis.TitledTypeResolver {
	if r == nil {
		return nil
	}
	return func(status int, _ string) string { return r(status) }
}
