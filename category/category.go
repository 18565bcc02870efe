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

package category

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Category is the canonical representation of an error category.
type Category string

const (
	// Structured errors carry a full problem payload and an explicit status.
	Structured Category = "structured"

	// Validation errors reject client input. They carry a status and one or
	// more messages; the first message becomes the problem detail.
	Validation Category = "validation"

	// FrameworkHTTP errors are any other exception with a status and a
	// name, such as the built-in not-found or forbidden exceptions.
	FrameworkHTTP Category = "framework_http"

	// Unclassified is the catch-all. Such errors are internal faults and
	// always produce a 500.
	Unclassified Category = "unclassified"
)

// ErrInvalid is returned when a value is not one of the known categories.
var ErrInvalid = errors.New("problem: invalid category")

// Ensure Category implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into config or log structs.
var (
	_ encoding.TextMarshaler   = (*Category)(nil)
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

// Empty is the zero value. It is not a valid category.
var Empty Category = ""

// All returns the categories in dispatch priority order.
func All() []Category {
	return []Category{Structured, Validation, FrameworkHTTP, Unclassified}
}

// Normalize brings an arbitrary string closer to the canonical form:
// it trims spaces, lowercases, and replaces '-' with '_'.
//
// It does NOT guarantee that the result is valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s.
func Parse(s string) (Category, error) {
	c := Category(Normalize(s))
	if err := Validate(c); err != nil {
		return Empty, err
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Category {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate reports whether c is one of the four known categories.
func Validate(c Category) error {
	switch c {
	case Structured, Validation, FrameworkHTTP, Unclassified:
		return nil
	}
	return ErrInvalid
}

// String returns the canonical string representation of the category.
func (c Category) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
