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

// Package problem defines the RFC 7807 problem details object and the
// structured error that application code raises to produce one.
package problem

import (
	"encoding/json"
	"maps"
)

// Canonical member names of a problem details object.
const (
	KeyType     = "type"
	KeyTitle    = "title"
	KeyDetail   = "detail"
	KeyInstance = "instance"
	KeyStatus   = "status"
)

// MediaType is the content type of a serialized Detail.
const MediaType = "application/problem+json"

// IsReserved reports whether k is one of the canonical member names and
// therefore cannot be used as an extension key.
func IsReserved(k string) bool {
	switch k {
	case KeyType, KeyTitle, KeyDetail, KeyInstance, KeyStatus:
		return true
	}
	return false
}

// Detail is an RFC 7807 problem details object.
//
// Type and Instance are optional on input: an error handler fills them from
// its type-URI resolver and the current request path. Status is always
// derived from the triggering condition; a value set by application code
// on a payload is ignored by the handler.
//
// Extensions are merged inline into the JSON object. Extension keys that
// collide with a canonical member name are dropped when encoding, so the
// canonical members always win.
type Detail struct {
	Type     string
	Title    string
	Detail   string
	Instance string
	Status   int

	// Extensions holds caller-defined members. By convention values are
	// strings, numbers, or slices of either; nothing is validated.
	Extensions map[string]any
}

// Clone returns a copy of d that does not share its Extensions map.
func (d Detail) Clone() Detail {
	cp := d
	if d.Extensions != nil {
		cp.Extensions = maps.Clone(d.Extensions)
	}
	return cp
}

// Extension returns the extension stored under k.
func (d Detail) Extension(k string) (any, bool) {
	v, ok := d.Extensions[k]
	return v, ok
}

// Map flattens d into a single JSON-ready object holding the five canonical
// members and every non-reserved extension.
func (d Detail) Map() map[string]any {
	m := make(map[string]any, 5+len(d.Extensions))
	for k, v := range d.Extensions {
		if IsReserved(k) {
			continue
		}
		m[k] = v
	}
	m[KeyStatus] = d.Status
	m[KeyType] = d.Type
	m[KeyTitle] = d.Title
	m[KeyDetail] = d.Detail
	m[KeyInstance] = d.Instance
	return m
}

// MarshalJSON encodes d as a flat object with the extensions inline.
func (d Detail) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Map())
}

// UnmarshalJSON decodes a flat problem object. Canonical members populate
// the struct fields; every other member is collected into Extensions.
func (d *Detail) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var out Detail
	for k, v := range raw {
		var err error
		switch k {
		case KeyType:
			err = json.Unmarshal(v, &out.Type)
		case KeyTitle:
			err = json.Unmarshal(v, &out.Title)
		case KeyDetail:
			err = json.Unmarshal(v, &out.Detail)
		case KeyInstance:
			err = json.Unmarshal(v, &out.Instance)
		case KeyStatus:
			err = json.Unmarshal(v, &out.Status)
		default:
			var ext any
			if err = json.Unmarshal(v, &ext); err == nil {
				if out.Extensions == nil {
					out.Extensions = make(map[string]any)
				}
				out.Extensions[k] = ext
			}
		}
		if err != nil {
			return err
		}
	}
	*d = out
	return nil
}
