/*
   Copyright 2025 The DIRPX Authors.

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

package apis

import (
	"fmt"
	"strings"
)

// PaginationParamType tells where the current page number travels.
//
// # Values
//
//   - PaginationQuery: a query-string argument ("?page=3").
//   - PaginationPlaceholder: a route placeholder ("/posts/page/{page}").
//
// The zero value is PaginationQuery, which is also the default of every
// collection metadata kind.
//
// # Contract
//
//   - The textual forms are part of the configuration format; existing
//     spellings MUST NOT change.
//   - Values are plain integers and safe to share across goroutines.
type PaginationParamType int

const (
	// PaginationQuery reads and writes the page as a query-string argument.
	PaginationQuery PaginationParamType = iota

	// PaginationPlaceholder reads and writes the page as a route placeholder.
	// Links built from a static URL substitute "{param}" in the URL.
	PaginationPlaceholder
)

// String returns "query" or "placeholder", or "Unknown(<n>)" for values
// outside the enum. It never panics.
func (t PaginationParamType) String() string {
	switch t {
	case PaginationQuery:
		return "query"
	case PaginationPlaceholder:
		return "placeholder"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// ParsePaginationParamType parses a textual pagination parameter type.
// Matching is case-insensitive and ignores surrounding whitespace.
// On failure it returns PaginationQuery and a non-nil error.
func ParsePaginationParamType(s string) (PaginationParamType, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return PaginationQuery, fmt.Errorf("hal: empty pagination param type")
	}

	switch strings.ToLower(trimmed) {
	case "query":
		return PaginationQuery, nil
	case "placeholder":
		return PaginationPlaceholder, nil
	default:
		return PaginationQuery, fmt.Errorf("hal: unknown pagination param type %q", s)
	}
}

// MustParsePaginationParamType is like ParsePaginationParamType but panics
// on invalid input. Use it for hard-coded values only.
func MustParsePaginationParamType(s string) PaginationParamType {
	t, err := ParsePaginationParamType(s)
	if err != nil {
		panic(err)
	}
	return t
}

// MarshalText implements encoding.TextMarshaler. Unknown values fail
// instead of persisting an "Unknown(...)" form.
func (t PaginationParamType) MarshalText() ([]byte, error) {
	switch t {
	case PaginationQuery, PaginationPlaceholder:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("hal: cannot marshal unknown pagination param type %d", t)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. On failure the
// receiver is left unchanged.
func (t *PaginationParamType) UnmarshalText(text []byte) error {
	value, err := ParsePaginationParamType(string(text))
	if err != nil {
		return err
	}
	*t = value
	return nil
}
