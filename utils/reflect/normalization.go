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

package reflect

import (
	"errors"
	"path"
	"reflect"
	"strings"
	"sync"

	"github.com/samsonasik/mezzio-hal/apis"
	"github.com/samsonasik/mezzio-hal/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping
	// pointers) is not a named type (e.g., anonymous struct, func, []T).
	ErrReflectTypeNotNamed = errors.New("reflect: type has no name")
)

// Normalize unwraps pointers and returns the nearest named type, or an error
// if none is found within cfg.MaxUnwrap steps.
//
// Unlike a general container walk, slices, arrays and maps are not
// unwrapped: a []Post is a collection, not a Post, so it only resolves when
// it has a name of its own (type Posts []Post).
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; i < maxUnwrap && t.Kind() == reflect.Ptr; i++ {
		if t.Name() != "" {
			return t, nil
		}
		t = t.Elem()
	}

	if t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}

// typeNameCache caches type ids by reflect.Type.
var typeNameCache sync.Map // key: reflect.Type, val: string

// TypeName returns the type id of a named type: "pkgbase.Type" with generic
// instantiation parameters stripped ("paginator.Paginator"). Builtin types
// keep their bare name ("string"). Results are memoized.
func TypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if v, ok := typeNameCache.Load(t); ok {
		return v.(string)
	}

	name := stripTypeParams(t.Name())
	if name == "" {
		name = t.String()
	} else if p := t.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}

	typeNameCache.Store(t, name)
	return name
}

// TypeID normalizes t and returns its type id, or "" when t has no name.
func TypeID(t reflect.Type, cfg apis.Config) string {
	nt, err := Normalize(t, cfg)
	if err != nil {
		return ""
	}
	return TypeName(nt)
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
