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
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// textScalars holds composite types that still render as a single value.
var textScalars sync.Map // key: reflect.Type, val: struct{}

func init() {
	RegisterScalarType(reflect.TypeFor[time.Time]())
	RegisterScalarType(reflect.TypeFor[uuid.UUID]())
}

// RegisterScalarType marks a struct or array type that implements
// encoding.TextMarshaler or fmt.Stringer as scalar. time.Time and
// uuid.UUID are registered by default.
func RegisterScalarType(t reflect.Type) {
	if t == nil {
		return
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	textScalars.Store(t, struct{}{})
}

// IsScalar reports whether v is a single value usable as a route or query
// parameter: booleans, numbers and strings, including named types built on
// them. A struct or array counts only when it renders itself as text and
// its type was passed to RegisterScalarType. Pointers count when they are
// non-nil and point to such a value. Nil, maps, slices and other structs
// are not scalar even if they implement fmt.Stringer.
func IsScalar(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	text := rendersText(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() || !text {
			return false
		}
		rv = rv.Elem()
	}
	if text {
		if _, ok := textScalars.Load(rv.Type()); ok {
			return true
		}
	}
	return scalarKind(rv.Kind())
}

func rendersText(v any) bool {
	switch v.(type) {
	case encoding.TextMarshaler, fmt.Stringer:
		return true
	}
	return false
}

func scalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// ScalarString renders a scalar value as text. ok is false for values that
// are not scalar per IsScalar.
func ScalarString(v any) (s string, ok bool) {
	if !IsScalar(v) {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case encoding.TextMarshaler:
		b, err := x.MarshalText()
		if err != nil {
			return "", false
		}
		return string(b), true
	case fmt.Stringer:
		return x.String(), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	}
	return "", false
}
