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

package extractor

import (
	"reflect"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/samsonasik/mezzio-hal/resource"
)

// Reflect extracts the exported fields of a struct in declaration order.
//
// A field is named by the first of TagNames present on it ("hal", then
// "json" by default), falling back to the Go field name. The tag value "-"
// skips the field and the "omitempty" option skips zero values. Untagged
// embedded structs contribute their own fields in place; a shallower field
// shadows a deeper one of the same name.
type Reflect struct {
	TagNames []string
}

// NewReflect returns a Reflect extractor reading "hal" and "json" tags.
func NewReflect() Reflect {
	return Reflect{TagNames: []string{"hal", "json"}}
}

type fieldPlan struct {
	name      string
	index     []int
	omitEmpty bool
}

type planKey struct {
	t    reflect.Type
	tags string
}

// plans caches field plans by (type, tag names).
var plans sync.Map // key: planKey, val: []fieldPlan

// Extract implements apis.Extractor.
func (x Reflect) Extract(v any) (*resource.Fields, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, errors.Wrapf(ErrUnsupportedValue, "nil %s", rv.Type())
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, errors.Wrapf(ErrUnsupportedValue, "reflect extractor needs a struct, got %T", v)
	}

	plan := x.plan(rv.Type())
	out := resource.NewFields()
	for _, f := range plan {
		fv, err := rv.FieldByIndexErr(f.index)
		if err != nil {
			// nil embedded pointer
			continue
		}
		if f.omitEmpty && fv.IsZero() {
			continue
		}
		out.Set(f.name, fv.Interface())
	}
	return out, nil
}

func (x Reflect) plan(t reflect.Type) []fieldPlan {
	key := planKey{t: t, tags: strings.Join(x.TagNames, ",")}
	if v, ok := plans.Load(key); ok {
		return v.([]fieldPlan)
	}

	var fields []fieldPlan
	depthOf := map[string]int{}
	x.collect(t, nil, 0, &fields, depthOf, map[reflect.Type]bool{t: true})

	plans.Store(key, fields)
	return fields
}

func (x Reflect) collect(t reflect.Type, prefix []int, depth int, out *[]fieldPlan, depthOf map[string]int, seen map[reflect.Type]bool) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name, omitEmpty, tagged, skip := x.tagOf(sf)
		if skip {
			continue
		}
		index := append(append([]int(nil), prefix...), i)

		if sf.Anonymous && !tagged {
			ft := sf.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if !seen[ft] {
					seen[ft] = true
					x.collect(ft, index, depth+1, out, depthOf, seen)
				}
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}

		if d, ok := depthOf[name]; ok {
			if d <= depth {
				continue
			}
			// a shallower field replaces the deeper one in place
			for j := range *out {
				if (*out)[j].name == name {
					(*out)[j] = fieldPlan{name: name, index: index, omitEmpty: omitEmpty}
				}
			}
			depthOf[name] = depth
			continue
		}
		depthOf[name] = depth
		*out = append(*out, fieldPlan{name: name, index: index, omitEmpty: omitEmpty})
	}
}

// tagOf reads the field name and options from the first present tag.
func (x Reflect) tagOf(sf reflect.StructField) (name string, omitEmpty, tagged, skip bool) {
	for _, tagName := range x.TagNames {
		tag, ok := sf.Tag.Lookup(tagName)
		if !ok {
			continue
		}
		if tag == "-" {
			return "", false, true, true
		}
		n, opts, _ := strings.Cut(tag, ",")
		for _, o := range strings.Split(opts, ",") {
			if o == "omitempty" || o == "omitzero" {
				omitEmpty = true
			}
		}
		if n == "" {
			n = sf.Name
		} else {
			tagged = true
		}
		return n, omitEmpty, tagged, false
	}
	return sf.Name, false, false, false
}
