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
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/samsonasik/mezzio-hal/resource"
)

// Map extracts map values. An ordered *resource.Fields keeps its order;
// other maps with string keys are read in sorted key order.
type Map struct{}

// Extract implements apis.Extractor.
func (Map) Extract(v any) (*resource.Fields, error) {
	switch m := v.(type) {
	case *resource.Fields:
		return resource.CopyFields(m), nil
	case map[string]any:
		out := resource.NewFields()
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			out.Set(k, m[k])
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, errors.Wrapf(ErrUnsupportedValue, "map extractor needs a map with string keys, got %T", v)
	}
	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	})
	out := resource.NewFields()
	for _, k := range keys {
		out.Set(k.String(), rv.MapIndex(k).Interface())
	}
	return out, nil
}
