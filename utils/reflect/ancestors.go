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
	"reflect"
	"sync"
)

// ancestorCache caches ancestor chains by reflect.Type.
var ancestorCache sync.Map // key: reflect.Type, val: []reflect.Type

// Ancestors returns the ancestor chain of t, nearest first.
//
// Go has no class inheritance; a struct's ancestors are the named struct
// types it embeds. The chain is the breadth-first walk of anonymous struct
// fields (or pointers to structs) in declaration order, so a directly
// embedded type always precedes the types it embeds in turn. Each type
// appears once. t itself is not part of the chain and pointers to t are
// unwrapped first.
func Ancestors(t reflect.Type) []reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	if v, ok := ancestorCache.Load(t); ok {
		return v.([]reflect.Type)
	}

	seen := map[reflect.Type]bool{t: true}
	var out []reflect.Type
	queue := []reflect.Type{t}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for i := 0; i < cur.NumField(); i++ {
			f := cur.Field(i)
			if !f.Anonymous {
				continue
			}
			ft := f.Type
			for ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() != reflect.Struct || ft.Name() == "" || seen[ft] {
				continue
			}
			seen[ft] = true
			out = append(out, ft)
			queue = append(queue, ft)
		}
	}

	ancestorCache.Store(t, out)
	return out
}
