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

package hal

import (
	"context"
	"net/http"
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/samsonasik/mezzio-hal/apis"
)

// visit identifies one instance on the current embedding path.
type visit struct {
	typeID   string
	identity any
}

// visitPath is an immutable linked list of visits, innermost first.
// Sibling branches share their common prefix.
type visitPath struct {
	visit
	parent *visitPath
}

type pathKey struct{}

// identityOf returns what makes instance the same object across visits:
// its EntityID for apis.Identifier values, its address for pointers.
// Other values have no identity and cannot close a cycle.
func identityOf(instance any) (any, bool) {
	if id, ok := instance.(apis.Identifier); ok {
		if eid := id.EntityID(); eid != "" {
			return eid, true
		}
	}
	rv := reflect.ValueOf(instance)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if !rv.IsNil() {
			return rv.Pointer(), true
		}
	}
	return nil, false
}

// enterPath records (typeID, identity of instance) on the request's path
// and fails with ErrCircularReference when the pair is already on it.
func enterPath(req *http.Request, typeID string, instance any) (*http.Request, error) {
	identity, ok := identityOf(instance)
	if !ok {
		return req, nil
	}
	v := visit{typeID: typeID, identity: identity}

	head, _ := req.Context().Value(pathKey{}).(*visitPath)
	for p := head; p != nil; p = p.parent {
		if p.visit == v {
			return nil, errors.Wrapf(apis.ErrCircularReference, "%s %v is already being generated", typeID, identity)
		}
	}
	ctx := context.WithValue(req.Context(), pathKey{}, &visitPath{visit: v, parent: head})
	return req.WithContext(ctx), nil
}
