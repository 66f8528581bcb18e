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

package resolver

import (
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/samsonasik/mezzio-hal/apis"
	uref "github.com/samsonasik/mezzio-hal/utils/reflect"
)

// Step computes a type id for a value or a type. A step that cannot handle
// its input returns ok=false and the next step is tried.
type Step interface {
	TryName(v any) (id string, ok bool)
	TryNameType(t reflect.Type) (id string, ok bool)
}

// New constructs an apis.Resolver that computes type ids with the given
// steps, in order, and looks them up in mm. Nil steps are ignored. Without
// steps the default chain is used: Namer first, then reflection.
//
// Metadata registered under a type's own reflected id ("pkg.Type") is
// always found first, so a struct that inherits EntityName from an
// embedded Namer can still be registered on its own.
func New(mm apis.MetadataMap, cfg apis.Config, steps ...Step) apis.Resolver {
	out := make([]Step, 0, len(steps))
	for _, s := range steps {
		if s != nil {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		out = append(out, NewNamerStep(), NewReflectStep(cfg))
	}
	return chain{mm: mm, steps: out, own: reflectStep{maxUnwrap: cfg.MaxUnwrap}}
}

// chain is an immutable, order-preserving resolver over a set of steps.
type chain struct {
	mm    apis.MetadataMap
	steps []Step
	own   reflectStep
}

// TypeID runs steps in order until one handles the value.
// Returns an empty string if no step produced an id.
func (r chain) TypeID(v any) string {
	for _, s := range r.steps {
		if id, ok := s.TryName(v); ok {
			return id
		}
	}
	return ""
}

// typeIDOf runs steps in order until one handles the type.
func (r chain) typeIDOf(t reflect.Type) string {
	for _, s := range r.steps {
		if id, ok := s.TryNameType(t); ok {
			return id
		}
	}
	return ""
}

// Resolve finds the metadata of v: its own type id first, then the ids of
// the types it embeds, nearest first.
func (r chain) Resolve(v any) (apis.Metadata, error) {
	if v == nil {
		return nil, errors.Wrap(apis.ErrObjectNotInMetadataMap, "nil instance")
	}
	if md, ok := r.ownLookup(reflect.TypeOf(v)); ok {
		return md, nil
	}
	id := r.TypeID(v)
	if md, ok := r.lookup(id); ok {
		return md, nil
	}
	if md, ok := r.ancestors(reflect.TypeOf(v)); ok {
		return md, nil
	}
	return nil, notFound(id, reflect.TypeOf(v))
}

// ResolveType is Resolve for a type without an instance.
func (r chain) ResolveType(t reflect.Type) (apis.Metadata, error) {
	if t == nil {
		return nil, errors.Wrap(apis.ErrObjectNotInMetadataMap, "nil type")
	}
	if md, ok := r.ownLookup(t); ok {
		return md, nil
	}
	id := r.typeIDOf(t)
	if md, ok := r.lookup(id); ok {
		return md, nil
	}
	if md, ok := r.ancestors(t); ok {
		return md, nil
	}
	return nil, notFound(id, t)
}

func (r chain) ancestors(t reflect.Type) (apis.Metadata, bool) {
	for _, a := range uref.Ancestors(t) {
		if md, ok := r.lookup(r.typeIDOf(a)); ok {
			return md, true
		}
	}
	return nil, false
}

// ownLookup finds metadata registered under the reflected id of t itself.
func (r chain) ownLookup(t reflect.Type) (apis.Metadata, bool) {
	id, ok := r.own.TryNameType(t)
	if !ok {
		return nil, false
	}
	return r.lookup(id)
}

// lookup is never cached: metadata added later must become visible.
func (r chain) lookup(id string) (apis.Metadata, bool) {
	if id == "" || r.mm == nil || !r.mm.Has(id) {
		return nil, false
	}
	md, err := r.mm.Get(id)
	if err != nil {
		return nil, false
	}
	return md, true
}

func notFound(id string, t reflect.Type) error {
	if id == "" {
		id = t.String()
	}
	return errors.WithHintf(
		errors.Wrapf(apis.ErrObjectNotInMetadataMap, "%q", id),
		"register metadata for %q or for a type it embeds", id)
}
