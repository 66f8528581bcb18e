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

package resource

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Fields is an ordered mapping of element name to value.
type Fields = orderedmap.OrderedMap[string, any]

// NewFields returns an empty, ordered field mapping.
func NewFields() *Fields {
	return orderedmap.New[string, any]()
}

// FieldsOf builds an ordered field mapping from alternating key/value pairs.
// It panics if kv has an odd length or a key is not a string; it is meant
// for literals in setup code and tests.
func FieldsOf(kv ...any) *Fields {
	if len(kv)%2 != 0 {
		panic("resource: FieldsOf requires an even number of arguments")
	}
	f := orderedmap.New[string, any](len(kv) / 2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic("resource: FieldsOf keys must be strings")
		}
		f.Set(k, kv[i+1])
	}
	return f
}

// CopyFields returns a shallow copy of f preserving order. A nil f yields an
// empty mapping.
func CopyFields(f *Fields) *Fields {
	if f == nil {
		return NewFields()
	}
	out := orderedmap.New[string, any](f.Len())
	for p := f.Oldest(); p != nil; p = p.Next() {
		out.Set(p.Key, p.Value)
	}
	return out
}

// Embedded is the set of resources embedded under one relation.
type Embedded struct {
	// Resources are the embedded representations in insertion order.
	Resources []*Resource
	// Collection reports whether the relation was embedded as a list.
	// A list relation stays a list even with zero or one member.
	Collection bool
}

// Resource is a generated hypermedia representation: ordered elements,
// links grouped by relation and embedded sub-resources grouped by relation.
//
// A Resource is owned by the goroutine that builds it; it is not safe for
// concurrent mutation.
type Resource struct {
	elements *Fields
	links    *orderedmap.OrderedMap[string, []Link]
	embedded *orderedmap.OrderedMap[string, *Embedded]
}

// New constructs a Resource whose elements are elements (kept as given, not
// copied) and whose links are links. A nil elements mapping yields an empty
// one.
func New(elements *Fields, links ...Link) *Resource {
	if elements == nil {
		elements = NewFields()
	}
	r := &Resource{
		elements: elements,
		links:    orderedmap.New[string, []Link](),
		embedded: orderedmap.New[string, *Embedded](),
	}
	for _, l := range links {
		r.AddLink(l)
	}
	return r
}

// Elements returns the element mapping. Callers must not mutate it after the
// resource has been handed out.
func (r *Resource) Elements() *Fields {
	return r.elements
}

// Element returns the element stored under name.
func (r *Resource) Element(name string) (any, bool) {
	return r.elements.Get(name)
}

// SetElement sets (or replaces) an element, keeping its original position
// when replaced.
func (r *Resource) SetElement(name string, value any) {
	r.elements.Set(name, value)
}

// RemoveElement deletes an element if present.
func (r *Resource) RemoveElement(name string) {
	r.elements.Delete(name)
}

// AddLink appends l under its relation.
func (r *Resource) AddLink(l Link) {
	cur, _ := r.links.Get(l.Relation)
	r.links.Set(l.Relation, append(cur, l))
}

// Links returns every link, grouped by relation in first-seen order.
func (r *Resource) Links() []Link {
	var out []Link
	for p := r.links.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value...)
	}
	return out
}

// LinksByRel returns the links registered under rel.
func (r *Resource) LinksByRel(rel string) []Link {
	ls, _ := r.links.Get(rel)
	return ls
}

// Link returns the first link registered under rel.
func (r *Resource) Link(rel string) (Link, bool) {
	ls, ok := r.links.Get(rel)
	if !ok || len(ls) == 0 {
		return Link{}, false
	}
	return ls[0], true
}

// HasLink reports whether at least one link is registered under rel.
func (r *Resource) HasLink(rel string) bool {
	_, ok := r.Link(rel)
	return ok
}

// LinkRels returns the link relations in first-seen order.
func (r *Resource) LinkRels() []string {
	out := make([]string, 0, r.links.Len())
	for p := r.links.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// Embed adds resources under rel. Embedding a single resource under a new
// relation produces a single-valued relation; adding more turns it into a
// list.
func (r *Resource) Embed(rel string, resources ...*Resource) {
	cur, ok := r.embedded.Get(rel)
	if !ok {
		cur = &Embedded{}
		r.embedded.Set(rel, cur)
	}
	cur.Resources = append(cur.Resources, resources...)
	if len(cur.Resources) > 1 {
		cur.Collection = true
	}
}

// EmbedCollection embeds resources under rel as a list, replacing any
// previous value of rel.
func (r *Resource) EmbedCollection(rel string, resources []*Resource) {
	if resources == nil {
		resources = []*Resource{}
	}
	r.embedded.Set(rel, &Embedded{Resources: resources, Collection: true})
}

// Embedded returns the resources embedded under rel.
func (r *Resource) Embedded(rel string) (*Embedded, bool) {
	return r.embedded.Get(rel)
}

// EmbeddedRels returns the embedded relations in insertion order.
func (r *Resource) EmbeddedRels() []string {
	out := make([]string, 0, r.embedded.Len())
	for p := r.embedded.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}
