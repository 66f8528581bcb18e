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

package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samsonasik/mezzio-hal/resource"
)

func TestResource_Elements(t *testing.T) {
	r := resource.New(resource.FieldsOf("b", 1, "a", 2))
	r.SetElement("b", 3)
	r.SetElement("c", 4)
	r.RemoveElement("a")

	var keys []string
	for p := r.Elements().Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{"b", "c"}, keys)
	v, ok := r.Element("b")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	assert.Equal(t, 0, resource.New(nil).Elements().Len())
}

func TestResource_Links(t *testing.T) {
	r := resource.New(nil,
		resource.NewLink(resource.RelSelf, "/a"),
		resource.NewLink("item", "/i/1"),
		resource.NewLink("item", "/i/2"),
	)
	assert.Equal(t, []string{"self", "item"}, r.LinkRels())
	assert.Len(t, r.Links(), 3)
	assert.Len(t, r.LinksByRel("item"), 2)
	assert.True(t, r.HasLink("self"))
	assert.False(t, r.HasLink("next"))

	l, ok := r.Link("item")
	require.True(t, ok)
	assert.Equal(t, "/i/1", l.Href)
}

func TestResource_Embed(t *testing.T) {
	parent := resource.New(nil)
	child := resource.New(resource.FieldsOf("id", 1))

	parent.Embed("author", child)
	e, ok := parent.Embedded("author")
	require.True(t, ok)
	assert.False(t, e.Collection)

	parent.Embed("author", child)
	assert.True(t, e.Collection)
	assert.Len(t, e.Resources, 2)

	parent.EmbedCollection("items", nil)
	items, ok := parent.Embedded("items")
	require.True(t, ok)
	assert.True(t, items.Collection)
	assert.NotNil(t, items.Resources)
	assert.Empty(t, items.Resources)

	parent.EmbedCollection("author", []*resource.Resource{child})
	e, _ = parent.Embedded("author")
	assert.Len(t, e.Resources, 1)
	assert.True(t, e.Collection)

	assert.Equal(t, []string{"author", "items"}, parent.EmbeddedRels())
}

func TestLink(t *testing.T) {
	assert.True(t, resource.NewLink("search", "/s{?q}").Templated)
	assert.False(t, resource.NewLink("self", "/s").Templated)
	assert.False(t, resource.IsTemplated("/a}b{"))

	l := resource.NewLink("self", "/a")
	titled := l.WithAttribute("title", "A")
	assert.Nil(t, l.Attributes)
	assert.Equal(t, map[string]any{"title": "A"}, titled.Attributes)
}

func TestCopyFields(t *testing.T) {
	src := resource.FieldsOf("x", 1)
	cp := resource.CopyFields(src)
	cp.Set("y", 2)
	assert.Equal(t, 1, src.Len())
	assert.Equal(t, 0, resource.CopyFields(nil).Len())
	assert.Panics(t, func() { resource.FieldsOf("odd") })
}
