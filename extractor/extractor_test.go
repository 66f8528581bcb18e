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

package extractor_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samsonasik/mezzio-hal/apis"
	"github.com/samsonasik/mezzio-hal/extractor"
	"github.com/samsonasik/mezzio-hal/resource"
)

func keys(f *resource.Fields) []string {
	var out []string
	for p := f.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

type audit struct {
	CreatedBy string `json:"created_by"`
	ID        int    `json:"audit_id"`
}

type Meta struct {
	Version int
}

type post struct {
	audit
	*Meta
	ID       uuid.UUID `hal:"id" json:"uuid"`
	Title    string    `json:"title"`
	Draft    bool      `json:"draft,omitempty"`
	Secret   string    `json:"-"`
	internal string
	Body     string
}

func TestReflect_Extract(t *testing.T) {
	id := uuid.New()
	p := &post{
		audit:    audit{CreatedBy: "ann", ID: 4},
		ID:       id,
		Title:    "hello",
		Secret:   "s",
		internal: "i",
		Body:     "b",
	}

	fields, err := extractor.NewReflect().Extract(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"created_by", "audit_id", "id", "title", "Body"}, keys(fields))

	got, _ := fields.Get("id")
	assert.Equal(t, id, got)

	p.Draft = true
	p.Meta = &Meta{Version: 2}
	fields, err = extractor.NewReflect().Extract(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"created_by", "audit_id", "Version", "id", "title", "Draft", "Body"}, keys(fields))
}

type named struct {
	ID int `json:"id"`
}

type shadowing struct {
	named
	ID string `json:"id"`
}

func TestReflect_ShallowerFieldWins(t *testing.T) {
	fields, err := extractor.NewReflect().Extract(shadowing{named: named{ID: 1}, ID: "outer"})
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, keys(fields))
	v, _ := fields.Get("id")
	assert.Equal(t, "outer", v)
}

func TestReflect_CustomTags(t *testing.T) {
	type row struct {
		A int `db:"a_col" json:"a"`
		B int `json:"b"`
	}
	fields, err := extractor.Reflect{TagNames: []string{"db"}}.Extract(row{A: 1, B: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"a_col", "B"}, keys(fields))
}

func TestReflect_Unsupported(t *testing.T) {
	var nilPost *post
	_, err := extractor.NewReflect().Extract(nilPost)
	assert.ErrorIs(t, err, extractor.ErrUnsupportedValue)

	_, err = extractor.NewReflect().Extract(3)
	assert.ErrorIs(t, err, extractor.ErrUnsupportedValue)
}

func TestJSON_Extract(t *testing.T) {
	type doc struct {
		Z     string         `json:"z"`
		A     int            `json:"a"`
		Inner map[string]any `json:"inner"`
	}
	fields, err := extractor.JSON{}.Extract(doc{Z: "last", A: 1, Inner: map[string]any{"k": "v"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "inner"}, keys(fields))

	a, _ := fields.Get("a")
	assert.Equal(t, float64(1), a)
	inner, _ := fields.Get("inner")
	assert.Equal(t, map[string]any{"k": "v"}, inner)

	_, err = extractor.JSON{}.Extract([]int{1})
	assert.ErrorIs(t, err, extractor.ErrUnsupportedValue)
}

func TestMap_Extract(t *testing.T) {
	fields, err := extractor.Map{}.Extract(map[string]any{"b": 2, "a": 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys(fields))

	fields, err = extractor.Map{}.Extract(map[string]int{"y": 1, "x": 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, keys(fields))

	ordered := resource.FieldsOf("z", 1, "a", 2)
	fields, err = extractor.Map{}.Extract(ordered)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, keys(fields))
	fields.Set("new", 3)
	assert.Equal(t, 2, ordered.Len())

	_, err = extractor.Map{}.Extract(map[int]string{1: "a"})
	assert.ErrorIs(t, err, extractor.ErrUnsupportedValue)
}

func TestRegistry(t *testing.T) {
	r := extractor.NewDefault()
	assert.Equal(t, []string{"json", "map", "reflect"}, r.Names())
	assert.True(t, r.Has(extractor.NameReflect))

	_, err := r.Get("hydrator")
	require.ErrorIs(t, err, apis.ErrExtractorNotFound)

	custom := apis.ExtractorFunc(func(any) (*resource.Fields, error) {
		return resource.FieldsOf("custom", true), nil
	})
	require.NoError(t, r.Register("custom", custom))
	e, err := r.Get("custom")
	require.NoError(t, err)
	fields, err := e.Extract(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"custom"}, keys(fields))

	assert.ErrorIs(t, r.Register("", custom), extractor.ErrInvalidExtractor)
	assert.ErrorIs(t, r.Register("x", nil), extractor.ErrInvalidExtractor)
}
