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

package reflect_test

import (
	"errors"
	"reflect"
	"runtime"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/samsonasik/mezzio-hal/apis"
	uref "github.com/samsonasik/mezzio-hal/utils/reflect"
)

// Local test types.
type A struct{}
type B struct{ A }
type G[T any] struct{}
type Posts []A
type PA *A

// cfg returns a baseline Config for tests.
func cfg(opts ...func(*apis.Config)) apis.Config {
	c := apis.Config{MaxUnwrap: 8}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func TestNormalize_Pointers(t *testing.T) {
	conf := cfg()

	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
	}{
		{"plain", reflect.TypeOf(A{}), reflect.TypeOf(A{})},
		{"ptr", reflect.TypeOf(&A{}), reflect.TypeOf(A{})},
		{"ptr ptr", reflect.TypeOf((**A)(nil)), reflect.TypeOf(A{})},
		{"named slice", reflect.TypeOf(Posts{}), reflect.TypeOf(Posts{})},
		{"named pointer", reflect.TypeOf(PA(nil)), reflect.TypeOf(PA(nil))},
		{"builtin", reflect.TypeOf(0), reflect.TypeOf(0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.typ, conf)
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.typ, got, tc.want)
			}
		})
	}
}

func TestNormalize_ContainersAreNotUnwrapped(t *testing.T) {
	for _, typ := range []reflect.Type{
		reflect.TypeOf([]A{}),
		reflect.TypeOf([2]A{}),
		reflect.TypeOf(map[string]A{}),
		reflect.TypeOf((chan A)(nil)),
	} {
		if _, err := uref.Normalize(typ, cfg()); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
			t.Fatalf("Normalize(%v) error = %v, want ErrReflectTypeNotNamed", typ, err)
		}
	}
}

func TestNormalize_MaxUnwrap(t *testing.T) {
	tPP := reflect.TypeOf((**A)(nil))

	if _, err := uref.Normalize(tPP, cfg(func(c *apis.Config) { c.MaxUnwrap = 1 })); err == nil {
		t.Fatalf("MaxUnwrap=1: expected error, got nil")
	}
	if got, err := uref.Normalize(tPP, cfg(func(c *apis.Config) { c.MaxUnwrap = 2 })); err != nil || got != reflect.TypeOf(A{}) {
		t.Fatalf("MaxUnwrap=2: got (%v,%v), want (A,nil)", got, err)
	}
	// non-positive falls back to the default
	if got, err := uref.Normalize(tPP, cfg(func(c *apis.Config) { c.MaxUnwrap = 0 })); err != nil || got != reflect.TypeOf(A{}) {
		t.Fatalf("MaxUnwrap=0: got (%v,%v), want (A,nil)", got, err)
	}
}

func TestNormalize_Errors(t *testing.T) {
	if _, err := uref.Normalize(nil, cfg()); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("nil type: got %v, want ErrReflectNilType", err)
	}
	anon := struct{ X int }{}
	if _, err := uref.Normalize(reflect.TypeOf(&anon), cfg()); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("anonymous struct: got %v, want ErrReflectTypeNotNamed", err)
	}
}

func TestTypeName(t *testing.T) {
	cases := []struct {
		typ  reflect.Type
		want string
	}{
		{reflect.TypeOf(A{}), "reflect_test.A"},
		{reflect.TypeOf(G[int]{}), "reflect_test.G"},
		{reflect.TypeOf(G[G[string]]{}), "reflect_test.G"},
		{reflect.TypeOf(""), "string"},
		{reflect.TypeOf(time.Time{}), "time.Time"},
		{reflect.TypeOf(uuid.UUID{}), "uuid.UUID"},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := uref.TypeName(tc.typ); got != tc.want {
			t.Fatalf("TypeName(%v) = %q, want %q", tc.typ, got, tc.want)
		}
	}
}

func TestTypeID(t *testing.T) {
	if got := uref.TypeID(reflect.TypeOf(&B{}), cfg()); got != "reflect_test.B" {
		t.Fatalf("TypeID(*B) = %q", got)
	}
	if got := uref.TypeID(reflect.TypeOf([]A{}), cfg()); got != "" {
		t.Fatalf("TypeID([]A) = %q, want empty", got)
	}
}

type C struct {
	*B
	G[int]
}

type D struct {
	C
	A
	Name string
}

func TestAncestors(t *testing.T) {
	got := uref.Ancestors(reflect.TypeOf(&D{}))
	want := []reflect.Type{
		reflect.TypeOf(C{}),
		reflect.TypeOf(A{}),
		reflect.TypeOf(B{}),
		reflect.TypeOf(G[int]{}),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Ancestors(*D) = %v, want %v", got, want)
	}

	if got := uref.Ancestors(reflect.TypeOf(A{})); len(got) != 0 {
		t.Fatalf("Ancestors(A) = %v, want none", got)
	}
	if got := uref.Ancestors(reflect.TypeOf(0)); got != nil {
		t.Fatalf("Ancestors(int) = %v, want nil", got)
	}
}

type label string

func (l label) String() string { return "label:" + string(l) }

type card struct{ Name string }

func (c *card) String() string { return c.Name }

type version struct{ Major, Minor int }

func (v version) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)), nil
}

func TestScalar(t *testing.T) {
	id := uuid.MustParse("f47ac10b-58cc-0372-8567-0e02b2c3d479")
	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	lbl := label("p")
	cases := []struct {
		v    any
		want string
		ok   bool
	}{
		{"x", "x", true},
		{42, "42", true},
		{int8(-3), "-3", true},
		{uint16(7), "7", true},
		{1.5, "1.5", true},
		{float32(0.25), "0.25", true},
		{true, "true", true},
		{id, "f47ac10b-58cc-0372-8567-0e02b2c3d479", true},
		{label("a"), "label:a", true},
		{nil, "", false},
		{[]int{1}, "", false},
		{map[string]any{}, "", false},
		{A{}, "", false},
		{&A{}, "", false},
		{&id, "f47ac10b-58cc-0372-8567-0e02b2c3d479", true},
		{at, "2024-05-06T07:08:09Z", true},
		{&lbl, "label:p", true},
		{(*label)(nil), "", false},
		{&card{Name: "ace"}, "", false},
		{(*card)(nil), "", false},
		{version{1, 2}, "", false},
		{[]byte("x"), "", false},
	}
	for _, tc := range cases {
		if ok := uref.IsScalar(tc.v); ok != tc.ok {
			t.Fatalf("IsScalar(%#v) = %v, want %v", tc.v, ok, tc.ok)
		}
		got, ok := uref.ScalarString(tc.v)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ScalarString(%#v) = (%q,%v), want (%q,%v)", tc.v, got, ok, tc.want, tc.ok)
		}
	}
}

type release struct{ version }

func TestRegisterScalarType(t *testing.T) {
	r := release{version{2, 0}}
	if uref.IsScalar(r) {
		t.Fatalf("IsScalar(%#v) before registration = true", r)
	}
	uref.RegisterScalarType(reflect.TypeFor[*release]())
	got, ok := uref.ScalarString(r)
	if !ok || got != "2.0" {
		t.Fatalf("ScalarString(%#v) = (%q,%v), want (\"2.0\",true)", r, got, ok)
	}
	if uref.IsScalar((*release)(nil)) {
		t.Fatal("IsScalar(nil *release) = true")
	}
}

// Normalize, TypeName and Ancestors share caches; hammer them concurrently.
func TestConcurrent(t *testing.T) {
	types := []reflect.Type{
		reflect.TypeOf(A{}),
		reflect.TypeOf(&B{}),
		reflect.TypeOf(&D{}),
		reflect.TypeOf(G[int]{}),
		reflect.TypeOf(Posts{}),
		reflect.TypeOf(0),
	}
	conf := cfg()

	workers := runtime.GOMAXPROCS(0) * 4
	iters := 2000

	var wg sync.WaitGroup
	wg.Add(workers)

	errCh := make(chan error, workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				tt := types[i%len(types)]
				rt, err := uref.Normalize(tt, conf)
				if err != nil {
					errCh <- err
					return
				}
				if uref.TypeName(rt) == "" {
					errCh <- errors.New("got empty type name")
					return
				}
				_ = uref.Ancestors(rt)
			}
		}()
	}

	wg.Wait()
	close(errCh)
	for e := range errCh {
		t.Fatal(e)
	}
}

func BenchmarkTypeID(b *testing.B) {
	types := []reflect.Type{
		reflect.TypeOf(A{}),
		reflect.TypeOf(&B{}),
		reflect.TypeOf(G[int]{}),
		reflect.TypeOf(0),
	}
	conf := cfg()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = uref.TypeID(types[i%len(types)], conf)
	}
}
