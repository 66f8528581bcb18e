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

package registry_test

import (
	"errors"
	"testing"

	"github.com/samsonasik/mezzio-hal/apis"
	"github.com/samsonasik/mezzio-hal/metadata"
	"github.com/samsonasik/mezzio-hal/registry"
)

func TestAdd_HasAndGet(t *testing.T) {
	mm := registry.New()

	md := metadata.NewURLBasedResource("blog.Post", "/posts/1", "reflect")
	if err := mm.Add(md); err != nil {
		t.Fatalf("Add: unexpected error: %v", err)
	}

	if !mm.Has("blog.Post") {
		t.Fatalf("Has(blog.Post) = false, want true")
	}
	got, err := mm.Get("blog.Post")
	if err != nil {
		t.Fatalf("Get(blog.Post): unexpected error: %v", err)
	}
	if got != md {
		t.Fatalf("Get(blog.Post) returned %v, want %v", got, md)
	}
	if mm.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", mm.Count())
	}
}

func TestAdd_LastRegistrationWins(t *testing.T) {
	mm := registry.New()

	first := metadata.NewURLBasedResource("blog.Post", "/first", "reflect")
	second := metadata.NewRouteBasedResource("blog.Post", "post", "reflect")
	_ = mm.Add(first)
	if err := mm.Add(second); err != nil {
		t.Fatalf("Add(second): unexpected error: %v", err)
	}

	got, err := mm.Get("blog.Post")
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if got != apis.Metadata(second) {
		t.Fatalf("Get returned %T, want the later registration", got)
	}
	if mm.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", mm.Count())
	}
}

func TestGet_UnknownType(t *testing.T) {
	mm := registry.New()

	if mm.Has("blog.Missing") {
		t.Fatalf("Has(blog.Missing) = true, want false")
	}
	_, err := mm.Get("blog.Missing")
	if !errors.Is(err, apis.ErrUnknownType) {
		t.Fatalf("Get(blog.Missing): want ErrUnknownType, got %v", err)
	}
}

func TestAdd_Errors(t *testing.T) {
	mm := registry.New()

	if err := mm.Add(nil); !errors.Is(err, registry.ErrNilMetadata) {
		t.Fatalf("nil metadata: want ErrNilMetadata, got %v", err)
	}
	if err := mm.Add(metadata.NewURLBasedResource("  ", "/x", "reflect")); !errors.Is(err, registry.ErrEmptyTypeID) {
		t.Fatalf("empty type id: want ErrEmptyTypeID, got %v", err)
	}
	if mm.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", mm.Count())
	}
}

func TestEntriesAndReset(t *testing.T) {
	mm := registry.New()

	_ = mm.Add(metadata.NewURLBasedResource("blog.Post", "/posts", "reflect"))
	_ = mm.Add(metadata.NewURLBasedResource("blog.Author", "/authors", "reflect"))

	entries := mm.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries len = %d, want 2", len(entries))
	}
	if entries[0].TypeID() != "blog.Author" || entries[1].TypeID() != "blog.Post" {
		t.Fatalf("Entries not sorted by type id: %s, %s", entries[0].TypeID(), entries[1].TypeID())
	}

	mm.Reset()

	if mm.Count() != 0 {
		t.Fatalf("after Reset, Count() = %d, want 0", mm.Count())
	}
	if mm.Has("blog.Post") {
		t.Fatalf("Has after Reset: got true, want false")
	}
}
