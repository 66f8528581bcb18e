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

package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/samsonasik/mezzio-hal/apis"
)

var (
	// ErrNilMetadata is returned when nil metadata is added.
	ErrNilMetadata = errors.New("hal(registry): nil metadata provided")
	// ErrEmptyTypeID is returned when metadata reports an empty type id.
	ErrEmptyTypeID = errors.New("hal(registry): empty type id provided")
)

// New constructs an empty metadata map.
func New() apis.MetadataMap {
	return &metadataMap{}
}

// metadataMap is a MetadataMap backed by sync.Map.
type metadataMap struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps type id to metadata.
	m sync.Map // map[string]apis.Metadata
	// count tracks the number of registered entries.
	count int
}

// Has reports whether metadata exists for typeID.
func (r *metadataMap) Has(typeID string) bool {
	_, ok := r.m.Load(typeID)
	return ok
}

// Get returns the metadata registered for typeID.
func (r *metadataMap) Get(typeID string) (apis.Metadata, error) {
	if v, ok := r.m.Load(typeID); ok {
		return v.(apis.Metadata), nil
	}
	return nil, errors.Wrapf(apis.ErrUnknownType, "%q", typeID)
}

// Add registers md under md.TypeID(). A later registration for the same
// type id replaces the earlier one.
func (r *metadataMap) Add(md apis.Metadata) error {
	if md == nil {
		return ErrNilMetadata
	}
	id := md.TypeID()
	if strings.TrimSpace(id) == "" {
		return errors.Wrapf(ErrEmptyTypeID, "metadata kind %s", apis.KindName(apis.KindOf(md)))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, loaded := r.m.Swap(id, md); !loaded {
		r.count++
	}
	return nil
}

// Entries returns a snapshot sorted by type id.
func (r *metadataMap) Entries() []apis.Metadata {
	entries := make([]apis.Metadata, 0, r.Count())
	r.m.Range(func(_, value any) bool {
		entries = append(entries, value.(apis.Metadata))
		return true
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].TypeID() < entries[j].TypeID()
	})
	return entries
}

// Count returns the number of registered entries.
func (r *metadataMap) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *metadataMap) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
