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

package strategy

import (
	"reflect"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/samsonasik/mezzio-hal/apis"
)

// NewRegistry creates an empty apis.StrategyRegistry.
func NewRegistry() apis.StrategyRegistry {
	return &registry{}
}

// registry maps metadata kinds (the dynamic type of a descriptor) to the
// strategy that renders instances described by it.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to strategy.
	m sync.Map // map[reflect.Type]apis.Strategy
	// count tracks the number of registered entries.
	count int
}

// Ensure registry implements apis.StrategyRegistry.
var _ apis.StrategyRegistry = (*registry)(nil)

// Register associates kind with s, replacing any previous strategy.
func (r *registry) Register(kind reflect.Type, s apis.Strategy) error {
	if err := ValidateKind(kind); err != nil {
		return err
	}
	if s == nil {
		return errors.Wrapf(apis.ErrInvalidStrategy, "nil strategy for %s", apis.KindName(kind))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, loaded := r.m.Swap(kind, s); !loaded {
		r.count++
	}
	return nil
}

// Lookup returns the strategy registered for kind.
func (r *registry) Lookup(kind reflect.Type) (apis.Strategy, bool) {
	if kind == nil {
		return nil, false
	}
	if v, ok := r.m.Load(kind); ok {
		return v.(apis.Strategy), true
	}
	return nil, false
}

// Entries returns a snapshot sorted by kind name.
func (r *registry) Entries() []apis.StrategyEntry {
	entries := make([]apis.StrategyEntry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.StrategyEntry{
			Kind:     key.(reflect.Type),
			Strategy: value.(apis.Strategy),
		})
		return true
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Kind.String() < entries[j].Kind.String()
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// ValidateKind reports whether kind can key a strategy: a concrete type
// implementing apis.Metadata.
func ValidateKind(kind reflect.Type) error {
	if kind == nil {
		return errors.Wrap(apis.ErrInvalidMetadataKind, "nil kind")
	}
	if kind.Kind() == reflect.Interface {
		return errors.Wrapf(apis.ErrInvalidMetadataKind, "%s is an interface", kind)
	}
	if !kind.Implements(apis.MetadataKind) {
		return errors.WithHintf(
			errors.Wrapf(apis.ErrInvalidMetadataKind, "%s does not implement apis.Metadata", kind),
			"descriptors with pointer receivers are keyed by their pointer type, e.g. reflect.TypeFor[*%s]()", apis.KindName(kind))
	}
	return nil
}
