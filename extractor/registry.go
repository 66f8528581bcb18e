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

// Package extractor provides named extractors that turn Go values into the
// ordered field mappings resources are built from.
package extractor

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/samsonasik/mezzio-hal/apis"
)

// Names of the default extractors.
const (
	NameReflect = "reflect"
	NameJSON    = "json"
	NameMap     = "map"
)

var (
	// ErrInvalidExtractor is returned when registering an empty name or a
	// nil extractor.
	ErrInvalidExtractor = errors.New("hal(extractor): invalid extractor")
	// ErrUnsupportedValue is returned when an extractor cannot read a value.
	ErrUnsupportedValue = errors.New("hal(extractor): unsupported value")
)

// Registry is an apis.ExtractorRegistry keyed by name.
type Registry struct {
	mu sync.RWMutex
	m  map[string]apis.Extractor
}

// Ensure Registry implements apis.ExtractorRegistry.
var _ apis.ExtractorRegistry = (*Registry)(nil)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{m: map[string]apis.Extractor{}}
}

// NewDefault returns a registry holding the reflect, json and map
// extractors.
func NewDefault() *Registry {
	r := NewRegistry()
	r.m[NameReflect] = NewReflect()
	r.m[NameJSON] = JSON{}
	r.m[NameMap] = Map{}
	return r
}

// Register adds (or replaces) the extractor stored under name.
func (r *Registry) Register(name string, e apis.Extractor) error {
	if strings.TrimSpace(name) == "" {
		return errors.Wrap(ErrInvalidExtractor, "empty name")
	}
	if e == nil {
		return errors.Wrapf(ErrInvalidExtractor, "nil extractor for %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[name] = e
	return nil
}

// Get returns the extractor stored under name.
func (r *Registry) Get(name string) (apis.Extractor, error) {
	r.mu.RLock()
	e, ok := r.m[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.WithHintf(
			errors.Wrapf(apis.ErrExtractorNotFound, "%q", name),
			"known extractors: %s", strings.Join(r.Names(), ", "))
	}
	return e, nil
}

// Has reports whether an extractor is stored under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.m[name]
	return ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.m))
}
