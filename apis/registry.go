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

package apis

import "reflect"

// MetadataMap maps type ids to metadata. Lookups are exact; ancestor
// resolution is the Resolver's job.
type MetadataMap interface {
	// Has reports whether metadata is registered for typeID.
	Has(typeID string) bool
	// Get returns the metadata registered for typeID or fails with
	// ErrUnknownType.
	Get(typeID string) (Metadata, error)
	// Add registers md under md.TypeID(), replacing any previous entry.
	Add(md Metadata) error
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Metadata
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// StrategyRegistry maps metadata kinds to strategies.
type StrategyRegistry interface {
	// Register associates kind with s, overriding any previous strategy.
	Register(kind reflect.Type, s Strategy) error
	// Lookup returns the strategy registered for kind.
	Lookup(kind reflect.Type) (Strategy, bool)
	// Entries returns a snapshot for diagnostics (order is unspecified).
	Entries() []StrategyEntry
	// Count returns the number of registered kinds.
	Count() int
}

// StrategyEntry is a single (kind, strategy) association in a snapshot.
type StrategyEntry struct {
	// Kind is the metadata kind.
	Kind reflect.Type
	// Strategy is the associated strategy.
	Strategy Strategy
}
