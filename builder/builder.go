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

package builder

import (
	"github.com/samsonasik/mezzio-hal/apis"
	"github.com/samsonasik/mezzio-hal/resolver"
	"github.com/samsonasik/mezzio-hal/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildStrategies builds a strategy registry holding the built-in
// strategies. If a previous registry is provided, its entries are copied
// over the defaults, so overrides and custom kinds survive a rebuild.
func (b *builder) BuildStrategies(_ apis.Config, prev apis.StrategyRegistry) apis.StrategyRegistry {
	next := strategy.NewRegistry()
	_ = next.Register(strategy.RouteBasedResourceKind, strategy.RouteBasedResourceStrategy{})
	_ = next.Register(strategy.URLBasedResourceKind, strategy.URLBasedResourceStrategy{})
	_ = next.Register(strategy.RouteBasedCollectionKind, strategy.RouteBasedCollectionStrategy{})
	_ = next.Register(strategy.URLBasedCollectionKind, strategy.URLBasedCollectionStrategy{})
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = next.Register(e.Kind, e.Strategy)
		}
	}
	return next
}

// BuildResolver builds a resolver over mm for cfg: Namer first, then
// reflection, with ancestor lookup.
func (b *builder) BuildResolver(cfg apis.Config, mm apis.MetadataMap, _ apis.Resolver) apis.Resolver {
	return resolver.New(mm, cfg,
		resolver.NewNamerStep(),
		resolver.NewReflectStep(cfg),
	)
}
