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

package metadata

import (
	"github.com/samsonasik/mezzio-hal/apis"
)

// RouteBasedResource describes a type whose self link comes from a named
// route filled with the instance's scalar fields.
type RouteBasedResource struct {
	resourceBase
	route                      string
	resourceIdentifier         string
	routeIdentifierPlaceholder string
	routeParams                map[string]any
	identifiersToPlaceholders  map[string]string
}

var (
	_ apis.Metadata     = (*RouteBasedResource)(nil)
	_ apis.DepthLimited = (*RouteBasedResource)(nil)
)

// ResourceOption configures a RouteBasedResource.
type ResourceOption func(*RouteBasedResource)

// WithResourceIdentifier sets the identifier field name.
func WithResourceIdentifier(field string) ResourceOption {
	return func(r *RouteBasedResource) { r.resourceIdentifier = field }
}

// WithRouteIdentifierPlaceholder sets the legacy identifier placeholder.
func WithRouteIdentifierPlaceholder(placeholder string) ResourceOption {
	return func(r *RouteBasedResource) { r.routeIdentifierPlaceholder = placeholder }
}

// WithRouteParams sets static route parameters.
func WithRouteParams(params map[string]any) ResourceOption {
	return func(r *RouteBasedResource) { r.routeParams = cloneParams(params) }
}

// WithIdentifiersToPlaceholders maps extracted field names to the route
// placeholders they fill.
func WithIdentifiersToPlaceholders(mapping map[string]string) ResourceOption {
	return func(r *RouteBasedResource) { r.identifiersToPlaceholders = cloneParams(mapping) }
}

// WithMaxDepth sets the nesting depth past which objects are not embedded.
// Negative values reset to DefaultMaxDepth.
func WithMaxDepth(depth int) ResourceOption {
	return func(r *RouteBasedResource) { r.maxDepth = normalizeDepth(depth) }
}

// NewRouteBasedResource constructs route-based resource metadata.
func NewRouteBasedResource(typeID, route, extractor string, opts ...ResourceOption) *RouteBasedResource {
	r := &RouteBasedResource{
		resourceBase: resourceBase{
			base:      base{typeID: typeID},
			extractor: extractor,
			maxDepth:  DefaultMaxDepth,
		},
		route:                      route,
		resourceIdentifier:         DefaultResourceIdentifier,
		routeIdentifierPlaceholder: DefaultRouteIdentifierPlaceholder,
		routeParams:                map[string]any{},
		identifiersToPlaceholders:  map[string]string{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Route returns the route name of the self link.
func (r *RouteBasedResource) Route() string { return r.route }

// ResourceIdentifier returns the identifier field name.
func (r *RouteBasedResource) ResourceIdentifier() string { return r.resourceIdentifier }

// RouteIdentifierPlaceholder returns the legacy identifier placeholder.
func (r *RouteBasedResource) RouteIdentifierPlaceholder() string {
	return r.routeIdentifierPlaceholder
}

// RouteParams returns a copy of the static route parameters.
func (r *RouteBasedResource) RouteParams() map[string]any { return cloneParams(r.routeParams) }

// IdentifiersToPlaceholders returns a copy of the field-to-placeholder mapping.
func (r *RouteBasedResource) IdentifiersToPlaceholders() map[string]string {
	return cloneParams(r.identifiersToPlaceholders)
}

// URLBasedResource describes a type whose self link is a static URL.
type URLBasedResource struct {
	resourceBase
	url string
}

var (
	_ apis.Metadata     = (*URLBasedResource)(nil)
	_ apis.DepthLimited = (*URLBasedResource)(nil)
)

// NewURLBasedResource constructs URL-based resource metadata.
func NewURLBasedResource(typeID, url, extractor string) *URLBasedResource {
	return &URLBasedResource{
		resourceBase: resourceBase{
			base:      base{typeID: typeID},
			extractor: extractor,
			maxDepth:  DefaultMaxDepth,
		},
		url: url,
	}
}

// WithMaxDepth returns a copy of r with the given max depth. Negative
// values reset to DefaultMaxDepth.
func (r *URLBasedResource) WithMaxDepth(depth int) *URLBasedResource {
	cp := *r
	cp.maxDepth = normalizeDepth(depth)
	return &cp
}

// URL returns the self link target.
func (r *URLBasedResource) URL() string { return r.url }

func normalizeDepth(depth int) int {
	if depth < 0 {
		return DefaultMaxDepth
	}
	return depth
}
