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

// CollectionOption configures the pagination of a collection kind.
type CollectionOption func(*collectionBase)

// WithPaginationParam sets the page parameter name. An empty name keeps
// DefaultPaginationParam.
func WithPaginationParam(name string) CollectionOption {
	return func(c *collectionBase) {
		if name != "" {
			c.param = name
		}
	}
}

// WithPaginationParamType sets where the page parameter travels.
func WithPaginationParamType(t apis.PaginationParamType) CollectionOption {
	return func(c *collectionBase) { c.paramType = t }
}

func newCollectionBase(typeID, relation string, opts []CollectionOption) collectionBase {
	c := collectionBase{
		base:      base{typeID: typeID},
		relation:  relation,
		param:     DefaultPaginationParam,
		paramType: apis.PaginationQuery,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// RouteBasedCollection describes a collection whose links come from a
// named route.
type RouteBasedCollection struct {
	collectionBase
	route       string
	routeParams map[string]any
	queryArgs   map[string]any
}

var _ apis.CollectionMetadata = (*RouteBasedCollection)(nil)

// NewRouteBasedCollection constructs route-based collection metadata.
// routeParams and queryArgs are copied; either may be nil.
func NewRouteBasedCollection(typeID, relation, route string, routeParams, queryArgs map[string]any, opts ...CollectionOption) *RouteBasedCollection {
	return &RouteBasedCollection{
		collectionBase: newCollectionBase(typeID, relation, opts),
		route:          route,
		routeParams:    cloneParams(routeParams),
		queryArgs:      cloneParams(queryArgs),
	}
}

// Route returns the route name of the collection links.
func (c *RouteBasedCollection) Route() string { return c.route }

// RouteParams returns a copy of the static route parameters.
func (c *RouteBasedCollection) RouteParams() map[string]any { return cloneParams(c.routeParams) }

// QueryStringArguments returns a copy of the static query-string arguments.
func (c *RouteBasedCollection) QueryStringArguments() map[string]any {
	return cloneParams(c.queryArgs)
}

// URLBasedCollection describes a collection whose links derive from a
// static URL.
type URLBasedCollection struct {
	collectionBase
	url string
}

var _ apis.CollectionMetadata = (*URLBasedCollection)(nil)

// NewURLBasedCollection constructs URL-based collection metadata.
func NewURLBasedCollection(typeID, relation, url string, opts ...CollectionOption) *URLBasedCollection {
	return &URLBasedCollection{
		collectionBase: newCollectionBase(typeID, relation, opts),
		url:            url,
	}
}

// URL returns the collection URL.
func (c *URLBasedCollection) URL() string { return c.url }
