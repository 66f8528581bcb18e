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

// Package metadata holds the built-in metadata kinds. Each kind is
// immutable once constructed and safe to share across goroutines.
package metadata

import (
	"maps"

	"github.com/samsonasik/mezzio-hal/apis"
)

const (
	// DefaultResourceIdentifier is the default identifier field name.
	DefaultResourceIdentifier = "id"
	// DefaultRouteIdentifierPlaceholder is the default identifier
	// placeholder of resource routes.
	DefaultRouteIdentifierPlaceholder = "id"
	// DefaultPaginationParam is the default page parameter name.
	DefaultPaginationParam = "page"
	// DefaultMaxDepth is the default nesting depth past which extracted
	// objects are no longer embedded.
	DefaultMaxDepth = 10
)

// base carries what every kind shares.
type base struct {
	typeID string
}

// TypeID returns the identifier of the represented type.
func (b base) TypeID() string { return b.typeID }

// resourceBase carries what both resource kinds share.
type resourceBase struct {
	base
	extractor string
	maxDepth  int
}

// Extractor returns the name of the extractor used for instances.
func (r resourceBase) Extractor() string { return r.extractor }

// MaxDepth returns the nesting depth past which objects are not embedded.
func (r resourceBase) MaxDepth() int { return r.maxDepth }

// HasReachedMaxDepth reports whether depth is at or beyond MaxDepth.
func (r resourceBase) HasReachedMaxDepth(depth int) bool { return depth >= r.maxDepth }

// collectionBase carries what both collection kinds share.
type collectionBase struct {
	base
	relation  string
	param     string
	paramType apis.PaginationParamType
}

// CollectionRelation returns the relation items are embedded under.
func (c collectionBase) CollectionRelation() string { return c.relation }

// PaginationParam returns the page parameter name.
func (c collectionBase) PaginationParam() string { return c.param }

// PaginationParamType returns where the page parameter travels.
func (c collectionBase) PaginationParamType() apis.PaginationParamType { return c.paramType }

func cloneParams[V any](m map[string]V) map[string]V {
	if len(m) == 0 {
		return map[string]V{}
	}
	return maps.Clone(m)
}
