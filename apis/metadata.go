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

// Metadata describes how instances of one type are represented.
// The dynamic Go type of a Metadata value is its kind; strategies are
// registered per kind.
type Metadata interface {
	// TypeID returns the identifier of the represented type.
	TypeID() string
}

// DepthLimited is implemented by metadata that caps nested embedding.
type DepthLimited interface {
	// HasReachedMaxDepth reports whether nested objects found at depth
	// must no longer be embedded.
	HasReachedMaxDepth(depth int) bool
}

// CollectionMetadata is implemented by collection metadata kinds.
type CollectionMetadata interface {
	Metadata
	// CollectionRelation is the relation the items are embedded under.
	CollectionRelation() string
	// PaginationParam is the name of the page parameter.
	PaginationParam() string
	// PaginationParamType tells where the page parameter travels.
	PaginationParamType() PaginationParamType
}

// KindOf returns the kind of md, or nil for a nil md.
func KindOf(md Metadata) reflect.Type {
	if md == nil {
		return nil
	}
	return reflect.TypeOf(md)
}

// KindName returns a short, human-readable kind name ("RouteBasedResource").
func KindName(kind reflect.Type) string {
	if kind == nil {
		return "<nil>"
	}
	for kind.Kind() == reflect.Ptr {
		kind = kind.Elem()
	}
	if kind.Name() == "" {
		return kind.String()
	}
	return kind.Name()
}

// MetadataKind is the reflect.Type of the metadata interface, used to
// validate kinds supplied at registration time.
var MetadataKind = reflect.TypeFor[Metadata]()
