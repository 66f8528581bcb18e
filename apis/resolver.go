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

import (
	"reflect"
)

// Resolver finds the metadata describing a value or type. Implementations
// try the exact type id first, then walk the type's ancestors nearest-first.
type Resolver interface {
	// Resolve returns the metadata for v, or fails with
	// ErrObjectNotInMetadataMap.
	Resolve(v any) (Metadata, error)

	// ResolveType returns the metadata for t, or fails with
	// ErrObjectNotInMetadataMap.
	ResolveType(t reflect.Type) (Metadata, error)

	// TypeID returns the type id used to look v up, or "" if v has none.
	TypeID(v any) string
}
