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

// Namer lets a type choose its own metadata type id.
//
// # Overview
//
// When a value implements Namer, its EntityName is the type id used for
// metadata lookup and the reflection-based naming is skipped for that value.
// This is the escape hatch for types whose reflected "pkg.Type" name is
// ambiguous (two packages with the same base name) or unstable (types that
// move between packages).
//
// EntityName is a type-level contract: it MUST NOT depend on instance state,
// and it SHOULD be cheap (a string literal is ideal).
//
// # Usage
//
//	type Post struct{ ID int }
//
//	func (Post) EntityName() string { return "blog.post" }
//
//	mm.Add(metadata.NewRouteBasedResource("blog.post", "post", "reflect"))
type Namer interface {
	// EntityName returns the canonical, type-level name for this entity.
	EntityName() string
}

// Identifier extends Namer with a per-instance identifier.
//
// Cycle detection uses (EntityName, EntityID) as the identity of values
// that are not pointers. An empty EntityID means "no identity" and such
// values are never considered part of a cycle.
type Identifier interface {
	Namer

	// EntityID returns a stable identifier for this entity instance.
	EntityID() string
}
