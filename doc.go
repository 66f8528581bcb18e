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

// Package hal generates HAL resources from Go values.
//
// A Generator turns "some Go value" into a *resource.Resource: ordered
// elements, links grouped by relation, and embedded sub-resources. What a
// value looks like is configured, not coded: metadata describes each type
// and a strategy per metadata kind renders it.
//
// # Design
//
// The Generator holds a read-mostly snapshot (state). The snapshot holds:
//
//   - Config: generation knobs (pointer unwrap depth, collection
//     concurrency, cycle detection).
//
//   - Strategies: a registry from metadata kind (the dynamic Go type of a
//     descriptor, such as *metadata.RouteBasedResource) to the strategy
//     that renders it. The four built-in kinds are registered by the
//     Builder; AddStrategy overrides them or adds new kinds.
//
//   - Resolver: answers "which metadata describes this value?". It computes
//     the value's type id, in priority order:
//     1. If the value implements apis.Namer, use v.EntityName().
//     2. Otherwise, derive "pkg.Type" from the nearest named Go type.
//     It then looks the id up in the metadata map and, failing that, walks
//     the struct types the value embeds, nearest first.
//
//   - Builder: a pluggable factory for the strategy registry and resolver.
//
// Readers load the snapshot once per call and never mutate it. Writers
// build a new snapshot and atomically swap it in.
//
// # Usage
//
//	routes := link.NewRoutes()
//	_ = routes.Get("post", "/posts/{id}", showPost)
//	_ = routes.Get("posts", "/posts", listPosts)
//
//	mm := registry.New()
//	_ = mm.Add(metadata.NewRouteBasedResource("blog.Post", "post", extractor.NameReflect))
//	_ = mm.Add(metadata.NewRouteBasedCollection("blog.Posts", "posts", "posts", nil, nil))
//
//	gen := hal.New(mm, link.NewGenerator(link.NewRelativeURLGenerator(routes)), extractor.NewDefault(),
//		hal.WithLogger(logger))
//
//	res, err := gen.FromObject(post, req)
//
// Collections are slices, arrays, iter.Seq[any] values or apis.Paginator
// implementations (see package paginator). They are rendered one page at a
// time with _total_items, _page and _page_count elements and
// self/first/prev/next/last links.
//
// Metadata maps can also be loaded from YAML, JSON or TOML files with
// config.LoadMetadataFile.
package hal
