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

package strategy

import (
	"net/http"
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/samsonasik/mezzio-hal/apis"
	"github.com/samsonasik/mezzio-hal/metadata"
	"github.com/samsonasik/mezzio-hal/resource"
)

// Metadata kinds handled by the built-in strategies.
var (
	RouteBasedResourceKind   = reflect.TypeFor[*metadata.RouteBasedResource]()
	URLBasedResourceKind     = reflect.TypeFor[*metadata.URLBasedResource]()
	RouteBasedCollectionKind = reflect.TypeFor[*metadata.RouteBasedCollection]()
	URLBasedCollectionKind   = reflect.TypeFor[*metadata.URLBasedCollection]()
)

// RouteBasedResourceStrategy renders an instance whose self link comes
// from a named route filled with the instance's scalar fields.
type RouteBasedResourceStrategy struct{}

var _ apis.Strategy = RouteBasedResourceStrategy{}

// CreateResource implements apis.Strategy.
func (RouteBasedResourceStrategy) CreateResource(instance any, md apis.Metadata, gen apis.Generator, req *http.Request, depth int) (*resource.Resource, error) {
	rmd, ok := md.(*metadata.RouteBasedResource)
	if !ok {
		return nil, apis.NewUnexpectedMetadata(RouteBasedResourceKind, md)
	}

	fields, err := extract(instance, rmd.Extractor(), gen)
	if err != nil {
		return nil, err
	}

	self, err := gen.LinkGenerator().FromRoute(resource.RelSelf, req, rmd.Route(), RouteParams(fields, rmd), nil)
	if err != nil {
		return nil, err
	}

	res := resource.New(fields, self)
	if err := embedNested(res, rmd, gen, req, depth); err != nil {
		return nil, err
	}
	return res, nil
}

// URLBasedResourceStrategy renders an instance whose self link is a
// fixed URL.
type URLBasedResourceStrategy struct{}

var _ apis.Strategy = URLBasedResourceStrategy{}

// CreateResource implements apis.Strategy.
func (URLBasedResourceStrategy) CreateResource(instance any, md apis.Metadata, gen apis.Generator, req *http.Request, depth int) (*resource.Resource, error) {
	umd, ok := md.(*metadata.URLBasedResource)
	if !ok {
		return nil, apis.NewUnexpectedMetadata(URLBasedResourceKind, md)
	}

	fields, err := extract(instance, umd.Extractor(), gen)
	if err != nil {
		return nil, err
	}

	self, err := gen.LinkGenerator().FromURL(resource.RelSelf, umd.URL())
	if err != nil {
		return nil, err
	}

	res := resource.New(fields, self)
	if err := embedNested(res, umd, gen, req, depth); err != nil {
		return nil, err
	}
	return res, nil
}

func extract(instance any, name string, gen apis.Generator) (*resource.Fields, error) {
	ex, err := gen.Extractors().Get(name)
	if err != nil {
		return nil, err
	}
	fields, err := ex.Extract(instance)
	if err != nil {
		return nil, err
	}
	if fields == nil {
		fields = resource.NewFields()
	}
	return fields, nil
}

// embedNested moves every element whose value has metadata of its own into
// the embedded set, rendered one level deeper. Nothing is embedded once
// limit reports the maximum depth.
func embedNested(res *resource.Resource, limit apis.DepthLimited, gen apis.Generator, req *http.Request, depth int) error {
	if limit.HasReachedMaxDepth(depth) {
		return nil
	}

	var candidates []string
	for p := res.Elements().Oldest(); p != nil; p = p.Next() {
		if !isNil(p.Value) {
			candidates = append(candidates, p.Key)
		}
	}

	for _, name := range candidates {
		v, _ := res.Element(name)
		childMD, err := gen.Resolver().Resolve(v)
		if err != nil {
			if errors.Is(err, apis.ErrObjectNotInMetadataMap) {
				continue
			}
			return err
		}

		child, err := gen.FromObjectAt(v, req, depth+1)
		if err != nil {
			return err
		}
		res.RemoveElement(name)

		if cmd, ok := childMD.(apis.CollectionMetadata); ok {
			var items []*resource.Resource
			if e, ok := child.Embedded(cmd.CollectionRelation()); ok {
				items = e.Resources
			}
			res.EmbedCollection(name, items)
			continue
		}
		res.Embed(name, child)
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
