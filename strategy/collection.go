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
	"iter"
	"maps"
	"net/http"
	"reflect"
	"slices"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/samsonasik/mezzio-hal/apis"
	"github.com/samsonasik/mezzio-hal/metadata"
	"github.com/samsonasik/mezzio-hal/resource"
)

// Elements set on every collection representation.
const (
	ElementTotalItems = "_total_items"
	ElementPage       = "_page"
	ElementPageCount  = "_page_count"
)

// RouteBasedCollectionStrategy renders a paginated collection whose links
// come from a named route.
type RouteBasedCollectionStrategy struct{}

var _ apis.Strategy = RouteBasedCollectionStrategy{}

// CreateResource implements apis.Strategy.
func (RouteBasedCollectionStrategy) CreateResource(instance any, md apis.Metadata, gen apis.Generator, req *http.Request, depth int) (*resource.Resource, error) {
	cmd, ok := md.(*metadata.RouteBasedCollection)
	if !ok {
		return nil, apis.NewUnexpectedMetadata(RouteBasedCollectionKind, md)
	}

	query := requestQuery(req)
	maps.Copy(query, cmd.QueryStringArguments())
	param := cmd.PaginationParam()

	return paginate(instance, cmd, gen, req, depth, func(rel string, page int) (resource.Link, error) {
		params, q := cmd.RouteParams(), maps.Clone(query)
		if cmd.PaginationParamType() == apis.PaginationPlaceholder {
			params[param] = page
		} else {
			q[param] = page
		}
		return gen.LinkGenerator().FromRoute(rel, req, cmd.Route(), params, q)
	})
}

// URLBasedCollectionStrategy renders a paginated collection whose links
// derive from a fixed URL.
type URLBasedCollectionStrategy struct{}

var _ apis.Strategy = URLBasedCollectionStrategy{}

// CreateResource implements apis.Strategy.
func (URLBasedCollectionStrategy) CreateResource(instance any, md apis.Metadata, gen apis.Generator, req *http.Request, depth int) (*resource.Resource, error) {
	cmd, ok := md.(*metadata.URLBasedCollection)
	if !ok {
		return nil, apis.NewUnexpectedMetadata(URLBasedCollectionKind, md)
	}

	return paginate(instance, cmd, gen, req, depth, func(rel string, page int) (resource.Link, error) {
		href, err := pageURL(cmd.URL(), cmd, page)
		if err != nil {
			return resource.Link{}, errors.Wrapf(err, "collection url of %s", cmd.TypeID())
		}
		return gen.LinkGenerator().FromURL(rel, href)
	})
}

// pageSource is the paging view of a traversable collection.
type pageSource struct {
	total   int
	perPage int
	fetch   func(page int) ([]any, error)
}

// traverse returns the paging view of instance. Paginators page
// themselves; slices, arrays and sequences form a single page.
func traverse(instance any) (pageSource, bool) {
	switch c := instance.(type) {
	case nil:
		return pageSource{}, false
	case apis.Paginator:
		return pageSource{total: c.TotalItems(), perPage: c.ItemsPerPage(), fetch: c.Page}, true
	case iter.Seq[any]:
		return singlePage(slices.Collect(c)), true
	case func(func(any) bool):
		return singlePage(slices.Collect(iter.Seq[any](c))), true
	}

	rv := reflect.ValueOf(instance)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return singlePage(items), true
	}
	return pageSource{}, false
}

func singlePage(items []any) pageSource {
	return pageSource{
		total:   len(items),
		perPage: len(items),
		fetch:   func(int) ([]any, error) { return items, nil },
	}
}

// paginate validates the requested page, embeds its items under the
// collection relation and links the neighbouring pages.
func paginate(instance any, md apis.CollectionMetadata, gen apis.Generator, req *http.Request, depth int, linkFor func(rel string, page int) (resource.Link, error)) (*resource.Resource, error) {
	src, ok := traverse(instance)
	if !ok {
		return nil, errors.Wrapf(apis.ErrNotTraversable, "%T described by %s", instance, md.TypeID())
	}

	pageCount := 0
	if src.perPage > 0 && src.total > 0 {
		pageCount = (src.total + src.perPage - 1) / src.perPage
	}

	page := RequestedPage(req, md)
	var items []any
	if pageCount == 0 {
		page = 1
	} else {
		if page < 1 || page > pageCount {
			return nil, apis.NewPageOutOfBounds(page, pageCount)
		}
		var err error
		if items, err = src.fetch(page); err != nil {
			return nil, errors.Wrapf(err, "fetching page %d of %s", page, md.TypeID())
		}
	}

	gen.Logger().Debug("paginating collection",
		zap.String("type", md.TypeID()),
		zap.Int("page", page),
		zap.Int("page_count", pageCount),
		zap.Int("total_items", src.total),
		zap.Int("depth", depth),
	)

	res := resource.New(resource.FieldsOf(
		ElementTotalItems, src.total,
		ElementPage, page,
		ElementPageCount, pageCount,
	))

	type pageLink struct {
		rel  string
		page int
		want bool
	}
	for _, pl := range []pageLink{
		{resource.RelSelf, page, true},
		{resource.RelFirst, 1, pageCount > 0},
		{resource.RelPrev, page - 1, page > 1},
		{resource.RelNext, page + 1, page < pageCount},
		{resource.RelLast, pageCount, pageCount > 0},
	} {
		if !pl.want {
			continue
		}
		l, err := linkFor(pl.rel, pl.page)
		if err != nil {
			return nil, err
		}
		res.AddLink(l)
	}

	embedded, err := embedItems(items, gen, req, depth+1)
	if err != nil {
		return nil, err
	}
	res.EmbedCollection(md.CollectionRelation(), embedded)
	return res, nil
}

// embedItems renders items in order. With a concurrency above one the
// items are rendered in parallel; the first failure cancels the rest.
func embedItems(items []any, gen apis.Generator, req *http.Request, depth int) ([]*resource.Resource, error) {
	out := make([]*resource.Resource, len(items))

	limit := gen.Config().Concurrency
	if limit <= 1 || len(items) < 2 {
		for i, item := range items {
			r, err := gen.FromObjectAt(item, req, depth)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	}

	g, ctx := errgroup.WithContext(req.Context())
	g.SetLimit(limit)
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := gen.FromObjectAt(item, req, depth)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
