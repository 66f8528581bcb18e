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

// Package paginator provides apis.Paginator implementations over in-memory
// slices and over page-fetching functions.
package paginator

import (
	"github.com/cockroachdb/errors"

	"github.com/samsonasik/mezzio-hal/apis"
)

// ErrInvalidPage is returned when a page outside the collection is fetched.
var ErrInvalidPage = errors.New("hal(paginator): invalid page")

// Slice pages an in-memory slice.
type Slice[T any] struct {
	items   []T
	perPage int
}

// Ensure Slice implements apis.Paginator.
var _ apis.Paginator = (*Slice[int])(nil)

// New pages items perPage at a time. A perPage below 1 puts every item on
// one page.
func New[T any](items []T, perPage int) *Slice[T] {
	if perPage < 1 {
		perPage = len(items)
	}
	return &Slice[T]{items: items, perPage: perPage}
}

// TotalItems implements apis.Paginator.
func (p *Slice[T]) TotalItems() int { return len(p.items) }

// ItemsPerPage implements apis.Paginator.
func (p *Slice[T]) ItemsPerPage() int { return p.perPage }

// Page returns the items of page n, counting from 1.
func (p *Slice[T]) Page(n int) ([]any, error) {
	lo, hi, err := bounds(n, p.perPage, len(p.items))
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, hi-lo)
	for _, item := range p.items[lo:hi] {
		out = append(out, item)
	}
	return out, nil
}

// All yields every item in order.
func (p *Slice[T]) All(yield func(T) bool) {
	for _, item := range p.items {
		if !yield(item) {
			return
		}
	}
}

// FetchFunc returns the items of one page: limit items starting at offset.
type FetchFunc func(offset, limit int) ([]any, error)

// Func pages a collection it does not hold, such as a database query.
type Func struct {
	total   int
	perPage int
	fetch   FetchFunc
}

// Ensure Func implements apis.Paginator.
var _ apis.Paginator = (*Func)(nil)

// NewFunc pages a collection of total items perPage at a time, fetching
// each page with fetch.
func NewFunc(total, perPage int, fetch FetchFunc) *Func {
	if total < 0 {
		total = 0
	}
	if perPage < 1 {
		perPage = total
	}
	return &Func{total: total, perPage: perPage, fetch: fetch}
}

// TotalItems implements apis.Paginator.
func (p *Func) TotalItems() int { return p.total }

// ItemsPerPage implements apis.Paginator.
func (p *Func) ItemsPerPage() int { return p.perPage }

// Page fetches page n, counting from 1.
func (p *Func) Page(n int) ([]any, error) {
	lo, hi, err := bounds(n, p.perPage, p.total)
	if err != nil {
		return nil, err
	}
	if p.fetch == nil || hi == lo {
		return []any{}, nil
	}
	items, err := p.fetch(lo, hi-lo)
	if err != nil {
		return nil, errors.Wrapf(err, "hal(paginator): fetching page %d", n)
	}
	return items, nil
}

// bounds returns the item range of page n.
func bounds(n, perPage, total int) (lo, hi int, err error) {
	if total == 0 || perPage == 0 {
		if n == 1 {
			return 0, 0, nil
		}
		return 0, 0, errors.Wrapf(ErrInvalidPage, "page %d of an empty collection", n)
	}
	pages := (total + perPage - 1) / perPage
	if n < 1 || n > pages {
		return 0, 0, errors.Wrapf(ErrInvalidPage, "page %d of %d", n, pages)
	}
	lo = (n - 1) * perPage
	hi = min(lo+perPage, total)
	return lo, hi, nil
}
