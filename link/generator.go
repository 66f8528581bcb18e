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

// Package link generates resource links from URLs and named chi routes.
package link

import (
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/samsonasik/mezzio-hal/apis"
	"github.com/samsonasik/mezzio-hal/resource"
)

// ErrEmptyRelation is returned when a link has no relation.
var ErrEmptyRelation = errors.New("hal(link): empty link relation")

// Generator is the default apis.LinkGenerator.
type Generator struct {
	urls URLGenerator
}

// Ensure Generator implements apis.LinkGenerator.
var _ apis.LinkGenerator = (*Generator)(nil)

// NewGenerator returns a link generator building route URLs with urls.
func NewGenerator(urls URLGenerator) *Generator {
	return &Generator{urls: urls}
}

// FromURL returns a link to href.
func (g *Generator) FromURL(rel, href string) (resource.Link, error) {
	if strings.TrimSpace(rel) == "" {
		return resource.Link{}, errors.Wrapf(ErrEmptyRelation, "link to %s", href)
	}
	return resource.NewLink(rel, href), nil
}

// FromRoute returns a link to the named route filled with params and
// query.
func (g *Generator) FromRoute(rel string, req *http.Request, route string, params, query map[string]any) (resource.Link, error) {
	if strings.TrimSpace(rel) == "" {
		return resource.Link{}, errors.Wrapf(ErrEmptyRelation, "link to route %q", route)
	}
	href, err := g.urls.Generate(req, route, params, query)
	if err != nil {
		return resource.Link{}, err
	}
	return resource.NewLink(rel, href), nil
}
