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

package link

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	uref "github.com/samsonasik/mezzio-hal/utils/reflect"
)

// URLGenerator builds the URL of a named route.
type URLGenerator interface {
	Generate(req *http.Request, route string, params, query map[string]any) (string, error)
}

// NewRelativeURLGenerator returns a URLGenerator producing paths such as
// "/posts/1?page=2".
func NewRelativeURLGenerator(routes *Routes) URLGenerator {
	return relativeURLGenerator{routes: routes}
}

type relativeURLGenerator struct {
	routes *Routes
}

func (g relativeURLGenerator) Generate(_ *http.Request, route string, params, query map[string]any) (string, error) {
	path, err := g.routes.Path(route, params)
	if err != nil {
		return "", err
	}
	return withQuery(path, query), nil
}

// NewServerURLGenerator returns a URLGenerator producing absolute URLs
// whose scheme and host come from the request, honouring
// X-Forwarded-Proto and X-Forwarded-Host.
func NewServerURLGenerator(routes *Routes) URLGenerator {
	return serverURLGenerator{relativeURLGenerator{routes: routes}}
}

type serverURLGenerator struct {
	relativeURLGenerator
}

func (g serverURLGenerator) Generate(req *http.Request, route string, params, query map[string]any) (string, error) {
	rel, err := g.relativeURLGenerator.Generate(req, route, params, query)
	if err != nil || req == nil {
		return rel, err
	}
	return baseURL(req) + rel, nil
}

// baseURL returns "scheme://host" of req, or "" when the host is unknown.
func baseURL(req *http.Request) string {
	host := firstValue(req.Header.Get("X-Forwarded-Host"))
	if host == "" {
		host = req.Host
	}
	if host == "" && req.URL != nil {
		host = req.URL.Host
	}
	if host == "" {
		return ""
	}

	scheme := firstValue(req.Header.Get("X-Forwarded-Proto"))
	if scheme == "" {
		scheme = "http"
		if req.TLS != nil {
			scheme = "https"
		}
	}
	return scheme + "://" + host
}

// firstValue returns the first entry of a comma-separated header value.
func firstValue(h string) string {
	v, _, _ := strings.Cut(h, ",")
	return strings.TrimSpace(v)
}

// withQuery appends query to path. Keys are sorted; list values repeat the
// key.
func withQuery(path string, query map[string]any) string {
	if len(query) == 0 {
		return path
	}
	values := url.Values{}
	for k, v := range query {
		switch x := v.(type) {
		case nil:
			values.Set(k, "")
		case []string:
			values[k] = append([]string(nil), x...)
		case []any:
			for _, item := range x {
				values.Add(k, text(item))
			}
		default:
			values.Set(k, text(v))
		}
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + values.Encode()
}

func text(v any) string {
	if s, ok := uref.ScalarString(v); ok {
		return s
	}
	return fmt.Sprint(v)
}
