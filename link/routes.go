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
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"

	uref "github.com/samsonasik/mezzio-hal/utils/reflect"
)

var (
	// ErrRouteNotFound is returned when no route carries the requested name.
	ErrRouteNotFound = errors.New("hal(link): route not found")
	// ErrEmptyRouteName is returned when naming a route with an empty name.
	ErrEmptyRouteName = errors.New("hal(link): empty route name")
)

// Route is a named route.
type Route struct {
	Name    string // post
	Method  string // GET, POST, etc.
	Pattern string // /posts/{id}
}

// Routes registers handlers on a chi router and remembers route names so
// links can be generated from them.
type Routes struct {
	mux chi.Router

	mu    sync.RWMutex
	named map[string]Route
}

// NewRoutes creates a route table over a fresh chi router.
func NewRoutes() *Routes {
	return NewRoutesOn(chi.NewRouter())
}

// NewRoutesOn creates a route table over mux.
func NewRoutesOn(mux chi.Router) *Routes {
	return &Routes{mux: mux, named: make(map[string]Route)}
}

// ServeHTTP implements http.Handler.
func (r *Routes) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Mux returns the underlying chi router.
func (r *Routes) Mux() chi.Router {
	return r.mux
}

// Get registers a named GET route.
func (r *Routes) Get(name, pattern string, h http.HandlerFunc) error {
	return r.Handle(http.MethodGet, name, pattern, h)
}

// Post registers a named POST route.
func (r *Routes) Post(name, pattern string, h http.HandlerFunc) error {
	return r.Handle(http.MethodPost, name, pattern, h)
}

// Put registers a named PUT route.
func (r *Routes) Put(name, pattern string, h http.HandlerFunc) error {
	return r.Handle(http.MethodPut, name, pattern, h)
}

// Patch registers a named PATCH route.
func (r *Routes) Patch(name, pattern string, h http.HandlerFunc) error {
	return r.Handle(http.MethodPatch, name, pattern, h)
}

// Delete registers a named DELETE route.
func (r *Routes) Delete(name, pattern string, h http.HandlerFunc) error {
	return r.Handle(http.MethodDelete, name, pattern, h)
}

// Handle registers h for method and pattern on the router and names the
// route. A later route with the same name replaces the earlier name.
func (r *Routes) Handle(method, name, pattern string, h http.HandlerFunc) error {
	if strings.TrimSpace(name) == "" {
		return errors.Wrapf(ErrEmptyRouteName, "%s %s", method, pattern)
	}
	r.mux.Method(method, pattern, h)
	r.add(Route{Name: name, Method: method, Pattern: pattern})
	return nil
}

// Name names a pattern served elsewhere, without registering a handler.
func (r *Routes) Name(name, pattern string) error {
	if strings.TrimSpace(name) == "" {
		return errors.Wrapf(ErrEmptyRouteName, "%s", pattern)
	}
	r.add(Route{Name: name, Pattern: pattern})
	return nil
}

func (r *Routes) add(rt Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.named[rt.Name] = rt
}

// Route returns the route carrying name.
func (r *Routes) Route(name string) (Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.named[name]
	if !ok {
		return Route{}, errors.Wrapf(ErrRouteNotFound, "%q", name)
	}
	return rt, nil
}

// Routes returns every named route, sorted by name.
func (r *Routes) Routes() []Route {
	r.mu.RLock()
	out := make([]Route, 0, len(r.named))
	for _, rt := range r.named {
		out = append(out, rt)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Path expands the pattern of the named route with params.
func (r *Routes) Path(name string, params map[string]any) (string, error) {
	rt, err := r.Route(name)
	if err != nil {
		return "", err
	}
	return Expand(rt.Pattern, params), nil
}

// Expand fills the placeholders of a chi pattern ("{id}", "{id:[0-9]+}",
// a trailing "*") with path-escaped scalar params. Placeholders without a
// scalar value are kept as "{name}", which leaves the result templated.
func Expand(pattern string, params map[string]any) string {
	var b strings.Builder
	b.Grow(len(pattern))

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '{':
			end := closingBrace(pattern, i)
			if end < 0 {
				b.WriteString(pattern[i:])
				return b.String()
			}
			name, _, _ := strings.Cut(pattern[i+1:end], ":")
			if s, ok := param(params, name); ok {
				b.WriteString(url.PathEscape(s))
			} else {
				b.WriteString("{" + name + "}")
			}
			i = end + 1
		case c == '*' && i == len(pattern)-1:
			if s, ok := param(params, "*"); ok {
				b.WriteString(s)
			} else {
				b.WriteByte('*')
			}
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// closingBrace finds the brace closing the one at open, allowing nested
// braces inside regular expressions.
func closingBrace(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func param(params map[string]any, name string) (string, bool) {
	v, ok := params[name]
	if !ok {
		return "", false
	}
	return uref.ScalarString(v)
}
