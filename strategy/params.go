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
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/samsonasik/mezzio-hal/apis"
	"github.com/samsonasik/mezzio-hal/metadata"
	"github.com/samsonasik/mezzio-hal/resource"
	uref "github.com/samsonasik/mezzio-hal/utils/reflect"
)

// RouteParams builds the route parameters of a resource's self link: every
// scalar field (renamed through the identifiers-to-placeholders mapping)
// plus the static route parameters of md. Static parameters win over
// extracted fields of the same name.
func RouteParams(fields *resource.Fields, md *metadata.RouteBasedResource) map[string]any {
	mapping := md.IdentifiersToPlaceholders()
	params := make(map[string]any, fields.Len())

	for p := fields.Oldest(); p != nil; p = p.Next() {
		if !uref.IsScalar(p.Value) {
			continue
		}
		name := p.Key
		if placeholder, ok := mapping[name]; ok {
			name = placeholder
		}
		params[name] = p.Value
	}

	// Routes written for the legacy single-placeholder form still receive
	// the identifier under their placeholder name.
	idField, placeholder := md.ResourceIdentifier(), md.RouteIdentifierPlaceholder()
	if _, mapped := mapping[idField]; !mapped && placeholder != idField {
		if v, ok := fields.Get(idField); ok && uref.IsScalar(v) {
			params[placeholder] = v
		}
	}

	for k, v := range md.RouteParams() {
		params[k] = v
	}
	return params
}

// RequestedPage reads the page number of a collection request. An absent
// parameter means page 1; text that is not a number reads as 0.
func RequestedPage(req *http.Request, md apis.CollectionMetadata) int {
	param := md.PaginationParam()
	if md.PaginationParamType() == apis.PaginationPlaceholder {
		raw := chi.URLParam(req, param)
		if raw == "" {
			return 1
		}
		return castInt(raw)
	}

	if req.URL == nil {
		return 1
	}
	values, ok := req.URL.Query()[param]
	if !ok || len(values) == 0 {
		return 1
	}
	return castInt(values[0])
}

// castInt reads the leading integer of s, skipping leading white space.
// Anything without leading digits is 0. Out-of-range values saturate.
func castInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if n > (math.MaxInt-d)/10 {
			if neg {
				return math.MinInt
			}
			return math.MaxInt
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}

// requestQuery flattens the request query string: single values become
// strings, repeated keys keep every value.
func requestQuery(req *http.Request) map[string]any {
	out := map[string]any{}
	if req == nil || req.URL == nil {
		return out
	}
	for k, vs := range req.URL.Query() {
		switch len(vs) {
		case 0:
			out[k] = ""
		case 1:
			out[k] = vs[0]
		default:
			out[k] = append([]string(nil), vs...)
		}
	}
	return out
}

// pageURL places page into a collection URL, either in its {param}
// placeholder or in its query string. Any fragment is dropped.
func pageURL(raw string, md apis.CollectionMetadata, page int) (string, error) {
	param := md.PaginationParam()
	if md.PaginationParamType() == apis.PaginationPlaceholder {
		return strings.ReplaceAll(raw, "{"+param+"}", strconv.Itoa(page)), nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(param, strconv.Itoa(page))
	u.RawQuery = q.Encode()
	u.Fragment = ""
	u.RawFragment = ""
	return u.String(), nil
}
