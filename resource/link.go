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

package resource

import "strings"

// Well-known link relations.
const (
	RelSelf  = "self"
	RelFirst = "first"
	RelPrev  = "prev"
	RelNext  = "next"
	RelLast  = "last"
)

// Link is a typed relational link. It is a value object.
type Link struct {
	// Relation is the role the target plays for the owning resource.
	Relation string
	// Href is the target URI, absolute or relative.
	Href string
	// Templated is true when Href still holds unresolved placeholders.
	Templated bool
	// Attributes carries optional link attributes (title, type, name, ...).
	Attributes map[string]any
}

// NewLink creates a link, detecting whether href is a URI template.
func NewLink(rel, href string) Link {
	return Link{Relation: rel, Href: href, Templated: IsTemplated(href)}
}

// WithAttribute returns a copy of l with the attribute set.
func (l Link) WithAttribute(name string, value any) Link {
	attrs := make(map[string]any, len(l.Attributes)+1)
	for k, v := range l.Attributes {
		attrs[k] = v
	}
	attrs[name] = value
	l.Attributes = attrs
	return l
}

// IsTemplated reports whether href contains a "{...}" placeholder.
func IsTemplated(href string) bool {
	open := strings.IndexByte(href, '{')
	return open >= 0 && strings.IndexByte(href[open:], '}') > 0
}
