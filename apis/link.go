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

import (
	"net/http"

	"github.com/samsonasik/mezzio-hal/resource"
)

// LinkGenerator produces links from static URLs or named routes.
type LinkGenerator interface {
	// FromURL creates a link to a static URL.
	FromURL(rel, url string) (resource.Link, error)
	// FromRoute creates a link to a named route. query may be nil.
	FromRoute(rel string, req *http.Request, route string, params map[string]any, query map[string]any) (resource.Link, error)
}
