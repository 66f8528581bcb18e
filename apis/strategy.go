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

// Strategy turns an instance and its resolved metadata into a resource.
// A strategy handed a metadata kind it does not implement must fail with
// ErrUnexpectedMetadata.
type Strategy interface {
	// CreateResource builds the representation of instance. depth is 0 for
	// a top-level call and grows by one per nested embed.
	CreateResource(instance any, md Metadata, gen Generator, req *http.Request, depth int) (*resource.Resource, error)
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(instance any, md Metadata, gen Generator, req *http.Request, depth int) (*resource.Resource, error)

// CreateResource implements Strategy for StrategyFunc.
func (f StrategyFunc) CreateResource(instance any, md Metadata, gen Generator, req *http.Request, depth int) (*resource.Resource, error) {
	return f(instance, md, gen, req, depth)
}
