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

	"go.uber.org/zap"

	"github.com/samsonasik/mezzio-hal/resource"
)

// Generator is the view of the resource generator handed to strategies.
type Generator interface {
	// FromArray represents data with no backing type.
	FromArray(data *resource.Fields, selfURI string) *resource.Resource
	// FromObject represents instance at depth 0.
	FromObject(instance any, req *http.Request) (*resource.Resource, error)
	// FromObjectAt represents instance at the given embedding depth.
	FromObjectAt(instance any, req *http.Request, depth int) (*resource.Resource, error)

	// MetadataMap returns the metadata map in use.
	MetadataMap() MetadataMap
	// Resolver returns the metadata resolver in use.
	Resolver() Resolver
	// Extractors returns the extractor registry in use.
	Extractors() ExtractorRegistry
	// LinkGenerator returns the link generator in use.
	LinkGenerator() LinkGenerator
	// Config returns the active configuration.
	Config() Config
	// Logger returns the generator's logger; never nil.
	Logger() *zap.Logger
}
