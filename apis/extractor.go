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

import "github.com/samsonasik/mezzio-hal/resource"

// Extractor flattens an object into an ordered field mapping.
type Extractor interface {
	Extract(v any) (*resource.Fields, error)
}

// ExtractorFunc adapts a plain function to the Extractor interface.
type ExtractorFunc func(v any) (*resource.Fields, error)

// Extract implements Extractor for ExtractorFunc.
func (f ExtractorFunc) Extract(v any) (*resource.Fields, error) {
	return f(v)
}

// ExtractorRegistry resolves extractors by name.
type ExtractorRegistry interface {
	// Get returns the extractor registered as name or fails with
	// ErrExtractorNotFound.
	Get(name string) (Extractor, error)
	// Has reports whether an extractor is registered as name.
	Has(name string) bool
}
