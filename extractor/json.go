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

package extractor

import (
	"bytes"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"

	"github.com/samsonasik/mezzio-hal/resource"
)

// JSON extracts the fields a value encodes to as a JSON object, in encoded
// order. Values come back in their decoded JSON form: numbers are float64
// and nested objects map[string]any.
type JSON struct{}

// Extract implements apis.Extractor.
func (JSON) Extract(v any) (*resource.Fields, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "hal(extractor): encoding %T", v)
	}
	if trimmed := bytes.TrimSpace(b); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.Wrapf(ErrUnsupportedValue, "%T does not encode to a JSON object", v)
	}

	out := resource.NewFields()
	if err := out.UnmarshalJSON(b); err != nil {
		return nil, errors.Wrapf(err, "hal(extractor): decoding %T", v)
	}
	return out, nil
}
