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

package resolver

import (
	"reflect"

	"github.com/samsonasik/mezzio-hal/apis"
)

// NewNamerStep creates a Step that uses apis.Namer.
func NewNamerStep() Step {
	return &namerStep{}
}

// namerStep is a zero-cost fast path: if v implements apis.Namer,
// return its EntityName() and stop the chain.
type namerStep struct{}

// Ensure namerStep implements Step.
var _ Step = (*namerStep)(nil)

var namerType = reflect.TypeFor[apis.Namer]()

// TryName checks if v implements apis.Namer and returns its EntityName().
func (*namerStep) TryName(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if n, ok := v.(apis.Namer); ok {
		return n.EntityName(), true
	}
	return "", false
}

// TryNameType calls EntityName on the zero value of t (or of *t when the
// method has a pointer receiver). Types whose EntityName depends on field
// values should not rely on type-level resolution.
func (*namerStep) TryNameType(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	switch {
	case t.Kind() == reflect.Interface:
		return "", false
	case t.Kind() == reflect.Ptr && t.Implements(namerType):
		return reflect.New(t.Elem()).Interface().(apis.Namer).EntityName(), true
	case t.Implements(namerType):
		return reflect.Zero(t).Interface().(apis.Namer).EntityName(), true
	case reflect.PointerTo(t).Implements(namerType):
		return reflect.New(t).Interface().(apis.Namer).EntityName(), true
	}
	return "", false
}
