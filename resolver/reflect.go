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
	"sync"

	"github.com/samsonasik/mezzio-hal/apis"
	uref "github.com/samsonasik/mezzio-hal/utils/reflect"
)

// NewReflectStep creates a Step that computes ids via reflection using
// utils/reflect.Normalize and memoization.
func NewReflectStep(cfg apis.Config) Step {
	return reflectStep{maxUnwrap: cfg.MaxUnwrap}
}

// reflectStep is the universal fallback that computes a stable "pkg.Type".
// It unwraps pointers via Normalize and strips generic instantiation
// parameters. Types without a name are not handled.
type reflectStep struct {
	maxUnwrap int
}

// Ensure reflectStep implements Step.
var _ Step = reflectStep{}

// cacheKey ensures memoization respects the config knobs that affect resolution.
type cacheKey struct {
	t         reflect.Type
	maxUnwrap int16
}

// typeIDCache caches resolved ids by (type, config knobs).
var typeIDCache sync.Map // key: cacheKey, val: string

// TryName computes the id for v's type.
func (s reflectStep) TryName(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	return s.TryNameType(reflect.TypeOf(v))
}

// TryNameType computes the id for t.
func (s reflectStep) TryNameType(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	id := s.byType(t)
	return id, id != ""
}

// byType resolves the id for t with memoization.
func (s reflectStep) byType(t reflect.Type) string {
	key := cacheKey{t: t, maxUnwrap: int16(s.maxUnwrap)}
	if v, ok := typeIDCache.Load(key); ok {
		return v.(string)
	}
	id := uref.TypeID(t, apis.Config{MaxUnwrap: s.maxUnwrap})
	typeIDCache.Store(key, id)
	return id
}
