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

// Config carries read-only generation knobs shared by the generator,
// resolver and strategies. It is passed by value and should be treated as
// immutable by implementations.
type Config struct {
	// MaxUnwrap limits pointer unwrapping when computing type ids.
	// Acts as a safety guard against pathological nesting.
	MaxUnwrap int

	// Concurrency bounds how many collection items are generated in
	// parallel. Values <= 1 keep embedding sequential.
	Concurrency int

	// DetectCycles makes the generator fail with ErrCircularReference when
	// an instance is re-entered on the current embedding path.
	DetectCycles bool
}
