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
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
)

// Generation errors. Raise sites wrap these with context; match them with
// errors.Is. Every one of them is fatal to the generation call that raised it.
var (
	// ErrUnknownType is returned when the metadata map has no entry for the
	// exact requested type id.
	ErrUnknownType = errors.New("hal: unknown type")
	// ErrObjectNotInMetadataMap is returned when neither the object's type
	// nor any of its ancestors has metadata.
	ErrObjectNotInMetadataMap = errors.New("hal: object not in metadata map")
	// ErrStrategyNotFound is returned when no strategy is registered for
	// the kind of the resolved metadata.
	ErrStrategyNotFound = errors.New("hal: no strategy registered for metadata kind")
	// ErrInvalidMetadataKind is returned when a kind supplied at
	// registration time is not a metadata type.
	ErrInvalidMetadataKind = errors.New("hal: invalid metadata kind")
	// ErrInvalidStrategy is returned when a value supplied at registration
	// time does not satisfy the Strategy contract.
	ErrInvalidStrategy = errors.New("hal: invalid strategy")
	// ErrUnexpectedMetadata is returned by a strategy handed a metadata
	// kind it does not implement.
	ErrUnexpectedMetadata = errors.New("hal: unexpected metadata kind")
	// ErrNotTraversable is returned when collection metadata resolves for a
	// value that cannot be iterated.
	ErrNotTraversable = errors.New("hal: collection is not traversable")
	// ErrPageOutOfBounds is matched by every *PageOutOfBoundsError.
	ErrPageOutOfBounds = errors.New("hal: page out of bounds")
	// ErrExtractorNotFound is returned when metadata names an extractor the
	// registry does not know.
	ErrExtractorNotFound = errors.New("hal: extractor not found")
	// ErrCircularReference is returned, when cycle detection is enabled,
	// for an instance re-entered on its own embedding path.
	ErrCircularReference = errors.New("hal: circular reference")
)

// PageOutOfBoundsError reports a requested page outside [1, PageCount].
type PageOutOfBoundsError struct {
	// Page is the requested page.
	Page int
	// PageCount is the number of pages of the collection.
	PageCount int
}

// Error renders the client-facing message.
func (e *PageOutOfBoundsError) Error() string {
	noun := "pages"
	if e.PageCount == 1 {
		noun = "page"
	}
	return fmt.Sprintf("Page %d is out of bounds. Collection has %d %s.", e.Page, e.PageCount, noun)
}

// Is makes errors.Is(err, ErrPageOutOfBounds) hold.
func (e *PageOutOfBoundsError) Is(target error) bool {
	return target == ErrPageOutOfBounds
}

// NewPageOutOfBounds returns a *PageOutOfBoundsError with a stack trace.
func NewPageOutOfBounds(page, pageCount int) error {
	return errors.WithStack(&PageOutOfBoundsError{Page: page, PageCount: pageCount})
}

// NewUnexpectedMetadata reports a strategy built for expected that was
// handed metadata of kind actual.
func NewUnexpectedMetadata(expected reflect.Type, actual Metadata) error {
	return errors.Wrapf(ErrUnexpectedMetadata, "expected %s, received %s",
		KindName(expected), KindName(KindOf(actual)))
}
