// Package vec: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the vec
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors on the unchecked
// fast paths (Ref, option constructors).

package vec

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vec: ..." for consistency and to allow
// easy grepping. DO NOT %w wrap these sentinels when returning directly;
// if context is essential, wrap with vecErrorf at the outer boundary —
// callers still match via errors.Is.

var (
	// ErrIndexOutOfBounds indicates a position outside the valid range of
	// the operation (for access and Erase: [0, Len()); for Insert:
	// [0, Len()]). Checked accessors MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("vec: index out of bounds")

	// ErrEmptyVector indicates PopBack or Erase was called on a sequence
	// with no live elements.
	ErrEmptyVector = errors.New("vec: vector is empty")

	// ErrNegativeCount indicates a negative element count was requested
	// (NewSized, Resize).
	ErrNegativeCount = errors.New("vec: count must be >= 0")
)

// vecErrorf wraps an underlying error with Vector method context.
func vecErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, idx, err)
}
