// Package vec: observation and element access.
//
// This file provides the read-side surface of Vector: size/capacity
// queries, checked accessors returning sentinel errors, the unchecked
// fast-path accessor, and the live-window view used for traversal.

package vec

import "fmt"

// Len returns the number of live elements.
// Complexity: O(1).
func (v *Vector[T]) Len() int {
	return v.size // stored live count
}

// Cap returns the number of slots the owned buffer holds, live or not.
// Complexity: O(1).
func (v *Vector[T]) Cap() int {
	return v.buf.Cap() // capacity lives in the buffer
}

// Empty reports whether the sequence holds no live elements.
// Complexity: O(1).
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// checkIndex validates i against the live range [0, size).
func (v *Vector[T]) checkIndex(method string, i int) error {
	if i < 0 || i >= v.size {
		return vecErrorf(method, i, ErrIndexOutOfBounds)
	}

	return nil
}

// At retrieves the element at index i.
// Stage 1 (Validate): bounds check against the live range.
// Stage 2 (Execute): read the slot.
// Stage 3 (Finalize): return value or wrapped ErrIndexOutOfBounds.
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	// Validate index against live elements, not capacity
	if err := v.checkIndex("At", i); err != nil {
		var zero T
		return zero, err
	}

	// Read the live slot
	return *v.buf.At(i), nil
}

// Set assigns value x at index i.
// Stage 1 (Validate): bounds check against the live range.
// Stage 2 (Execute): overwrite the slot via assignment.
// Complexity: O(1).
func (v *Vector[T]) Set(i int, x T) error {
	// Validate index against live elements
	if err := v.checkIndex("Set", i); err != nil {
		return err
	}
	// Assign into the live slot
	*v.buf.At(i) = x

	return nil
}

// Ref is the unchecked fast-path accessor: it returns the address of
// slot i with no validation against Len(). Only the storage bounds check
// (capacity) stands, so Ref of a dead slot is reachable and reads the
// zero value; Ref past capacity panics. Use At/Set when the index is not
// already known to be in range. The returned handle is invalidated by
// any reallocation or shift.
// Complexity: O(1).
func (v *Vector[T]) Ref(i int) *T {
	return v.buf.At(i)
}

// Slice returns the live window [0, Len()) over the owned storage. The
// window is the begin/end traversal surface: writes through it mutate
// the sequence, and any reallocation or shift invalidates it. Nil for an
// unallocated vector.
// Complexity: O(1).
func (v *Vector[T]) Slice() []T {
	if v.buf.Cap() == 0 {
		return nil // null buffer, nothing to window
	}

	return v.buf.Offset(0)[:v.size:v.size]
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n) for string construction.
func (v *Vector[T]) String() string {
	s := "["
	for i := 0; i < v.size; i++ { // iterate live elements in order
		s += fmt.Sprintf("%v", *v.buf.At(i))
		if i < v.size-1 {
			s += ", " // separate values with comma
		}
	}

	return s + "]"
}
