// Package vec: append-side mutations and the growth policy.
//
// Growth is shared by every path that needs more slots: the next capacity
// is max(1, 2*size) unless an explicit Reserve target dictates the exact
// amount. Reallocation always builds and fills the new buffer before the
// old one is touched, then clears the old elements and swaps — a failure
// anywhere before the swap leaves the sequence unchanged.

package vec

import "github.com/katalvlaran/lvlvec/rawbuf"

// grownCapacity returns the doubling-policy capacity for one more element.
func (v *Vector[T]) grownCapacity() int {
	if v.size == 0 {
		return 1 // first allocation starts the 1, 2, 4, 8, … sequence
	}

	return v.size * 2
}

// newBuffer allocates capacity slots for internal reallocation paths.
// Every caller derives capacity from already-validated state, so a
// constructor error here is a programmer error.
func newBuffer[T any](capacity int) rawbuf.Buffer[T] {
	nb, err := rawbuf.New[T](capacity)
	if err != nil {
		panic(err)
	}

	return nb
}

// newBufferChecked allocates capacity slots for reallocation paths whose
// target comes from the caller, wrapping any constructor error with
// method context. The sequence is untouched when an error is returned.
func newBufferChecked[T any](method string, capacity int) (rawbuf.Buffer[T], error) {
	nb, err := rawbuf.New[T](capacity)
	if err != nil {
		return rawbuf.Buffer[T]{}, vecErrorf(method, capacity, err)
	}

	return nb, nil
}

// PushBack appends x as the new last element and returns its handle.
// Stage 1 (Fast path): trailing capacity available — construct in place.
// Stage 2 (Grow): at capacity — allocate max(1, 2*size) slots, place x
// into the new buffer first, then transfer the old elements, clear them,
// and swap. Because x lands in the new buffer before any old slot is
// touched, PushBack is safe even when x was read out of this vector.
// The returned handle is valid until the next reallocation or shift.
// Complexity: amortized O(1); O(n) on the growing step.
func (v *Vector[T]) PushBack(x T) *T {
	if v.size < v.buf.Cap() {
		// Construct in the first dead slot
		*v.buf.At(v.size) = x
		v.size++

		return v.buf.At(v.size - 1)
	}

	// Build the replacement buffer under the doubling policy
	nb := newBuffer[T](v.grownCapacity())
	// Place the new element before touching existing storage (x may have
	// been read out of the old buffer by the caller)
	*nb.At(v.size) = x
	// Transfer the old elements by assignment
	copy(nb.Offset(0), v.buf.Offset(0)[:v.size])
	// Destroy the old elements, then take ownership of the new storage
	v.buf.Clear(0, v.size)
	v.buf.Swap(&nb)
	nb.Release()
	v.size++

	return v.buf.At(v.size - 1)
}

// PopBack destroys the last live element and shrinks the sequence by one.
// Returns ErrEmptyVector when there is nothing to remove. Capacity is
// unchanged.
// Complexity: O(1).
func (v *Vector[T]) PopBack() error {
	// Validate precondition: at least one live element
	if v.size == 0 {
		return vecErrorf("PopBack", 0, ErrEmptyVector)
	}
	// Destroy the last element and release its references
	v.buf.Clear(v.size-1, v.size)
	v.size--

	return nil
}
