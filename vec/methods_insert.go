// Package vec: positional Insert and Erase.
//
// Both preserve the order of all untouched elements. The in-place paths
// shift by assignment (Go's copy is overlap-safe); the reallocating
// Insert path assembles the new buffer completely — new element first,
// then prefix and suffix on either side — before the old storage is
// cleared and swapped out.

package vec

// Insert places x at position i, shifting elements [i, Len()) one slot
// right; 0 <= i <= Len(). It returns a handle to the inserted element,
// valid within the possibly-new buffer until the next reallocation or
// shift.
// Stage 1 (Validate): position must lie in [0, Len()].
// Stage 2 (End): i == Len() delegates to PushBack.
// Stage 3 (In place): capacity available — shift [i, Len()) right by one
// and assign x at i.
// Stage 4 (Grow): allocate max(1, 2*size) slots, place x at offset i in
// the new buffer, transfer prefix [0, i) and suffix [i, Len()) around
// it, destroy the old elements, swap.
// Complexity: O(Len()-i) in place; O(Len()) when growing.
func (v *Vector[T]) Insert(i int, x T) (*T, error) {
	// Validate position; Len() itself is a legal insertion point
	if i < 0 || i > v.size {
		return nil, vecErrorf("Insert", i, ErrIndexOutOfBounds)
	}
	// Insertion at the end is exactly an append
	if i == v.size {
		return v.PushBack(x), nil
	}

	if v.size < v.buf.Cap() {
		// Shift the tail right into the trailing dead slot; copy is
		// overlap-safe, so this is one backward move of [i, size)
		s := v.buf.Offset(0)
		copy(s[i+1:v.size+1], s[i:v.size])
		// x crossed the call boundary by value, so it cannot alias a
		// slot the shift just overwrote; assign it into place
		s[i] = x
		v.size++

		return v.buf.At(i), nil
	}

	// Build the replacement buffer under the doubling policy
	nb := newBuffer[T](v.grownCapacity())
	// Place the new element at its final offset before touching old storage
	*nb.At(i) = x
	// Transfer prefix and suffix around it by assignment
	old := v.buf.Offset(0)
	copy(nb.Offset(0), old[:i])
	copy(nb.Offset(i+1), old[i:v.size])
	// Destroy the old elements, then take ownership of the new storage
	v.buf.Clear(0, v.size)
	v.buf.Swap(&nb)
	nb.Release()
	v.size++

	return v.buf.At(i), nil
}

// Erase removes the element at position i, shifting elements (i, Len())
// one slot left; 0 <= i < Len(). After a successful Erase the element
// that followed the removed one lives at index i (or i == Len() when the
// last element was removed). Capacity is unchanged.
// Stage 1 (Validate): non-empty sequence, position in [0, Len()).
// Stage 2 (Shift): move the tail left by assignment.
// Stage 3 (Destroy): clear the vacated last slot, shrink the live count.
// Complexity: O(Len()-i).
func (v *Vector[T]) Erase(i int) error {
	// Validate precondition: at least one live element
	if v.size == 0 {
		return vecErrorf("Erase", i, ErrEmptyVector)
	}
	// Validate position against live elements
	if err := v.checkIndex("Erase", i); err != nil {
		return err
	}

	// Shift the tail left over the erased slot
	s := v.buf.Offset(0)
	copy(s[i:v.size-1], s[i+1:v.size])
	// Destroy the now-duplicated last slot and release its references
	v.buf.Clear(v.size-1, v.size)
	v.size--

	return nil
}
