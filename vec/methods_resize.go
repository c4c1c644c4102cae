// Package vec: capacity and size management — Reserve, Resize, Swap.

package vec

// Reserve guarantees storage for at least n elements. When n does not
// exceed the current capacity this is a no-op (in particular, Reserve
// never shrinks); otherwise exactly n slots are allocated, the live
// elements are transferred in order, the old elements destroyed and the
// buffers swapped. Size never changes.
// Complexity: O(1) no-op; O(Len()) when reallocating.
func (v *Vector[T]) Reserve(n int) error {
	// No-op when the current buffer already suffices
	if n <= v.buf.Cap() {
		return nil
	}

	// Build the replacement buffer at exactly the requested capacity
	nb, err := newBufferChecked[T]("Reserve", n)
	if err != nil {
		return err
	}
	// Transfer the live elements by assignment
	copy(nb.Offset(0), v.buf.Offset(0)[:v.size])
	// Destroy the old elements, then take ownership of the new storage
	v.buf.Clear(0, v.size)
	v.buf.Swap(&nb)
	nb.Release()

	return nil
}

// Resize sets the live element count to n.
// Growing: ensures capacity for n elements (exact Reserve), then
// default-constructs the new tail as zero values. Shrinking: destroys
// the trailing excess elements; capacity is unchanged.
// Stage 1 (Validate): reject negative n.
// Stage 2 (Execute): reserve + construct tail, or destroy tail.
// Stage 3 (Finalize): record the new live count.
// Complexity: O(|n - Len()|), plus O(Len()) if growth reallocates.
func (v *Vector[T]) Resize(n int) error {
	// Validate requested count
	if n < 0 {
		return vecErrorf("Resize", n, ErrNegativeCount)
	}

	switch {
	case n > v.size:
		// Ensure storage, propagating any reservation failure untouched
		if err := v.Reserve(n); err != nil {
			return err
		}
		// Default-construct the new tail: zero every added slot (dead
		// slots are kept zeroed, but Ref writes past Len() may have
		// dirtied them — construction must not observe that)
		v.buf.Clear(v.size, n)
	case n < v.size:
		// Destroy the trailing excess and release its references
		v.buf.Clear(n, v.size)
	}
	v.size = n

	return nil
}

// Swap exchanges the entire state of v and other — buffers, live counts
// and clone hooks — in constant time. Never allocates, never fails. This
// is also the move primitive: swapping with a fresh Vector leaves the
// source empty and independently usable.
// Complexity: O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.cloneFn, other.cloneFn = other.cloneFn, v.cloneFn
}
