// Package vec: copy semantics — Clone (copy construction) and Assign
// (copy assignment).
//
// Clone always allocates exactly Len() slots: a fresh, independent
// sequence. Assign reuses the receiver's storage when it is large
// enough; otherwise it falls back to clone-and-swap, which gives the
// strong guarantee (the receiver is untouched until the swap).

package vec

// Clone returns a deep, independent copy of v: capacity exactly Len(),
// element-wise copy through the installed clone hook (plain assignment
// without one), and the hook itself carried over. Mutating the clone
// never affects v.
// Complexity: O(Len()) time and memory.
func (v *Vector[T]) Clone() *Vector[T] {
	out := &Vector[T]{cloneFn: v.cloneFn}
	if v.size == 0 {
		return out // empty clone owns no storage at all
	}

	// Allocate exactly the live count and copy-construct every element
	out.buf = newBuffer[T](v.size)
	src, dst := v.buf.Offset(0), out.buf.Offset(0)
	for i := 0; i < v.size; i++ { // fixed order, one copy per element
		dst[i] = out.cloneElem(src[i])
	}
	out.size = v.size

	return out
}

// Assign replaces v's contents with a copy of other's, adopting other's
// clone hook.
// Stage 1 (Swap path): other does not fit the current storage — build a
// temporary clone and swap it in (strong guarantee).
// Stage 2 (Reuse path): overwrite the overlapping prefix by assignment,
// copy-construct any extra tail into dead slots, destroy any excess
// tail, and record the new live count. Capacity is unchanged.
// Self-assignment is a no-op.
// Complexity: O(other.Len()) plus O(Len()) for destroyed excess.
func (v *Vector[T]) Assign(other *Vector[T]) {
	if v == other {
		return // self-assignment, nothing to do
	}

	if other.size > v.buf.Cap() {
		// Copy-and-swap: v is untouched until the clone is complete
		tmp := other.Clone()
		v.Swap(tmp)

		return
	}

	v.cloneFn = other.cloneFn
	src := other.buf.Offset(0)
	// Overwrite the overlapping prefix via assignment
	overlap := v.size
	if other.size < overlap {
		overlap = other.size
	}
	dst := v.buf.Offset(0)
	for i := 0; i < overlap; i++ {
		dst[i] = v.cloneElem(src[i])
	}
	if v.size < other.size {
		// Copy-construct the extra tail into dead slots
		for i := v.size; i < other.size; i++ {
			dst[i] = v.cloneElem(src[i])
		}
	} else if v.size > other.size {
		// Destroy the now-excess tail
		v.buf.Clear(other.size, v.size)
	}
	v.size = other.size
}
