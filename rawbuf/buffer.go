// Package rawbuf: Buffer implementation.
//
// Buffer[T] owns a flat slab of exactly Cap() slots. It deliberately knows
// nothing about element liveness: the owning sequence tracks which prefix
// of slots holds live values and drives Clear/Release accordingly. Under
// Go's runtime every slot is zero-initialized on allocation and the slab
// is reclaimed by the GC once released; Clear exists so that destroying
// elements drops their references immediately instead of at the next
// reallocation.

package rawbuf

// Buffer is an exclusively-owned block of capacity slots for elements of
// type T. The zero value is a null buffer: no storage, zero capacity.
//
// A Buffer value must not be copied: the copy would alias the slab while
// neither owner knows the live-slot count. Transfer ownership with Swap.
type Buffer[T any] struct {
	slab []T // backing storage, len(slab) == capacity; nil when capacity is 0
}

// New allocates a buffer with storage for capacity elements.
// Stage 1 (Validate): reject negative capacity.
// Stage 2 (Prepare): allocate the slab, or keep it nil for capacity 0.
// Stage 3 (Finalize): return the owning Buffer value.
// Allocation is all-or-nothing; on error no storage is acquired.
// Complexity: O(capacity) zeroing by the runtime.
func New[T any](capacity int) (Buffer[T], error) {
	// Validate requested slot count
	if capacity < 0 {
		return Buffer[T]{}, ErrNegativeCapacity
	}
	// A zero-capacity buffer stays null: no allocation at all
	if capacity == 0 {
		return Buffer[T]{}, nil
	}

	// Allocate the slab in one step
	return Buffer[T]{slab: make([]T, capacity)}, nil
}

// Cap returns the number of slots the buffer owns, live or not.
// Complexity: O(1).
func (b *Buffer[T]) Cap() int {
	return len(b.slab) // slab length is the capacity
}

// At returns the address of slot i. The index is validated against
// capacity only (the slab bounds check): the buffer cannot know whether
// the slot is live, so addressing a dead slot is legal here and the
// caller's contract decides whether reading it is meaningful.
// Complexity: O(1).
func (b *Buffer[T]) At(i int) *T {
	return &b.slab[i] // bounds check against capacity, nothing else
}

// Offset returns the slot window [k, Cap()). Offset(0) on a null buffer
// yields a nil window; any other out-of-capacity offset panics.
// Complexity: O(1).
func (b *Buffer[T]) Offset(k int) []T {
	return b.slab[k:] // window into owned storage, no copy
}

// Swap exchanges owned storage with other in constant time.
// Never allocates, never fails. This is the only ownership-transfer
// primitive: move semantics are Swap against a zero-valued Buffer,
// leaving the source null and independently reusable.
// Complexity: O(1).
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slab, other.slab = other.slab, b.slab
}

// Clear zeroes the slot range [lo, hi), releasing whatever the vacated
// elements referenced. This is the destroy primitive for the owner's
// live-element discipline. Range bounds are validated against capacity
// by the slab bounds check.
// Complexity: O(hi-lo).
func (b *Buffer[T]) Clear(lo, hi int) {
	var zero T
	for i := lo; i < hi; i++ { // fixed order, one write per slot
		b.slab[i] = zero
	}
}

// Release drops the slab entirely, returning the buffer to the null
// state. No-op on a null buffer. The runtime reclaims the storage; the
// owner is expected to have destroyed live elements first (via Clear or
// by abandoning the whole slab at once).
// Complexity: O(1).
func (b *Buffer[T]) Release() {
	b.slab = nil
}
