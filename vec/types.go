// Package vec defines the Vector type, its functional options, and the
// constructors for every way a sequence comes into existence: empty,
// sized, or copied from existing data.
//
// Errors:
//
//	ErrIndexOutOfBounds - position outside the operation's valid range.
//	ErrEmptyVector      - PopBack/Erase on a sequence with no elements.
//	ErrNegativeCount    - negative element count (NewSized, Resize).
package vec

import "github.com/katalvlaran/lvlvec/rawbuf"

// Vector is a dynamic sequence of T over one exclusively-owned storage
// buffer.
//
// Invariant: 0 <= size <= buf.Cap(); slots [0, size) hold live elements,
// slots [size, Cap()) are dead (zero-valued, never observed through the
// public surface). The buffer has no independent lifecycle: it is created,
// swapped and released only by Vector operations.
type Vector[T any] struct {
	buf  rawbuf.Buffer[T] // owned storage, capacity lives here
	size int              // count of live elements

	// cloneFn, when installed, deep-copies one element. It is consulted
	// only by the copying paths (Clone, Assign, FromSlice); element
	// transfer during growth is plain assignment, which cannot fail.
	cloneFn func(T) T
}

// Option configures a Vector at construction time.
type Option[T any] func(*Vector[T])

// WithCapacity pre-reserves storage for n elements, so the first n
// appends never reallocate. Panics if n is negative (programmer error,
// caught at option construction).
func WithCapacity[T any](n int) Option[T] {
	if n < 0 {
		panic("vec: WithCapacity requires n >= 0")
	}
	return func(v *Vector[T]) {
		_ = v.Reserve(n) // n already validated; Reserve cannot fail here
	}
}

// WithCloneFunc installs fn as the per-element deep copy used by Clone,
// Assign and FromSlice. Without it, copying assigns element values
// directly, which is correct for value-only element types. Panics on a
// nil fn (programmer error).
func WithCloneFunc[T any](fn func(T) T) Option[T] {
	if fn == nil {
		panic("vec: WithCloneFunc requires a non-nil fn")
	}
	return func(v *Vector[T]) { v.cloneFn = fn }
}

// New creates an empty Vector. Without options it performs no allocation
// at all: capacity 0, size 0.
// Complexity: O(1), plus O(n) when WithCapacity(n) is given.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	// Apply options
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// NewSized creates a Vector of n live zero-valued elements with capacity
// exactly n (options may raise, never lower, the capacity).
// Stage 1 (Validate): reject negative n.
// Stage 2 (Prepare): allocate exactly n slots; the runtime zero-fills
// them, which is precisely default construction of the n elements.
// Stage 3 (Finalize): mark all n slots live.
// Complexity: O(n) time and memory.
func NewSized[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	// Validate element count
	if n < 0 {
		return nil, vecErrorf("NewSized", n, ErrNegativeCount)
	}
	v := New(opts...)
	// Ensure storage for exactly n elements (no-op when an option already
	// reserved at least that much)
	if err := v.Reserve(n); err != nil {
		return nil, err
	}
	// All n slots are zero-valued; declare them live
	v.size = n

	return v, nil
}

// FromSlice creates a Vector holding a copy of src, capacity exactly
// len(src) (options may raise, never lower, the capacity). The copy is
// element-wise and independent: mutating the Vector never affects src.
// WithCloneFunc deepens the per-element copy.
// Complexity: O(len(src)) time and memory.
func FromSlice[T any](src []T, opts ...Option[T]) *Vector[T] {
	v := New(opts...)
	_ = v.Reserve(len(src)) // len(src) >= 0, Reserve cannot fail
	// Copy-construct every element into the fresh storage
	dst := v.buf.Offset(0)
	for i, x := range src {
		dst[i] = v.cloneElem(x)
	}
	v.size = len(src)

	return v
}

// cloneElem copies one element through the installed clone hook, or by
// plain assignment when no hook is set.
func (v *Vector[T]) cloneElem(x T) T {
	if v.cloneFn != nil {
		return v.cloneFn(x)
	}

	return x
}
