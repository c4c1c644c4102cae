// Package vec provides Vector[T], a generic dynamic sequence over one
// exclusively-owned rawbuf.Buffer.
//
// The vec package provides:
//
//   - Amortized O(1) append (PushBack) under the doubling growth policy
//     (capacity sequence 1, 2, 4, 8, … as needed).
//   - Positional Insert and Erase preserving the order of all other
//     elements, with O(n) shifting.
//   - Exact-capacity Reserve, Resize with zero-value tail construction,
//     constant-time Swap, deep Clone and storage-reusing Assign.
//   - Checked accessors (At, Set) returning sentinel errors, plus the
//     unchecked fast path Ref for hot loops.
//
// The package-wide invariant: slots [0, Len()) of the owned buffer hold
// live elements, slots [Len(), Cap()) are dead. Every mutation that
// reallocates builds and fills the new buffer before touching the old
// one, so the sequence is never observed in a corrupted state.
//
// Handles returned by PushBack, Insert, Ref and Slice are addresses into
// the owned buffer; any reallocation or shift invalidates them.
//
// Vector is not safe for concurrent use; guard shared instances
// externally.
//
// See the examples in this package and the repository examples/ directory
// for usage patterns.
package vec
