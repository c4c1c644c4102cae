// Package rawbuf provides the storage layer of lvlvec: a fixed-capacity
// slab of element slots with no knowledge of which slots hold live values.
//
// The rawbuf package provides:
//
//   - Buffer[T], an exclusively-owned block of capacity slots; the owner,
//     not the buffer, decides which prefix of slots is live.
//   - Unchecked addressing (At, Offset) against capacity only — the buffer
//     has no size to validate against.
//   - Constant-time ownership transfer via Swap; Buffer values are never
//     duplicated, because a capacity block carries no live-element count
//     and therefore has no meaningful copy.
//   - Clear, the destroy primitive: zeroing a slot range releases whatever
//     the vacated elements referenced.
//
// Buffers are best kept behind a sequence type (see package vec) that
// tracks the live prefix and upholds the construct/destroy discipline.
package rawbuf
