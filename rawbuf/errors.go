// Package rawbuf: sentinel error set.
// All constructors MUST return these sentinels and tests MUST check them
// via errors.Is. Panics are reserved for programmer errors (addressing
// beyond capacity), surfaced by the slab bounds check itself.

package rawbuf

import "errors"

var (
	// ErrNegativeCapacity is returned when a buffer is requested for a
	// negative number of slots. Allocation is all-or-nothing: on error no
	// storage is acquired.
	ErrNegativeCapacity = errors.New("rawbuf: capacity must be >= 0")
)
