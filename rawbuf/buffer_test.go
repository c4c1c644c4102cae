// Package rawbuf_test contains unit tests for the Buffer storage slab.
package rawbuf_test

import (
	"testing"

	"github.com/katalvlaran/lvlvec/rawbuf"
	"github.com/stretchr/testify/require"
)

// TestNewNegativeCapacity ensures that New rejects negative slot counts.
func TestNewNegativeCapacity(t *testing.T) {
	_, err := rawbuf.New[int](-1)                       // request an impossible slot count
	require.ErrorIs(t, err, rawbuf.ErrNegativeCapacity) // expect ErrNegativeCapacity
}

// TestNewZeroCapacityIsNull verifies that capacity 0 allocates nothing.
func TestNewZeroCapacityIsNull(t *testing.T) {
	b, err := rawbuf.New[int](0) // zero-capacity request
	require.NoError(t, err)      // valid, not an error
	require.Equal(t, 0, b.Cap()) // null buffer reports zero capacity
	require.Nil(t, b.Offset(0))  // and owns no storage at all
}

// TestCapMatchesRequest verifies that New allocates exactly the requested capacity.
func TestCapMatchesRequest(t *testing.T) {
	b, err := rawbuf.New[string](7) // allocate seven slots
	require.NoError(t, err)         // allocation succeeded
	require.Equal(t, 7, b.Cap())    // capacity is exactly the request
}

// TestAtAddressesSlots verifies that At returns writable slot addresses.
func TestAtAddressesSlots(t *testing.T) {
	b, err := rawbuf.New[int](3) // three slots
	require.NoError(t, err)      // allocation succeeded

	*b.At(0) = 10 // write through slot addresses
	*b.At(2) = 30

	require.Equal(t, 10, *b.At(0)) // reads observe the writes
	require.Equal(t, 30, *b.At(2))
	require.Equal(t, 0, *b.At(1)) // untouched slot holds the zero value
}

// TestAtBeyondCapacityPanics ensures the capacity bounds check fires.
func TestAtBeyondCapacityPanics(t *testing.T) {
	b, err := rawbuf.New[int](2) // two slots
	require.NoError(t, err)      // allocation succeeded

	require.Panics(t, func() { _ = b.At(2) })  // one past capacity
	require.Panics(t, func() { _ = b.At(-1) }) // negative slot
}

// TestOffsetWindow verifies Offset returns the [k, Cap()) window over owned storage.
func TestOffsetWindow(t *testing.T) {
	b, err := rawbuf.New[int](4) // four slots
	require.NoError(t, err)      // allocation succeeded

	w := b.Offset(1)           // window over slots 1..3
	require.Len(t, w, 3)       // three slots remain past offset 1
	w[0] = 42                  // write through the window
	require.Equal(t, 42, *b.At(1)) // visible through direct addressing: same storage
}

// TestSwapTransfersOwnership verifies constant-time ownership exchange.
func TestSwapTransfersOwnership(t *testing.T) {
	a, err := rawbuf.New[int](2) // donor buffer
	require.NoError(t, err)
	*a.At(0) = 1 // mark the donor's storage

	var b rawbuf.Buffer[int] // null buffer as the receiver

	a.Swap(&b) // transfer ownership

	require.Equal(t, 0, a.Cap())   // source reverts to null, zero capacity
	require.Equal(t, 2, b.Cap())   // destination holds the storage
	require.Equal(t, 1, *b.At(0))  // contents traveled with the slab
}

// TestClearZeroesRange verifies that Clear releases a slot range to the zero value.
func TestClearZeroesRange(t *testing.T) {
	b, err := rawbuf.New[*int](3) // pointer elements make released references visible
	require.NoError(t, err)

	x, y := 1, 2
	*b.At(0) = &x // populate all three slots
	*b.At(1) = &y
	*b.At(2) = &x

	b.Clear(1, 3) // destroy the tail range

	require.NotNil(t, *b.At(0)) // slot outside the range untouched
	require.Nil(t, *b.At(1))    // cleared slots dropped their references
	require.Nil(t, *b.At(2))
}

// TestReleaseDropsSlab verifies Release returns the buffer to the null state.
func TestReleaseDropsSlab(t *testing.T) {
	b, err := rawbuf.New[int](5) // owned storage
	require.NoError(t, err)

	b.Release()                  // drop the slab
	require.Equal(t, 0, b.Cap()) // back to null
	b.Release()                  // second release is a no-op
	require.Equal(t, 0, b.Cap()) // still null
}
