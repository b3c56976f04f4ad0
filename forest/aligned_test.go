package forest

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func pointerOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

func TestAlignedReturnsAlignedBufferAsIs(t *testing.T) {
	backing := make([]uint64, 4)
	data := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(backing))), 32)

	got := Aligned(data)
	require.Equal(t, pointerOf(data), pointerOf(got))
}

func TestAlignedCopiesMisalignedBuffer(t *testing.T) {
	raw := make([]byte, 64)
	for i := range raw {
		raw[i] = byte(i)
	}

	var off int
	for off = 1; off <= embedAlign; off++ {
		if pointerOf(raw[off:])%embedAlign != 0 {
			break
		}
	}
	data := raw[off : off+32]

	got := Aligned(data)
	require.Equal(t, data, got)
	require.Zero(t, pointerOf(got)%embedAlign)
	require.NotEqual(t, pointerOf(data), pointerOf(got))
}

func TestAlignedEmptyBuffer(t *testing.T) {
	require.Empty(t, Aligned(nil))
}
