package forest

import "unsafe"

// embedAlign is the alignment Aligned guarantees. 8 bytes satisfies the
// deserializer on both 32-bit and 64-bit targets.
const embedAlign = 8

// Aligned returns a buffer holding the same bytes as data whose base address
// is 8-byte aligned, as Deserialize requires.
//
// A model blob baked into the binary with go:embed carries no alignment
// guarantee, so it must pass through here before deserialization. If data
// is already aligned it is returned as-is; otherwise the bytes are copied
// once into aligned backing storage. The copy happens at load time, never
// at prediction time.
func Aligned(data []byte) []byte {
	if len(data) == 0 {
		return data
	}

	if uintptr(unsafe.Pointer(unsafe.SliceData(data)))%embedAlign == 0 {
		return data
	}

	backing := make([]uint64, (len(data)+embedAlign-1)/embedAlign)
	aligned := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(backing))), len(backing)*embedAlign)
	copy(aligned, data)

	return aligned[:len(data)]
}
