package node

import "math"

const (
	// Bit masks for the packed Flags field
	LeftLeafMask     = 0x80000000 // Mask for "left child is a terminal value" (bit 31)
	RightLeafMask    = 0x40000000 // Mask for "right child is a terminal value" (bit 30)
	FeatureIndexMask = 0x3FFFFFFF // Mask for the split feature index (bits 0-29)

	// MaxFeatureIndex is the largest feature index the 30-bit flag field can hold.
	MaxFeatureIndex = FeatureIndexMask

	// MaxNodes is the number of array slots addressable by a 16-bit pointer.
	MaxNodes = math.MaxUint16 + 1
)

// sizes in the serialized forest blob
const (
	BranchSize = 12 // fixed branch record size in bytes
	HeaderSize = 8  // fixed forest header size in bytes
)
