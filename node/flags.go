package node

import (
	"fmt"

	"github.com/groveml/grove/errs"
)

// Flags is the packed per-branch field combining the split feature index
// with the two child-kind bits.
//
// Bit 31 marks the left child as a terminal value rather than a further
// branch, bit 30 does the same for the right child, and bits 0-29 hold the
// index of the feature tested by the branch. Stored little-endian on the
// wire as a single uint32.
type Flags uint32

// NewFlags packs a feature index and the two child-kind bits into a Flags
// value.
//
// Returns ErrForestTooLarge if featureIdx exceeds MaxFeatureIndex; a
// violating index is never silently truncated.
func NewFlags(featureIdx uint32, leftLeaf, rightLeaf bool) (Flags, error) {
	if featureIdx > MaxFeatureIndex {
		return 0, fmt.Errorf("feature index %d exceeds %d: %w", featureIdx, uint32(MaxFeatureIndex), errs.ErrForestTooLarge)
	}

	f := Flags(featureIdx)
	if leftLeaf {
		f |= LeftLeafMask
	}
	if rightLeaf {
		f |= RightLeafMask
	}

	return f, nil
}

// LeftLeaf returns whether the left child is a terminal value.
func (f Flags) LeftLeaf() bool {
	return f&LeftLeafMask != 0
}

// RightLeaf returns whether the right child is a terminal value.
func (f Flags) RightLeaf() bool {
	return f&RightLeafMask != 0
}

// FeatureIndex returns the index of the feature tested by the branch.
func (f Flags) FeatureIndex() uint32 {
	return uint32(f & FeatureIndexMask)
}

func (f Flags) String() string {
	return fmt.Sprintf("Flags{left leaf: %t, right leaf: %t, split var: %d}",
		f.LeftLeaf(), f.RightLeaf(), f.FeatureIndex())
}
