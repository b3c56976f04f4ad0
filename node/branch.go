// Package node defines the fixed-size wire records of the optimized forest
// format: the 16-bit relative node pointer, the packed flag field, and the
// 12-byte branch record.
//
// A Branch value has the exact field order and sizes of its wire encoding,
// so on little-endian hosts a serialized node array can be viewed in place
// without copying. All multi-byte fields are little-endian on the wire.
package node

import (
	"fmt"
	"math"

	"github.com/groveml/grove/endian"
)

// Pointer is a 16-bit relative node pointer.
//
// Its interpretation is determined by the sibling flag bit of the branch
// holding it: either a dense index into the node array (forward references
// only), or, for classification, a directly inlined terminal class id.
type Pointer uint16

// Index returns the pointer interpreted as a node array index.
func (p Pointer) Index() int {
	return int(p)
}

// Branch is the only node kind persisted in the optimized format.
//
// Semantics: if features[Flags.FeatureIndex()] <= SplitAt take the left
// child, else the right child. A child is either a further Branch (pointer
// used as an array index) or a terminal value (pointer bits read directly),
// disambiguated by the corresponding flag bit.
//
// The field order mirrors the wire layout:
//
//	[u16 left][u16 right][f32 split_at][u32 flags]
//
// which makes Branch exactly BranchSize bytes with 4-byte alignment and no
// padding.
type Branch struct {
	Left    Pointer
	Right   Pointer
	SplitAt float32
	Flags   Flags
}

// NewBranch creates a branch testing the given feature against splitAt.
//
// Returns ErrForestTooLarge if featureIdx does not fit the 30-bit flag
// field.
func NewBranch(featureIdx uint32, splitAt float32, left, right Pointer, leftLeaf, rightLeaf bool) (Branch, error) {
	flags, err := NewFlags(featureIdx, leftLeaf, rightLeaf)
	if err != nil {
		return Branch{}, err
	}

	return Branch{
		Left:    left,
		Right:   right,
		SplitAt: splitAt,
		Flags:   flags,
	}, nil
}

// NewLeafRecord creates an array-resident regression leaf record.
//
// Regression terminal values are not inlined into the 16-bit pointer field;
// a leaf instead occupies an ordinary array slot carrying its prediction in
// the SplitAt field. Both child-kind bits are set and the pointers are zero
// so a leaf record is recognizable when listing a forest; traversal never
// reads a leaf record's pointers.
func NewLeafRecord(value float32) Branch {
	return Branch{
		SplitAt: value,
		Flags:   LeftLeafMask | RightLeafMask,
	}
}

// AppendTo appends the branch's 12-byte wire encoding to dst.
func (b Branch) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint16(dst, uint16(b.Left))
	dst = engine.AppendUint16(dst, uint16(b.Right))
	dst = engine.AppendUint32(dst, math.Float32bits(b.SplitAt))
	dst = engine.AppendUint32(dst, uint32(b.Flags))

	return dst
}

// ParseBranch decodes a branch record from data, which must hold at least
// BranchSize bytes.
func ParseBranch(data []byte, engine endian.EndianEngine) Branch {
	return Branch{
		Left:    Pointer(engine.Uint16(data[0:2])),
		Right:   Pointer(engine.Uint16(data[2:4])),
		SplitAt: math.Float32frombits(engine.Uint32(data[4:8])),
		Flags:   Flags(engine.Uint32(data[8:12])),
	}
}

func (b Branch) String() string {
	return fmt.Sprintf("Branch | split var: %d, split: %g, left: %d, right: %d",
		b.Flags.FeatureIndex(), b.SplitAt, b.Left, b.Right)
}
