package forest

import (
	"github.com/groveml/grove/endian"
	"github.com/groveml/grove/errs"
	"github.com/groveml/grove/node"
)

// Header is the fixed-size section at the start of an optimized forest blob.
//
// Wire layout (8 bytes, little-endian):
//
//	[u32 num_trees][u8 num_features][u8 num_targets][2 bytes padding]
//
// A zero NumTargets marks a regression forest; a non-zero value marks a
// classification forest with that many distinct classes.
type Header struct {
	// NumTrees is the number of trees in the ensemble. The first NumTrees
	// slots of the node array are the tree roots, in tree order.
	NumTrees uint32 // byte offset 0-3
	// NumFeatures is the length of the feature vector the model was trained on.
	NumFeatures uint8 // byte offset 4
	// NumTargets is the number of distinct classification targets, or 0 for
	// a regression forest.
	NumTargets uint8 // byte offset 5
	// bytes 6-7 are padding, written as zero
}

// Parse parses the header from a byte slice.
func (h *Header) Parse(data []byte) error {
	if len(data) < node.HeaderSize {
		return errs.ErrMalformedForest
	}

	engine := endian.GetLittleEndianEngine()

	h.NumTrees = engine.Uint32(data[0:4])
	h.NumFeatures = data[4]
	h.NumTargets = data[5]

	return nil
}

// AppendTo appends the header's 8-byte wire encoding to dst.
func (h Header) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint32(dst, h.NumTrees)
	dst = append(dst, h.NumFeatures, h.NumTargets, 0, 0)

	return dst
}
