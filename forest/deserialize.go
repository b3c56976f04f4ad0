package forest

import (
	"fmt"
	"unsafe"

	"github.com/groveml/grove/endian"
	"github.com/groveml/grove/errs"
	"github.com/groveml/grove/node"
)

// bufferAlign is the buffer alignment Deserialize requires. The node array
// is viewed in place, so the buffer must satisfy the branch record's 4-byte
// alignment; a misaligned buffer is rejected rather than accessed.
const bufferAlign = 4

// DeserializeClassification interprets data as a serialized classification
// forest.
//
// The returned forest borrows data and never copies or mutates it (on
// little-endian hosts; see nodeView); its lifetime is bounded by the
// buffer's lifetime.
//
// Validation performed here is the only barrier between a corrupted or
// adversarial buffer and out-of-bounds traversal: prediction trusts every
// non-terminal pointer to be in range. Any structural violation fails with
// ErrMalformedForest; a buffer encoding a regression forest fails with
// ErrWrongProblemType.
func DeserializeClassification(data []byte) (*Classification, error) {
	header, nodes, err := deserialize(data)
	if err != nil {
		return nil, err
	}
	if header.NumTargets == 0 {
		return nil, fmt.Errorf("buffer encodes a regression forest: %w", errs.ErrWrongProblemType)
	}

	// Every pointer flagged as a further branch must land inside the node
	// array. Terminal-flagged pointers carry inlined class ids and are not
	// indices.
	for i := range nodes {
		n := &nodes[i]
		if !n.Flags.LeftLeaf() && n.Left.Index() >= len(nodes) {
			return nil, fmt.Errorf("node %d left pointer %d out of range: %w", i, n.Left, errs.ErrMalformedForest)
		}
		if !n.Flags.RightLeaf() && n.Right.Index() >= len(nodes) {
			return nil, fmt.Errorf("node %d right pointer %d out of range: %w", i, n.Right, errs.ErrMalformedForest)
		}
	}

	return &Classification{header: header, nodes: nodes}, nil
}

// DeserializeRegression interprets data as a serialized regression forest.
//
// Same contract as DeserializeClassification, with one difference in the
// validation pass: regression terminal pointers are array indices as well
// (they name leaf records, not inlined values), so every pointer is
// bounds-checked regardless of its flag bit.
func DeserializeRegression(data []byte) (*Regression, error) {
	header, nodes, err := deserialize(data)
	if err != nil {
		return nil, err
	}
	if header.NumTargets != 0 {
		return nil, fmt.Errorf("buffer encodes a classification forest: %w", errs.ErrWrongProblemType)
	}

	for i := range nodes {
		n := &nodes[i]
		if n.Left.Index() >= len(nodes) || n.Right.Index() >= len(nodes) {
			return nil, fmt.Errorf("node %d pointer out of range: %w", i, errs.ErrMalformedForest)
		}
	}

	return &Regression{header: header, nodes: nodes}, nil
}

// deserialize performs the kind-independent part of deserialization:
// alignment and size checks, header parsing, and the node array view.
func deserialize(data []byte) (Header, []node.Branch, error) {
	// At least the header plus one branch record.
	if len(data) < node.HeaderSize+node.BranchSize {
		return Header{}, nil, fmt.Errorf("buffer of %d bytes is truncated: %w", len(data), errs.ErrMalformedForest)
	}

	if addr := uintptr(unsafe.Pointer(unsafe.SliceData(data))); addr%bufferAlign != 0 {
		return Header{}, nil, fmt.Errorf("buffer is not %d-byte aligned: %w", bufferAlign, errs.ErrMalformedForest)
	}

	var header Header
	if err := header.Parse(data); err != nil {
		return Header{}, nil, err
	}

	payload := data[node.HeaderSize:]
	if len(payload)%node.BranchSize != 0 {
		return Header{}, nil, fmt.Errorf("payload of %d bytes is not a whole number of branch records: %w",
			len(payload), errs.ErrMalformedForest)
	}

	nodes := nodeView(payload)

	// The first NumTrees slots must exist: they are the tree roots that
	// prediction enters without further checks.
	if header.NumTrees == 0 || int(header.NumTrees) > len(nodes) {
		return Header{}, nil, fmt.Errorf("tree count %d does not fit %d node slots: %w",
			header.NumTrees, len(nodes), errs.ErrMalformedForest)
	}

	return header, nodes, nil
}

// nodeView exposes the serialized node array as []node.Branch.
//
// On little-endian hosts the branch record's memory layout matches the wire
// layout exactly, so the payload is reinterpreted in place with no copy.
// Big-endian hosts fall back to decoding a copy; the zero-copy contract
// holds on every realistic Go target for this format.
func nodeView(payload []byte) []node.Branch {
	count := len(payload) / node.BranchSize

	if endian.IsNativeLittleEndian() {
		return unsafe.Slice((*node.Branch)(unsafe.Pointer(unsafe.SliceData(payload))), count)
	}

	engine := endian.GetLittleEndianEngine()
	nodes := make([]node.Branch, count)
	for i := range nodes {
		nodes[i] = node.ParseBranch(payload[i*node.BranchSize:], engine)
	}

	return nodes
}
