package forest

import (
	"github.com/groveml/grove/endian"
	"github.com/groveml/grove/node"
)

// Bytes serializes the forest into its wire layout: the 8-byte header
// immediately followed by the flat branch array, all little-endian, with no
// extra framing. Serialization is deterministic: the same forest always
// produces the same bytes.
func (f *Classification) Bytes() []byte {
	return appendForest(f.header, f.nodes)
}

// Bytes serializes the forest. See Classification.Bytes.
func (f *Regression) Bytes() []byte {
	return appendForest(f.header, f.nodes)
}

func appendForest(header Header, nodes []node.Branch) []byte {
	engine := endian.GetLittleEndianEngine()

	buf := make([]byte, 0, node.HeaderSize+len(nodes)*node.BranchSize)
	buf = header.AppendTo(buf, engine)
	for _, n := range nodes {
		buf = n.AppendTo(buf, engine)
	}

	return buf
}
