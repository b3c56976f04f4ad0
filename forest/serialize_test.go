package forest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groveml/grove/endian"
	"github.com/groveml/grove/node"
)

func TestHeaderWireLayout(t *testing.T) {
	h := Header{NumTrees: 0x01020304, NumFeatures: 7, NumTargets: 3}

	data := h.AppendTo(nil, endian.GetLittleEndianEngine())
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01, 7, 3, 0, 0}, data)

	var got Header
	require.NoError(t, got.Parse(data))
	require.Equal(t, h, got)
}

func TestBytesLayout(t *testing.T) {
	f := twoTreeClassification(t)

	data := f.Bytes()
	require.Len(t, data, node.HeaderSize+2*node.BranchSize)

	// Header: 2 trees, 2 features, 3 targets.
	require.Equal(t, []byte{2, 0, 0, 0, 2, 3, 0, 0}, data[:node.HeaderSize])

	// Tree roots follow in tree order.
	engine := endian.GetLittleEndianEngine()
	root0 := node.ParseBranch(data[node.HeaderSize:], engine)
	require.Equal(t, f.Nodes()[0], root0)
	root1 := node.ParseBranch(data[node.HeaderSize+node.BranchSize:], engine)
	require.Equal(t, f.Nodes()[1], root1)
}

func TestBytesDeterministic(t *testing.T) {
	f := twoTreeRegression(t)
	require.Equal(t, f.Bytes(), f.Bytes())
}
