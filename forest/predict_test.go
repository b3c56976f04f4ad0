package forest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groveml/grove/node"
)

func TestClassificationPredict(t *testing.T) {
	f := twoTreeClassification(t)

	// Tree 0 votes class 1 for feature0 <= 0.5, else class 2; tree 1 always
	// votes class 1.
	require.Equal(t, uint16(1), f.Predict([]float32{0.2, 2.0}))
	require.Equal(t, uint16(1), f.Predict([]float32{0.2, 0.5}))
	require.Equal(t, uint16(1), f.Predict([]float32{0.5, 2.0}))
}

func TestClassificationPredictTieBreak(t *testing.T) {
	f := twoTreeClassification(t)

	// feature0 > 0.5 splits the vote 1:1 between classes 2 and 1. Tree 0
	// walks first, so class 2 enters the tally first and wins the tie.
	require.Equal(t, uint16(2), f.Predict([]float32{0.8, 2.0}))
}

func TestClassificationPredictDeepTree(t *testing.T) {
	// One tree, three levels:
	//
	//	0: f0 <= 0.5 ? node 1 : class 9
	//	1: f1 <= 1.0 ? class 3 : node 2
	//	2: f0 <= 0.25 ? class 4 : class 5
	n0, err := node.NewBranch(0, 0.5, 1, 9, false, true)
	require.NoError(t, err)
	n1, err := node.NewBranch(1, 1.0, 3, 2, true, false)
	require.NoError(t, err)
	n2, err := node.NewBranch(0, 0.25, 4, 5, true, true)
	require.NoError(t, err)

	f, err := NewClassification(1, []node.Branch{n0, n1, n2}, 2, 10)
	require.NoError(t, err)

	require.Equal(t, uint16(9), f.Predict([]float32{0.9, 0.0}))
	require.Equal(t, uint16(3), f.Predict([]float32{0.4, 0.5}))
	require.Equal(t, uint16(4), f.Predict([]float32{0.2, 1.5}))
	require.Equal(t, uint16(5), f.Predict([]float32{0.4, 1.5}))
}

func TestClassificationPredictAfterRoundTrip(t *testing.T) {
	data := twoTreeClassification(t).Bytes()

	f, err := DeserializeClassification(data)
	require.NoError(t, err)

	require.Equal(t, uint16(1), f.Predict([]float32{0.2, 2.0}))
	require.Equal(t, uint16(2), f.Predict([]float32{0.8, 2.0}))
}

func TestRegressionPredict(t *testing.T) {
	f := twoTreeRegression(t)

	// Both trees pick their 10.0 leaf.
	require.InDelta(t, 10.0, f.Predict([]float32{0.05}), 1e-6)
	// Tree 0 picks 10.0, tree 1 picks 20.0.
	require.InDelta(t, 15.0, f.Predict([]float32{0.3}), 1e-6)
	// Both trees pick their 20.0 leaf.
	require.InDelta(t, 20.0, f.Predict([]float32{0.9}), 1e-6)
}

func TestRegressionPredictAfterRoundTrip(t *testing.T) {
	data := twoTreeRegression(t).Bytes()

	f, err := DeserializeRegression(data)
	require.NoError(t, err)

	require.InDelta(t, 15.0, f.Predict([]float32{0.3}), 1e-6)
}
