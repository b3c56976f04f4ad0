package flatten

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPredictClassification(t *testing.T) {
	f, err := New(twoTreeSource())
	require.NoError(t, err)

	require.Equal(t, uint16(1), PredictClassification(f, []float32{0.2, 2.0}))
	require.Equal(t, uint16(1), PredictClassification(f, []float32{0.5, 0.5}))
}

func TestPredictClassificationTieBreak(t *testing.T) {
	f, err := New(twoTreeSource())
	require.NoError(t, err)

	// Tree 1 votes class 2, tree 2 votes class 1. The earlier tree's class
	// entered the tally first and wins the tie.
	require.Equal(t, uint16(2), PredictClassification(f, []float32{0.8, 2.0}))
}

func TestPredictRegression(t *testing.T) {
	src := []SourceNode[float32]{
		branchSource[float32](1, 1, 0, 0.5, 2, 3),
		leafSource[float32](1, 2, 10.0),
		leafSource[float32](1, 3, 20.0),
		branchSource[float32](2, 1, 0, 0.1, 2, 3),
		leafSource[float32](2, 2, 10.0),
		leafSource[float32](2, 3, 20.0),
	}

	f, err := New(src)
	require.NoError(t, err)

	require.InDelta(t, 10.0, PredictRegression(f, []float32{0.05}), 1e-6)
	require.InDelta(t, 15.0, PredictRegression(f, []float32{0.3}), 1e-6)
	require.InDelta(t, 20.0, PredictRegression(f, []float32{0.9}), 1e-6)
}
