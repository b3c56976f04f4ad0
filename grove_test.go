package grove

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groveml/grove/errs"
	"github.com/groveml/grove/forest"
)

const classificationCSV = `# {"problem_type": "classification"}
tree_idx,node_idx,left daughter,right daughter,split var,split point,status,prediction
1,1,2,3,temperature,0.5,1,NA
1,2,0,0,NA,0,-1,cold
1,3,0,0,NA,0,-1,warm
2,1,2,3,humidity,1.0,1,NA
2,2,0,0,NA,0,-1,cold
2,3,0,0,NA,0,-1,cold
`

const regressionCSV = `# {"problem_type": "regression"}
tree_idx,node_idx,left daughter,right daughter,split var,split point,status,prediction
1,1,2,3,load,0.5,1,NA
1,2,0,0,NA,0,-1,10.0
1,3,0,0,NA,0,-1,20.0
2,1,2,3,load,0.1,1,NA
2,2,0,0,NA,0,-1,10.0
2,3,0,0,NA,0,-1,20.0
`

func TestCompileClassificationEndToEnd(t *testing.T) {
	blob, err := CompileClassification(strings.NewReader(classificationCSV))
	require.NoError(t, err)

	f, err := forest.DeserializeClassification(forest.Aligned(blob))
	require.NoError(t, err)
	require.Equal(t, uint32(2), f.NumTrees())
	require.Equal(t, uint8(2), f.NumFeatures())
	require.Equal(t, uint8(2), f.NumTargets())

	// Class ids follow first-seen order: cold is 0, warm is 1.
	require.Equal(t, uint16(0), f.Predict([]float32{0.2, 2.0}))

	// temperature > 0.5 splits the vote between warm (tree 1) and cold
	// (tree 2); the earlier tree's class wins the tie.
	require.Equal(t, uint16(1), f.Predict([]float32{0.8, 2.0}))
}

func TestCompileRegressionEndToEnd(t *testing.T) {
	blob, err := CompileRegression(strings.NewReader(regressionCSV))
	require.NoError(t, err)

	f, err := forest.DeserializeRegression(forest.Aligned(blob))
	require.NoError(t, err)
	require.Equal(t, uint32(2), f.NumTrees())
	require.Equal(t, uint8(1), f.NumFeatures())

	require.InDelta(t, 10.0, f.Predict([]float32{0.05}), 1e-6)
	require.InDelta(t, 15.0, f.Predict([]float32{0.3}), 1e-6)
	require.InDelta(t, 20.0, f.Predict([]float32{0.9}), 1e-6)
}

func TestCompileRejectsWrongProblemType(t *testing.T) {
	_, err := CompileClassification(strings.NewReader(regressionCSV))
	require.ErrorIs(t, err, errs.ErrWrongProblemType)

	_, err = CompileRegression(strings.NewReader(classificationCSV))
	require.ErrorIs(t, err, errs.ErrWrongProblemType)
}

func TestCompiledModelsDoNotCrossDeserialize(t *testing.T) {
	classification, err := CompileClassification(strings.NewReader(classificationCSV))
	require.NoError(t, err)
	regression, err := CompileRegression(strings.NewReader(regressionCSV))
	require.NoError(t, err)

	_, err = forest.DeserializeRegression(forest.Aligned(classification))
	require.ErrorIs(t, err, errs.ErrWrongProblemType)

	_, err = forest.DeserializeClassification(forest.Aligned(regression))
	require.ErrorIs(t, err, errs.ErrWrongProblemType)
}

func TestFingerprintIsStable(t *testing.T) {
	blob, err := CompileClassification(strings.NewReader(classificationCSV))
	require.NoError(t, err)

	again, err := CompileClassification(strings.NewReader(classificationCSV))
	require.NoError(t, err)

	require.Equal(t, Fingerprint(blob), Fingerprint(again))
	require.NotZero(t, Fingerprint(blob))
}
