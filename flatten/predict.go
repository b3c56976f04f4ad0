package flatten

// Reference predictors over the unoptimized flattened forest. They exist to
// cross-check the optimized container: for any valid forest and feature
// vector, the optimized predictor must agree with these.

// PredictClassification walks every tree and returns the class id with the
// most votes. Ties are broken by insertion order: the first class to reach
// the winning count wins, matching the optimized predictor exactly.
func PredictClassification(f *Forest[uint16], features []float32) uint16 {
	type vote struct {
		class uint16
		count int
	}
	var votes []vote

	for tree := 0; tree < f.numTrees; tree++ {
		prediction := predictTree(f, tree, features)

		tallied := false
		for i := range votes {
			if votes[i].class == prediction {
				votes[i].count++
				tallied = true

				break
			}
		}
		if !tallied {
			votes = append(votes, vote{class: prediction, count: 1})
		}
	}

	best := votes[0]
	for _, v := range votes[1:] {
		if v.count > best.count {
			best = v
		}
	}

	return best.class
}

// PredictRegression walks every tree and returns the mean of the selected
// leaf values.
func PredictRegression(f *Forest[float32], features []float32) float32 {
	var sum float32
	for tree := 0; tree < f.numTrees; tree++ {
		sum += predictTree(f, tree, features)
	}

	return sum / float32(f.numTrees)
}

func predictTree[V Value](f *Forest[V], tree int, features []float32) V {
	n := &f.nodes[tree]
	for n.Kind == KindBranch {
		if features[n.Branch.SplitWith] <= n.Branch.SplitAt {
			n = &f.nodes[n.Branch.Left]
		} else {
			n = &f.nodes[n.Branch.Right]
		}
	}

	return n.Prediction
}
