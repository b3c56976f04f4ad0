package forest

import "github.com/groveml/grove/node"

// maxTargets is the fixed capacity of the vote tally, matching the format's
// 255-class limit.
const maxTargets = 255

type vote struct {
	class uint16
	count uint32
}

// Predict walks every tree of the ensemble against the feature vector and
// returns the class id with the most votes.
//
// Ties are broken by insertion order: the first class to reach the winning
// vote count wins, i.e. the class first voted for by the earliest tree.
//
// The caller must supply a feature vector of at least NumFeatures values;
// pointer bounds were established once during deserialization and are not
// re-checked here.
func (f *Classification) Predict(features []float32) uint16 {
	votes := make([]vote, 0, maxTargets)

	for tree := 0; tree < int(f.header.NumTrees); tree++ {
		n := &f.nodes[tree]

		var prediction uint16
		for {
			if features[n.Flags.FeatureIndex()] <= n.SplitAt {
				if n.Flags.LeftLeaf() {
					prediction = uint16(n.Left)
					break
				}
				n = &f.nodes[n.Left.Index()]
			} else if n.Flags.RightLeaf() {
				prediction = uint16(n.Right)
				break
			} else {
				n = &f.nodes[n.Right.Index()]
			}
		}

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

	// Strictly-greater comparison keeps the first inserted class on ties.
	best := votes[0]
	for _, v := range votes[1:] {
		if v.count > best.count {
			best = v
		}
	}

	return best.class
}

// Predict walks every tree of the ensemble against the feature vector and
// returns the mean of the selected leaf values.
//
// A terminal-flagged pointer names a leaf record slot; the prediction is
// that record's SplitAt field. The caller must supply a feature vector of
// at least NumFeatures values.
func (f *Regression) Predict(features []float32) float32 {
	var sum float32

	for tree := 0; tree < int(f.header.NumTrees); tree++ {
		n := &f.nodes[tree]

		var prediction float32
		for {
			if features[n.Flags.FeatureIndex()] <= n.SplitAt {
				if n.Flags.LeftLeaf() {
					prediction = f.leafValue(n.Left)
					break
				}
				n = &f.nodes[n.Left.Index()]
			} else if n.Flags.RightLeaf() {
				prediction = f.leafValue(n.Right)
				break
			} else {
				n = &f.nodes[n.Right.Index()]
			}
		}

		sum += prediction
	}

	return sum / float32(f.header.NumTrees)
}

func (f *Regression) leafValue(p node.Pointer) float32 {
	return f.nodes[p.Index()].SplitAt
}
