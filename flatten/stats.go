package flatten

// Stats summarizes the node population of a flattened forest.
type Stats struct {
	Branches int
	Leaves   int
}

// Total returns the total node count.
func (s Stats) Total() int {
	return s.Branches + s.Leaves
}

// Stats counts the branches and leaves of the flattened forest.
func (f *Forest[V]) Stats() Stats {
	var s Stats
	for _, n := range f.nodes {
		if n.Kind == KindBranch {
			s.Branches++
		} else {
			s.Leaves++
		}
	}

	return s
}

// PruningRatio reports the fraction of original nodes eliminated by
// optimization. This is a reporting metric only; it plays no part in
// correctness.
func PruningRatio(originalNodes, optimizedNodes int) float64 {
	if originalNodes == 0 {
		return 0
	}

	return float64(originalNodes-optimizedNodes) / float64(originalNodes)
}
