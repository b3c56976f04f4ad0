package forest

import (
	"fmt"
	"strings"

	"github.com/groveml/grove/errs"
	"github.com/groveml/grove/node"
)

// Classification is an array-backed, optimized classification forest.
//
// It is read-only after construction: a deserialized forest borrows the
// caller's buffer and holds no mutable state, so concurrent prediction over
// the same instance is safe.
type Classification struct {
	header Header
	nodes  []node.Branch
}

// NewClassification creates a classification forest over an optimized node
// array.
//
// Returns ErrMalformedForest if numTargets is zero (a classification forest
// always has at least one class), and ErrForestTooLarge if the node array
// exceeds what a 16-bit pointer can address.
func NewClassification(numTrees uint32, nodes []node.Branch, numFeatures, numTargets uint8) (*Classification, error) {
	if numTargets == 0 {
		return nil, fmt.Errorf("classification forest with zero targets: %w", errs.ErrMalformedForest)
	}
	if len(nodes) > node.MaxNodes {
		return nil, fmt.Errorf("%d nodes exceed %d: %w", len(nodes), node.MaxNodes, errs.ErrForestTooLarge)
	}

	return &Classification{
		header: Header{
			NumTrees:    numTrees,
			NumFeatures: numFeatures,
			NumTargets:  numTargets,
		},
		nodes: nodes,
	}, nil
}

// Nodes returns the underlying branch array.
func (f *Classification) Nodes() []node.Branch { return f.nodes }

// NumTrees returns the number of trees in the ensemble.
func (f *Classification) NumTrees() uint32 { return f.header.NumTrees }

// NumFeatures returns the length of the expected feature vector.
func (f *Classification) NumFeatures() uint8 { return f.header.NumFeatures }

// NumTargets returns the number of distinct classification targets.
func (f *Classification) NumTargets() uint8 { return f.header.NumTargets }

func (f *Classification) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "OPTIMIZED CLASSIFICATION Forest: %d trees, size %d, %d features, %d targets\n------------\n",
		f.header.NumTrees, len(f.nodes), f.header.NumFeatures, f.header.NumTargets)
	writeNodes(&sb, f.nodes)

	return sb.String()
}

// Regression is an array-backed, optimized regression forest.
//
// Terminal values are carried by array-resident leaf records (see
// node.NewLeafRecord), not inlined into pointers. Like Classification it is
// read-only after construction.
type Regression struct {
	header Header
	nodes  []node.Branch
}

// NewRegression creates a regression forest over an optimized node array.
func NewRegression(numTrees uint32, nodes []node.Branch, numFeatures uint8) (*Regression, error) {
	if len(nodes) > node.MaxNodes {
		return nil, fmt.Errorf("%d nodes exceed %d: %w", len(nodes), node.MaxNodes, errs.ErrForestTooLarge)
	}

	return &Regression{
		header: Header{
			NumTrees:    numTrees,
			NumFeatures: numFeatures,
		},
		nodes: nodes,
	}, nil
}

// Nodes returns the underlying branch array.
func (f *Regression) Nodes() []node.Branch { return f.nodes }

// NumTrees returns the number of trees in the ensemble.
func (f *Regression) NumTrees() uint32 { return f.header.NumTrees }

// NumFeatures returns the length of the expected feature vector.
func (f *Regression) NumFeatures() uint8 { return f.header.NumFeatures }

func (f *Regression) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "OPTIMIZED REGRESSION Forest: %d trees, size %d, %d features\n------------\n",
		f.header.NumTrees, len(f.nodes), f.header.NumFeatures)
	writeNodes(&sb, f.nodes)

	return sb.String()
}

func writeNodes(sb *strings.Builder, nodes []node.Branch) {
	for i, n := range nodes {
		fmt.Fprintf(sb, "\t%d: %s\n", i, n)
	}
	sb.WriteString("------------\n")
}
