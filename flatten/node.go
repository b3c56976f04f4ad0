package flatten

import "fmt"

// Value constrains the leaf value carried by an intermediate forest: a
// dense class id for classification, a numeric prediction for regression.
type Value interface {
	~uint16 | ~float32
}

// Kind discriminates the two node kinds of the intermediate representation.
type Kind uint8

const (
	KindBranch Kind = iota + 1
	KindLeaf
)

// SourceNode is one node of the intermediate forest as supplied by the
// loader: name-resolved to numeric ids, but still indexed by 1-based tree
// and in-tree node ordinals.
type SourceNode[V Value] struct {
	// TreeIdx is the 1-based tree ordinal.
	TreeIdx int
	// NodeIdx is the 1-based node ordinal within the tree. Ordinal 1 is the
	// tree root.
	NodeIdx int

	Kind Kind

	// Branch fields, meaningful when Kind is KindBranch. Left and Right are
	// 1-based in-tree ordinals of the child nodes.
	SplitWith uint32
	SplitAt   float32
	Left      uint32
	Right     uint32

	// Prediction is the terminal value, meaningful when Kind is KindLeaf.
	Prediction V
}

// Branch is a normalized decision node: 0-based, with Left and Right
// rewritten to forest-global flattened indices.
type Branch struct {
	SplitWith uint32
	SplitAt   float32
	Left      uint32
	Right     uint32
}

func (b Branch) String() string {
	return fmt.Sprintf("Branch | split_with: %d, split_at: %g, left: %d, right: %d",
		b.SplitWith, b.SplitAt, b.Left, b.Right)
}

// Node is a normalized node of the flattened forest.
type Node[V Value] struct {
	Kind Kind
	// Branch is meaningful when Kind is KindBranch.
	Branch Branch
	// Prediction is meaningful when Kind is KindLeaf.
	Prediction V
}

func (n Node[V]) String() string {
	if n.Kind == KindLeaf {
		return fmt.Sprintf("Leaf   | prediction: %v", n.Prediction)
	}

	return n.Branch.String()
}
