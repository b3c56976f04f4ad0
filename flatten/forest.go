package flatten

import (
	"fmt"
	"sort"

	"github.com/groveml/grove/errs"
	"github.com/groveml/grove/node"
)

// Forest is a flattened, name-resolved decision forest: one contiguous node
// array whose first NumTrees slots are the tree roots, in tree order, with
// every branch child rewritten to a strictly forward forest-global index.
//
// It exists only transiently between loading and optimization and is never
// persisted.
type Forest[V Value] struct {
	numTrees int
	nodes    []Node[V]
}

// New flattens an intermediate forest.
//
// The steps are:
//  1. Root discovery: nodes with in-tree ordinal 1 are the roots; their
//     tree ordinals must be contiguous starting at 1.
//  2. Per-tree normalization: nodes are gathered per tree, sorted by
//     ordinal, and converted from 1-based to 0-based indexing.
//  3. Global layout: all roots first, then each tree's remaining nodes in
//     per-tree order; every branch child ordinal is rewritten by the tree's
//     slot offset. The construction only ever produces forward references,
//     which is re-asserted before returning.
func New[V Value](source []SourceNode[V]) (*Forest[V], error) {
	trees, err := collectTrees(source)
	if err != nil {
		return nil, err
	}

	sizes := make([]int, len(trees))
	total := 0
	for i, tree := range trees {
		sizes[i] = len(tree)
		total += len(tree)
	}
	if total > node.MaxNodes {
		return nil, fmt.Errorf("%d flattened nodes exceed %d: %w", total, node.MaxNodes, errs.ErrForestTooLarge)
	}

	nodes := make([]Node[V], 0, total)

	// Roots of every tree first, then the remaining nodes tree by tree.
	for i, tree := range trees {
		nodes = append(nodes, offsetNode(tree[0], sizes, i))
	}
	for i, tree := range trees {
		for _, n := range tree[1:] {
			nodes = append(nodes, offsetNode(n, sizes, i))
		}
	}

	// The layout above can only produce forward references; a violation here
	// means the source lied about its tree structure.
	for i, n := range nodes {
		if n.Kind == KindBranch && (int(n.Branch.Left) <= i || int(n.Branch.Right) <= i) {
			return nil, fmt.Errorf("node %d references backwards (left %d, right %d): %w",
				i, n.Branch.Left, n.Branch.Right, errs.ErrMalformedSource)
		}
	}

	return &Forest[V]{numTrees: len(trees), nodes: nodes}, nil
}

// collectTrees groups the source nodes per tree, each tree sorted by node
// ordinal and converted to 0-based in-tree indexing.
func collectTrees[V Value](source []SourceNode[V]) ([][]Node[V], error) {
	var roots []int
	for _, n := range source {
		if n.NodeIdx == 1 {
			roots = append(roots, n.TreeIdx)
		}
	}
	sort.Ints(roots)

	if len(roots) == 0 {
		return nil, fmt.Errorf("no tree roots: %w", errs.ErrMalformedSource)
	}
	for i, treeIdx := range roots {
		if treeIdx != i+1 {
			return nil, fmt.Errorf("tree ordinals are not contiguous at %d: %w", treeIdx, errs.ErrMalformedSource)
		}
	}

	trees := make([][]Node[V], len(roots))
	for i := range trees {
		treeIdx := i + 1

		var members []SourceNode[V]
		for _, n := range source {
			if n.TreeIdx == treeIdx {
				members = append(members, n)
			}
		}
		sort.SliceStable(members, func(a, b int) bool { return members[a].NodeIdx < members[b].NodeIdx })

		// In-tree ordinals must be dense 1..len: the 0-based conversion below
		// equates a node's ordinal with its slot.
		for j, m := range members {
			if m.NodeIdx != j+1 {
				return nil, fmt.Errorf("tree %d node ordinals are not contiguous at %d: %w",
					treeIdx, m.NodeIdx, errs.ErrMalformedSource)
			}
		}

		tree := make([]Node[V], 0, len(members))
		for _, n := range members {
			normalized, err := normalize(n, len(members))
			if err != nil {
				return nil, err
			}
			tree = append(tree, normalized)
		}

		trees[i] = tree
	}

	return trees, nil
}

// normalize converts a source node to 0-based in-tree indexing.
func normalize[V Value](n SourceNode[V], treeSize int) (Node[V], error) {
	switch n.Kind {
	case KindBranch:
		if n.Left == 0 || n.Right == 0 || int(n.Left) > treeSize || int(n.Right) > treeSize {
			return Node[V]{}, fmt.Errorf("tree %d node %d has dangling children (left %d, right %d): %w",
				n.TreeIdx, n.NodeIdx, n.Left, n.Right, errs.ErrMalformedSource)
		}

		return Node[V]{
			Kind: KindBranch,
			Branch: Branch{
				SplitWith: n.SplitWith,
				SplitAt:   n.SplitAt,
				Left:      n.Left - 1,
				Right:     n.Right - 1,
			},
		}, nil
	case KindLeaf:
		return Node[V]{Kind: KindLeaf, Prediction: n.Prediction}, nil
	default:
		return Node[V]{}, fmt.Errorf("tree %d node %d is neither branch nor leaf: %w",
			n.TreeIdx, n.NodeIdx, errs.ErrMalformedSource)
	}
}

// offsetNode rewrites a branch's in-tree child ordinals to forest-global
// indices. The offset for tree t is the total size of all preceding trees
// plus the roots of the trees placed ahead of this tree's non-root nodes.
func offsetNode[V Value](n Node[V], sizes []int, tree int) Node[V] {
	if n.Kind != KindBranch {
		return n
	}

	offset := 0
	for _, s := range sizes[:tree] {
		offset += s
	}
	offset += len(sizes) - (tree + 1)

	n.Branch.Left += uint32(offset)
	n.Branch.Right += uint32(offset)

	return n
}

// Nodes returns the flattened node array.
func (f *Forest[V]) Nodes() []Node[V] { return f.nodes }

// NumTrees returns the number of trees in the forest.
func (f *Forest[V]) NumTrees() int { return f.numTrees }
