package flatten

import (
	"fmt"

	"github.com/groveml/grove/node"
)

// OptimizeClassification converts a flattened classification forest into
// the dense branch array of the optimized format, inlining every leaf.
//
// Two passes over the node array:
//  1. Assign each branch a dense optimized id; leaves are skipped and never
//     receive one, dropping them from the output entirely.
//  2. Emit one record per branch, resolving each child against the
//     flattened array: a leaf child becomes its class id inlined into the
//     pointer with the terminal flag set, a branch child becomes its dense
//     optimized id with the flag clear.
func OptimizeClassification(f *Forest[uint16]) ([]node.Branch, error) {
	ids, count := denseIDs(f.nodes)

	out := make([]node.Branch, 0, count)
	for i, n := range f.nodes {
		if n.Kind != KindBranch {
			continue
		}

		left, leftLeaf := resolveClass(f.nodes, ids, n.Branch.Left)
		right, rightLeaf := resolveClass(f.nodes, ids, n.Branch.Right)

		b, err := node.NewBranch(n.Branch.SplitWith, n.Branch.SplitAt, left, right, leftLeaf, rightLeaf)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		out = append(out, b)
	}

	return out, nil
}

// denseIDs maps flattened indices to optimized ids, counting only branches.
func denseIDs[V Value](nodes []Node[V]) ([]int, int) {
	ids := make([]int, len(nodes))
	next := 0
	for i, n := range nodes {
		if n.Kind == KindBranch {
			ids[i] = next
			next++
		}
	}

	return ids, next
}

func resolveClass(nodes []Node[uint16], ids []int, child uint32) (node.Pointer, bool) {
	if nodes[child].Kind == KindLeaf {
		return node.Pointer(nodes[child].Prediction), true
	}

	return node.Pointer(ids[child]), false
}

// OptimizeRegression converts a flattened regression forest into the branch
// array of the optimized format.
//
// Regression leaf values have no defined packing inside the 16-bit pointer
// field, so leaves are not inlined: every node keeps its array slot, leaves
// becoming leaf records (value in the split field). A branch whose child is
// a leaf stores the child's slot index with the terminal flag set; the
// predictor reads the value from that slot.
func OptimizeRegression(f *Forest[float32]) ([]node.Branch, error) {
	out := make([]node.Branch, 0, len(f.nodes))
	for i, n := range f.nodes {
		if n.Kind == KindLeaf {
			out = append(out, node.NewLeafRecord(n.Prediction))
			continue
		}

		b, err := node.NewBranch(
			n.Branch.SplitWith,
			n.Branch.SplitAt,
			node.Pointer(n.Branch.Left),
			node.Pointer(n.Branch.Right),
			f.nodes[n.Branch.Left].Kind == KindLeaf,
			f.nodes[n.Branch.Right].Kind == KindLeaf,
		)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		out = append(out, b)
	}

	return out, nil
}
