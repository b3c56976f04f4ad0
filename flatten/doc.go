// Package flatten converts a generic, per-tree, name-resolved decision
// forest into the single flattened node array consumed by the forest
// package.
//
// Flattening places all tree roots at the front of the array (root of tree
// t at index t) and rewrites every branch child to a forest-global index
// that points strictly forward. Optimization then renumbers the surviving
// nodes densely: for classification, leaves are eliminated entirely by
// inlining their class ids into the referencing pointers; for regression,
// leaves stay as array-resident records carrying their value.
//
// The whole pipeline is pure computation over its inputs: no I/O, no
// shared state, no locking.
package flatten
