// Package forest implements the optimized forest container: a fixed
// 8-byte header followed by a flat array of 12-byte branch records, all
// little-endian.
//
// The container is write-once, read-many. It is produced by the flatten
// package, serialized with Bytes, and later reconstructed with
// DeserializeClassification or DeserializeRegression, which validate the
// buffer exhaustively (alignment, sizes, problem kind, and every node
// pointer) before returning a zero-copy view over it. Prediction relies on
// that validation having succeeded and performs no checks of its own.
//
// Layout invariants: the first num_trees array slots are the tree roots in
// tree order, and every pointer that names another slot points strictly
// forward, so traversal cannot cycle.
package forest
