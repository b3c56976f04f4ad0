// Package grove compiles decision-forest models into a compact, pointer-free
// binary layout that can be embedded in constrained environments and
// evaluated with no dynamic allocation and no external dependencies at
// inference time.
//
// # Pipeline
//
// A human-authored tabular forest description flows through three stages:
//
//	tabular: resolves feature/target names to dense numeric ids
//	flatten: flattens the per-tree trees into one forward-referencing array
//	         and renumbers it densely, inlining classification leaves
//	forest:  serializes the array behind a fixed little-endian header, and
//	         deserializes it back with exhaustive validation and zero copies
//
// # Basic usage
//
// Compiling a model:
//
//	blob, err := grove.CompileClassification(srcFile)
//	if err != nil {
//	    return err
//	}
//	err = modelfile.Write("model.grove.zst", blob)
//
// Evaluating an embedded model:
//
//	//go:embed model.grove
//	var modelBlob []byte
//
//	f, err := forest.DeserializeClassification(forest.Aligned(modelBlob))
//	if err != nil {
//	    return err
//	}
//	class := f.Predict(features)
//
// This package provides one-call wrappers over the pipeline; use the
// underlying packages directly for fine-grained control.
package grove

import (
	"io"

	"github.com/groveml/grove/flatten"
	"github.com/groveml/grove/forest"
	"github.com/groveml/grove/internal/hash"
	"github.com/groveml/grove/tabular"
)

// CompileClassification reads a tabular classification forest description
// and returns the serialized optimized model.
func CompileClassification(r io.Reader) ([]byte, error) {
	src, err := tabular.LoadClassification(r)
	if err != nil {
		return nil, err
	}

	flattened, err := flatten.New(src.Nodes)
	if err != nil {
		return nil, err
	}

	nodes, err := flatten.OptimizeClassification(flattened)
	if err != nil {
		return nil, err
	}

	f, err := forest.NewClassification(
		uint32(flattened.NumTrees()),
		nodes,
		uint8(src.Features.Len()),
		uint8(src.Targets.Len()),
	)
	if err != nil {
		return nil, err
	}

	return f.Bytes(), nil
}

// CompileRegression reads a tabular regression forest description and
// returns the serialized optimized model.
func CompileRegression(r io.Reader) ([]byte, error) {
	src, err := tabular.LoadRegression(r)
	if err != nil {
		return nil, err
	}

	flattened, err := flatten.New(src.Nodes)
	if err != nil {
		return nil, err
	}

	nodes, err := flatten.OptimizeRegression(flattened)
	if err != nil {
		return nil, err
	}

	f, err := forest.NewRegression(uint32(flattened.NumTrees()), nodes, uint8(src.Features.Len()))
	if err != nil {
		return nil, err
	}

	return f.Bytes(), nil
}

// Fingerprint computes the xxHash64 fingerprint of a serialized model.
func Fingerprint(data []byte) uint64 {
	return hash.Fingerprint(data)
}
