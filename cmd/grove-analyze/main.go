// Command grove-analyze reports the structure of a tabular forest
// description before and after optimization: node populations, serialized
// sizes, the pruning percentage, and the model fingerprint.
//
// Usage:
//
//	grove-analyze -i forest.csv -p classification
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/groveml/grove"
	"github.com/groveml/grove/flatten"
	"github.com/groveml/grove/forest"
	"github.com/groveml/grove/node"
	"github.com/groveml/grove/tabular"
)

func main() {
	input := flag.String("i", "", "input forest description file (CSV)")
	problem := flag.String("p", "", "problem type: classification or regression")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*input, *problem); err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}
}

func run(input, problem string) error {
	src, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer src.Close()

	switch problem {
	case "classification":
		return analyzeClassification(src)
	case "regression":
		return analyzeRegression(src)
	default:
		return fmt.Errorf("unknown problem type %q", problem)
	}
}

func analyzeClassification(src *os.File) error {
	loaded, err := tabular.LoadClassification(src)
	if err != nil {
		return err
	}

	flattened, err := flatten.New(loaded.Nodes)
	if err != nil {
		return err
	}

	nodes, err := flatten.OptimizeClassification(flattened)
	if err != nil {
		return err
	}

	f, err := forest.NewClassification(
		uint32(flattened.NumTrees()),
		nodes,
		uint8(loaded.Features.Len()),
		uint8(loaded.Targets.Len()),
	)
	if err != nil {
		return err
	}

	fmt.Printf("Forest is a CLASSIFICATION problem.\n\n")
	report(flattened.Stats(), len(nodes), len(f.Bytes()))
	fmt.Printf("Fingerprint: %016x\n", grove.Fingerprint(f.Bytes()))

	return nil
}

func analyzeRegression(src *os.File) error {
	loaded, err := tabular.LoadRegression(src)
	if err != nil {
		return err
	}

	flattened, err := flatten.New(loaded.Nodes)
	if err != nil {
		return err
	}

	nodes, err := flatten.OptimizeRegression(flattened)
	if err != nil {
		return err
	}

	f, err := forest.NewRegression(uint32(flattened.NumTrees()), nodes, uint8(loaded.Features.Len()))
	if err != nil {
		return err
	}

	fmt.Printf("Forest is a REGRESSION problem.\n\n")
	report(flattened.Stats(), len(nodes), len(f.Bytes()))
	fmt.Printf("Fingerprint: %016x\n", grove.Fingerprint(f.Bytes()))

	return nil
}

func report(stats flatten.Stats, optimized, serializedSize int) {
	fmt.Printf("--- Unoptimized forest ---\n")
	fmt.Printf("Total length: %d | Branches: %d, leaves: %d\n\n", stats.Total(), stats.Branches, stats.Leaves)

	fmt.Printf("--- Optimized forest ---\n")
	fmt.Printf("Total length: %d | Size: %d bytes (%d header + %d per node)\n\n",
		optimized, serializedSize, node.HeaderSize, node.BranchSize)

	pruned := flatten.PruningRatio(stats.Total(), optimized)
	fmt.Printf("--- Analysis results ---\n")
	fmt.Printf("Pruned %.2f%%, kept %.2f%%\n\n", pruned*100, (1-pruned)*100)
}
