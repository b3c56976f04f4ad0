// Command grove-convert compiles a tabular forest description into an
// optimized binary model file.
//
// The output path's extension selects the at-rest compression: ".zst",
// ".lz4" or ".s2" wrap the model in the matching envelope, anything else
// writes the raw wire format.
//
// Usage:
//
//	grove-convert -i forest.csv -o model.grove.zst -p classification
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/groveml/grove"
	"github.com/groveml/grove/modelfile"
)

func main() {
	input := flag.String("i", "", "input forest description file (CSV)")
	output := flag.String("o", "", "output model file")
	problem := flag.String("p", "", "problem type: classification or regression")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *input == "" || *output == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(logger, *input, *output, *problem); err != nil {
		logger.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, input, output, problem string) error {
	src, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer src.Close()

	var blob []byte
	switch problem {
	case "classification":
		blob, err = grove.CompileClassification(src)
	case "regression":
		blob, err = grove.CompileRegression(src)
	default:
		return fmt.Errorf("unknown problem type %q", problem)
	}
	if err != nil {
		return err
	}

	if err := modelfile.Write(output, blob); err != nil {
		return err
	}

	logger.Info("model written",
		"output", output,
		"size_bytes", len(blob),
		"compression", modelfile.Compression(output).String(),
		"fingerprint", fmt.Sprintf("%016x", grove.Fingerprint(blob)),
	)

	return nil
}
