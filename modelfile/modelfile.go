// Package modelfile reads and writes optimized forest model files.
//
// The on-disk payload is exactly the forest wire format, optionally wrapped
// in a compression envelope selected by the file extension: ".zst"
// (Zstandard), ".lz4" (LZ4 block), ".s2" (S2); any other extension means an
// uncompressed payload. Write and Read use the same rule, so a path names
// its own codec.
//
// Read returns a buffer that satisfies the deserializer's alignment
// requirement.
package modelfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/groveml/grove/compress"
	"github.com/groveml/grove/forest"
	"github.com/groveml/grove/format"
)

// Compression returns the compression type the path's extension selects.
func Compression(path string) format.CompressionType {
	switch filepath.Ext(path) {
	case ".zst":
		return format.CompressionZstd
	case ".lz4":
		return format.CompressionLZ4
	case ".s2":
		return format.CompressionS2
	default:
		return format.CompressionNone
	}
}

// Extension returns the file extension that selects the given compression
// type, or "" for none.
func Extension(c format.CompressionType) string {
	switch c {
	case format.CompressionZstd:
		return ".zst"
	case format.CompressionLZ4:
		return ".lz4"
	case format.CompressionS2:
		return ".s2"
	default:
		return ""
	}
}

// Write stores a serialized forest at path, compressed with the codec the
// path's extension selects.
func Write(path string, data []byte) error {
	codec, err := compress.GetCodec(Compression(path))
	if err != nil {
		return err
	}

	payload, err := codec.Compress(data)
	if err != nil {
		return fmt.Errorf("compressing model for %s: %w", path, err)
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("writing model file: %w", err)
	}

	return nil
}

// Read loads a serialized forest from path, decompressing per the path's
// extension. The returned buffer is aligned for deserialization.
func Read(path string) ([]byte, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}

	codec, err := compress.GetCodec(Compression(path))
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompressing model file %s: %w", path, err)
	}

	return forest.Aligned(data), nil
}
