// Package compress provides the compression codecs used for model files at
// rest.
//
// The optimized forest wire format itself is never compressed, since it must
// be directly mappable into memory on the target, but a model shipped to a
// device or checked into a firmware build often travels compressed. The
// modelfile package selects a codec by file extension and decompresses
// before handing the buffer to the deserializer.
package compress

import (
	"fmt"

	"github.com/groveml/grove/format"
)

// Compressor compresses a complete model payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	// The returned slice is newly allocated and owned by the caller; the
	// input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a model payload compressed by the matching
// Compressor.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// result, or an error if the data is corrupted or was compressed with an
	// incompatible algorithm. The returned slice is newly allocated and
	// owned by the caller.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
