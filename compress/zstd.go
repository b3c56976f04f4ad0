package compress

// ZstdCompressor provides Zstandard compression for model files.
//
// Zstd gives the best ratio of the built-in codecs and is the default for
// models shipped over constrained links. The implementation is selected at
// build time: cgo builds use the libzstd binding, pure-Go builds fall back
// to the klauspost implementation (see zstd_cgo.go and zstd_pure.go).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
