package format

type (
	ProblemKind     uint8
	CompressionType uint8
)

const (
	// KindClassification represents a forest voting over discrete class ids.
	KindClassification ProblemKind = 0x1
	// KindRegression represents a forest averaging numeric leaf values.
	KindRegression ProblemKind = 0x2

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k ProblemKind) String() string {
	switch k {
	case KindClassification:
		return "Classification"
	case KindRegression:
		return "Regression"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
