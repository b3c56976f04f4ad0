package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of a serialized model blob. The tools
// print it so a model baked into a firmware image can be matched back to
// the source it was compiled from.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
