// Package errs defines the sentinel errors shared across grove packages.
//
// Callers match errors with errors.Is; packages wrap these sentinels with
// fmt.Errorf("...: %w", err) to add context without losing identity.
package errs

import "errors"

var (
	// ErrWrongProblemType indicates that the problem kind encoded in a model
	// buffer (presence or absence of a target count) does not match the kind
	// expected at the call site. The buffer itself may be perfectly valid.
	ErrWrongProblemType = errors.New("wrong problem type")

	// ErrMalformedForest indicates a structural violation in an optimized
	// forest: truncated or misaligned buffer, non-integral node array length,
	// an out-of-range node pointer, or a zero target count supplied to a
	// classification builder. A buffer that fails with this error must not be
	// used for prediction.
	ErrMalformedForest = errors.New("malformed forest")

	// ErrMalformedSource indicates a modeling or authoring error in the
	// upstream forest description: non-contiguous tree ordinals, a node that
	// is neither branch nor leaf, or a dangling child reference.
	ErrMalformedSource = errors.New("malformed forest source")

	// ErrForestTooLarge indicates a flattened forest that exceeds the 65536
	// node slots addressable by a 16-bit node pointer, or a feature index
	// beyond the 30-bit flag field.
	ErrForestTooLarge = errors.New("forest exceeds encodable limits")
)
