package implot

import "errors"

// The validation error set is closed: every descriptor failure is one of
// these sentinels, compared with errors.Is. Invalid data never reaches the
// native plotter; the descriptor simply draws nothing.
var (
	// ErrEmptyData reports a mandatory data slice with no points.
	ErrEmptyData = errors.New("implot: empty data")

	// ErrMismatchedLengths reports paired slices of different lengths.
	ErrMismatchedLengths = errors.New("implot: mismatched data lengths")

	// ErrOutOfBoundsOffset reports an offset/stride combination that
	// would read outside the provided data.
	ErrOutOfBoundsOffset = errors.New("implot: offset/stride out of bounds")

	// ErrInvalidLabel reports a label containing an embedded NUL, which
	// the scratch buffer would truncate.
	ErrInvalidLabel = errors.New("implot: label contains NUL byte")
)
