package charstream

import (
	"errors"
	"fmt"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrInvalidArgument indicates a malformed parameter: an out-of-range
	// sub-range, backward motion past the stream start, or a bad literal
	// sub-range. These are caller programming errors, reported immediately
	// and never recovered internally.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStreamMismatch indicates two iterators from different streams were
	// combined. It matches ErrInvalidArgument under errors.Is.
	ErrStreamMismatch = fmt.Errorf("%w: iterators belong to different streams", ErrInvalidArgument)
)
