package decode

import (
	"errors"
	"fmt"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrUnknownEncoding indicates the declared encoding name could not be
	// resolved.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrInvalidBytes is the category wrapped by every DecodingError.
	ErrInvalidBytes = errors.New("invalid byte sequence")
)

// DecodingError reports a byte sequence the selected encoding cannot decode.
// ByteOffset is the approximate offset of the offending bytes in the source,
// counted from the start of the source (the byte-order mark included).
type DecodingError struct {
	// Encoding is the encoding the source was being decoded as.
	Encoding string

	// ByteOffset is the approximate source offset of the invalid sequence.
	ByteOffset int64

	// Err is the underlying decoder error, if any.
	Err error
}

// Error implements the error interface.
func (e *DecodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s byte sequence near offset %d: %v", e.Encoding, e.ByteOffset, e.Err)
	}
	return fmt.Sprintf("invalid %s byte sequence near offset %d", e.Encoding, e.ByteOffset)
}

// Unwrap reports ErrInvalidBytes so callers can categorize with errors.Is.
func (e *DecodingError) Unwrap() error {
	return ErrInvalidBytes
}
