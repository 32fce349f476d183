package charstream

import (
	"fmt"
	"io"
	"os"

	"github.com/yaklabco/charstream/pkg/decode"
)

// NewReader decodes the byte source r per opts and returns a Stream over
// the full decoded content. Unless opts.LeaveOpen is set, an io.Closer
// source is closed once decoding finishes or fails.
func NewReader(r io.Reader, opts decode.Options) (*Stream, error) {
	res, err := decode.Decode(r, opts)
	if err != nil {
		return nil, err
	}
	return &Stream{
		buf:      res.Runes,
		begin:    0,
		end:      len(res.Runes),
		encoding: res.Encoding,
	}, nil
}

// Open decodes the file at path per opts. The file is always closed before
// Open returns; opts.LeaveOpen is ignored.
func Open(path string, opts decode.Options) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	opts.LeaveOpen = false
	return NewReader(f, opts)
}
