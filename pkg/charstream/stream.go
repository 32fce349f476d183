package charstream

import (
	"fmt"
)

// MaxIndexOffset bounds the absolute-index offset a Stream may carry.
const MaxIndexOffset = int64(1) << 60

// Stream is an immutable window over a decoded rune buffer.
//
// The usable region is buf[begin:end]. indexOffset is added to every
// externally visible index, so a stream covering a suffix of a larger
// logical document reports correct absolute positions. None of the fields
// change after construction; Close is the only mutation and merely drops
// the buffer reference.
type Stream struct {
	buf         []rune
	begin       int
	end         int
	indexOffset int64
	encoding    string
}

// New creates a Stream over buf[index : index+length] without copying.
// indexOffset is added to all externally visible indices and must satisfy
// 0 <= indexOffset < MaxIndexOffset.
func New(buf []rune, index, length int, indexOffset int64) (*Stream, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: index %d is negative", ErrInvalidArgument, index)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: length %d is negative", ErrInvalidArgument, length)
	}
	// index+length can wrap for large ints; compare without summing.
	if index > len(buf) || length > len(buf)-index {
		return nil, fmt.Errorf("%w: sub-range [%d, %d+%d) exceeds buffer length %d",
			ErrInvalidArgument, index, index, length, len(buf))
	}
	if indexOffset < 0 || indexOffset >= MaxIndexOffset {
		return nil, fmt.Errorf("%w: indexOffset %d outside [0, 2^60)", ErrInvalidArgument, indexOffset)
	}
	return &Stream{
		buf:         buf,
		begin:       index,
		end:         index + length,
		indexOffset: indexOffset,
		encoding:    "",
	}, nil
}

// NewString creates a Stream over the full content of s.
func NewString(s string, indexOffset int64) (*Stream, error) {
	buf := []rune(s)
	return New(buf, 0, len(buf), indexOffset)
}

// Len returns the number of runes in the stream's usable region.
func (s *Stream) Len() int {
	return s.end - s.begin
}

// IndexOffset returns the offset added to externally visible indices.
func (s *Stream) IndexOffset() int64 {
	return s.indexOffset
}

// Encoding returns the name of the encoding the stream was decoded with,
// or "" for streams built directly from in-memory text.
func (s *Stream) Encoding() string {
	return s.encoding
}

// BeginIndex returns the absolute index of the first rune.
func (s *Stream) BeginIndex() int64 {
	return s.indexOffset
}

// EndIndex returns the absolute index one past the last rune.
func (s *Stream) EndIndex() int64 {
	return s.indexOffset + int64(s.Len())
}

// Begin returns an iterator at the first rune, which for an empty stream is
// already the end-of-stream position.
func (s *Stream) Begin() Iterator {
	return Iterator{s: s, slot: s.begin}
}

// End returns the end-of-stream iterator.
func (s *Stream) End() Iterator {
	return Iterator{s: s, slot: s.end}
}

// Seek returns an iterator at the given absolute index. Indices at or past
// EndIndex yield the end-of-stream iterator; indices before BeginIndex fail
// with ErrInvalidArgument.
func (s *Stream) Seek(absoluteIndex int64) (Iterator, error) {
	rel := absoluteIndex - s.indexOffset
	if rel < 0 {
		return Iterator{}, fmt.Errorf("%w: absolute index %d precedes stream start %d",
			ErrInvalidArgument, absoluteIndex, s.indexOffset)
	}
	if rel >= int64(s.Len()) {
		return s.End(), nil
	}
	return Iterator{s: s, slot: s.begin + int(rel)}, nil
}

// String returns the stream's full content as a string.
func (s *Stream) String() string {
	return string(s.buf[s.begin:s.end])
}

// Close releases the stream's buffer reference. It is idempotent and safe
// to skip: no external resource is held once construction has returned.
// Iterators derived from the stream must not be used afterwards.
func (s *Stream) Close() error {
	s.buf = nil
	return nil
}
