package charstream

import (
	"fmt"
)

// EOSChar is the distinguished rune returned by reads at or past the end of
// a stream. U+FFFF is a Unicode noncharacter not meant for interchange, so
// in practice a read returning it means end-of-stream and hot-path reads
// need no separate ok flag. It is not rejected at decode time though: text
// that does carry a literal U+FFFF reads back as EOSChar mid-stream, and
// callers that must tell the two apart check IsEnd, which reports the
// position rather than the rune.
const EOSChar rune = '￿'

// Iterator is a position in a Stream: a cheap value type meant to be held
// indefinitely for backtracking and error reporting. The zero Iterator is
// not valid; obtain one from Stream.Begin, Stream.End, or Stream.Seek.
//
// slot is an offset into the stream's buffer with begin <= slot <= end;
// slot == end is the end-of-stream position, so a single range comparison
// distinguishes it from readable positions.
type Iterator struct {
	s    *Stream
	slot int
}

// Stream returns the stream this iterator reads from.
func (it Iterator) Stream() *Stream {
	return it.s
}

// IsEnd reports whether the iterator is at the end-of-stream position.
func (it Iterator) IsEnd() bool {
	return it.slot == it.s.end
}

// Index returns the absolute index of the iterator's position. At the
// end-of-stream position this is one past the last valid absolute index.
func (it Iterator) Index() int64 {
	return it.s.indexOffset + int64(it.slot-it.s.begin)
}

// Remaining returns the number of runes between the iterator and the end of
// the stream.
func (it Iterator) Remaining() int {
	return it.s.end - it.slot
}

// advanced computes the slot n runes away, sharing one core routine between
// the pure and the in-place navigation forms. Forward overshoot clamps to
// the end-of-stream slot; motion below the stream start is rejected. A
// negative delta applied at the end-of-stream position counts back from one
// past the last rune.
func (it Iterator) advanced(n int64) (int, error) {
	if n >= 0 {
		// int64 arithmetic cannot wrap here: slot and end are buffer
		// offsets, far below the int64 range.
		if n >= int64(it.s.end-it.slot) {
			return it.s.end, nil
		}
		return it.slot + int(n), nil
	}
	if n < int64(it.s.begin)-int64(it.slot) {
		return 0, fmt.Errorf("%w: delta %d moves before the stream start", ErrInvalidArgument, n)
	}
	return it.slot + int(n), nil
}

// Next returns an iterator one rune forward, or the end-of-stream iterator
// when none remain.
func (it Iterator) Next() Iterator {
	if it.slot < it.s.end {
		return Iterator{s: it.s, slot: it.slot + 1}
	}
	return it
}

// Advance returns an iterator n runes away. Overshooting the end yields the
// end-of-stream iterator; a negative delta moving before the stream start
// fails with ErrInvalidArgument.
func (it Iterator) Advance(n int) (Iterator, error) {
	return it.AdvanceInt64(int64(n))
}

// AdvanceInt64 is Advance for deltas beyond the 32-bit range: any overshoot
// still clamps to end-of-stream, and a large negative delta can never be in
// range, so it fails with ErrInvalidArgument like any other underflow.
func (it Iterator) AdvanceInt64(n int64) (Iterator, error) {
	slot, err := it.advanced(n)
	if err != nil {
		return Iterator{}, err
	}
	return Iterator{s: it.s, slot: slot}, nil
}

// SkipAndRead advances the iterator in place by n runes and returns the
// rune at the resulting position. It is the fused form of Advance followed
// by Read: forward overshoot parks the iterator at end-of-stream and
// returns EOSChar, while backward underflow fails with ErrInvalidArgument
// and leaves the iterator unmoved.
func (it *Iterator) SkipAndRead(n int) (rune, error) {
	slot, err := it.advanced(int64(n))
	if err != nil {
		return EOSChar, err
	}
	it.slot = slot
	return it.Read(), nil
}

// Read returns the rune at the iterator's position, or EOSChar at the
// end-of-stream position.
func (it Iterator) Read() rune {
	if it.slot == it.s.end {
		return EOSChar
	}
	return it.s.buf[it.slot]
}

// Peek returns the rune at the iterator's position without moving it.
func (it Iterator) Peek() rune {
	return it.Read()
}

// PeekAt returns the rune n positions away without moving the iterator.
// Unlike Advance it is total: positions past the end and before the start
// both yield EOSChar, never an error.
func (it Iterator) PeekAt(n int) rune {
	slot, err := it.advanced(int64(n))
	if err != nil || slot == it.s.end {
		return EOSChar
	}
	return it.s.buf[slot]
}

// ReadString returns up to n runes starting at the iterator's position as a
// string. Fewer than n remaining yields just the remainder. A negative n
// fails with ErrInvalidArgument.
func (it Iterator) ReadString(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: length %d is negative", ErrInvalidArgument, n)
	}
	if r := it.Remaining(); n > r {
		n = r
	}
	return string(it.s.buf[it.slot : it.slot+n]), nil
}

// ReadStringExact is the all-or-nothing form of ReadString: when fewer than
// n runes remain it returns the empty string instead of a partial result.
func (it Iterator) ReadStringExact(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: length %d is negative", ErrInvalidArgument, n)
	}
	if n > it.Remaining() {
		return "", nil
	}
	return string(it.s.buf[it.slot : it.slot+n]), nil
}

// ReadRunes copies up to len(dst) runes starting at the iterator's position
// into dst and returns the count actually copied, zero at end-of-stream.
func (it Iterator) ReadRunes(dst []rune) int {
	return copy(dst, it.s.buf[it.slot:it.s.end])
}

// ReadUntil returns the text between this iterator (inclusive) and other
// (exclusive). If other is not after this iterator the result is empty; if
// other is at end-of-stream the result is everything remaining. Iterators
// from different streams fail with ErrStreamMismatch.
func (it Iterator) ReadUntil(other Iterator) (string, error) {
	if it.s != other.s {
		return "", ErrStreamMismatch
	}
	if other.slot <= it.slot {
		return "", nil
	}
	return string(it.s.buf[it.slot:other.slot]), nil
}
