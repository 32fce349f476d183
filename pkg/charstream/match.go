package charstream

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/yaklabco/charstream/pkg/textutil"
)

// Matching operations never mutate the iterator and never fail just because
// the stream is too short: insufficient remaining runes is a non-match.

// Match reports whether the rune at the iterator's position equals r.
// It is false at end-of-stream.
func (it Iterator) Match(r rune) bool {
	return it.slot < it.s.end && it.s.buf[it.slot] == r
}

// MatchString reports whether the stream's next runes equal lit.
// The empty literal matches everywhere, including at end-of-stream.
func (it Iterator) MatchString(lit string) bool {
	slot := it.slot
	for _, r := range lit {
		if slot >= it.s.end || it.s.buf[slot] != r {
			return false
		}
		slot++
	}
	return true
}

// MatchStringPart matches the lit sub-range [index, index+length) against
// the stream. index and length count runes and are validated against lit
// itself; a bad sub-range is a caller programming error and fails with
// ErrInvalidArgument, distinct from the stream simply being too short,
// which is a plain non-match.
func (it Iterator) MatchStringPart(lit string, index, length int) (bool, error) {
	n := utf8.RuneCountInString(lit)
	if index < 0 {
		return false, fmt.Errorf("%w: literal index %d is negative", ErrInvalidArgument, index)
	}
	if length < 0 {
		return false, fmt.Errorf("%w: literal length %d is negative", ErrInvalidArgument, length)
	}
	if index > n || length > n-index {
		return false, fmt.Errorf("%w: literal sub-range [%d, %d+%d) exceeds literal length %d",
			ErrInvalidArgument, index, index, length, n)
	}
	if length > it.Remaining() {
		return false, nil
	}
	slot := it.slot
	pos := 0
	for _, r := range lit {
		if pos >= index+length {
			break
		}
		if pos >= index {
			if it.s.buf[slot] != r {
				return false, nil
			}
			slot++
		}
		pos++
	}
	return true, nil
}

// MatchFolded reports whether the stream's next runes, case-folded, equal
// folded. The literal must already be case-folded (see textutil.FoldCase);
// folding only happens on the stream side. The empty literal matches
// everywhere and insufficient remaining runes is a non-match.
func (it Iterator) MatchFolded(folded string) bool {
	slot := it.slot
	for _, r := range folded {
		if slot >= it.s.end || textutil.FoldRune(it.s.buf[slot]) != r {
			return false
		}
		slot++
	}
	return true
}

// Pattern is the regular-expression capability consumed by MatchRegexp.
// *regexp.Regexp satisfies it directly.
type Pattern interface {
	FindReaderIndex(r io.RuneReader) []int
}

// MatchRegexp runs p over the text remaining from the iterator's position
// and returns the matched text. The match must be anchored at the current
// position: a pattern that only matches further into the stream is a
// non-match. At end-of-stream the pattern runs against the empty input.
//
// The remaining text is handed to p as an io.RuneReader window over the
// backing buffer, not a copy.
func (it Iterator) MatchRegexp(p Pattern) (string, bool) {
	rd := runeReader{buf: it.s.buf[it.slot:it.s.end]}
	loc := p.FindReaderIndex(&rd)
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	return string(it.s.buf[it.slot : it.slot+loc[1]]), true
}

// runeReader exposes a rune window as an io.RuneReader. It reports a size
// of 1 per rune, so match locations returned by the regexp engine count
// runes rather than encoded bytes.
type runeReader struct {
	buf []rune
	pos int
}

func (r *runeReader) ReadRune() (rune, int, error) {
	if r.pos >= len(r.buf) {
		return 0, 0, io.EOF
	}
	ch := r.buf[r.pos]
	r.pos++
	return ch, 1, nil
}
