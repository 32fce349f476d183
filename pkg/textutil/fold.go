package textutil

import (
	"strings"
	"sync"
	"unicode"
)

// bmpSize is the number of code points in the Basic Multilingual Plane.
const bmpSize = 0x10000

// Folding is table-driven: one entry per BMP code point, built lazily on
// first use and immutable afterwards. Runes outside the BMP fold to
// themselves; full Unicode folding beyond the BMP is out of scope.
//
//nolint:gochecknoglobals // Process-wide read-only table behind sync.Once.
var (
	foldOnce  sync.Once
	foldTable *[bmpSize]uint16
)

func table() *[bmpSize]uint16 {
	foldOnce.Do(func() {
		var t [bmpSize]uint16
		for r := rune(0); r < bmpSize; r++ {
			t[r] = uint16(simpleFold(r))
		}
		// Force idempotence: every entry must be a fixed point.
		for r := range t {
			t[r] = t[t[r]]
		}
		foldTable = &t
	})
	return foldTable
}

// simpleFold computes the non-Turkic simple case-fold equivalent of r,
// derived from the Unicode case mappings. Round-tripping through the
// uppercase form collapses one-way mappings such as 'ς' and 'ſ' onto the
// same representative as their two-way siblings.
func simpleFold(r rune) rune {
	f := unicode.ToLower(unicode.ToUpper(r))
	if f >= bmpSize || f < 0 {
		return r
	}
	return f
}

// FoldRune returns the case-fold equivalent of r.
// Runes outside the Basic Multilingual Plane are returned unchanged.
func FoldRune(r rune) rune {
	if r < 0 || r >= bmpSize {
		return r
	}
	return rune(table()[r])
}

// FoldCase returns s with every rune replaced by its case-fold equivalent.
// If no rune changes, the input string is returned as-is.
func FoldCase(s string) string {
	t := table()
	for i, r := range s {
		if r >= bmpSize || rune(t[r]) == r {
			continue
		}
		// First foldable rune found; switch to the copying path.
		var b strings.Builder
		b.Grow(len(s))
		b.WriteString(s[:i])
		for _, r := range s[i:] {
			if r < bmpSize {
				r = rune(t[r])
			}
			b.WriteRune(r)
		}
		return b.String()
	}
	return s
}

// FoldRunes returns rs with every rune replaced by its case-fold
// equivalent. A nil slice passes through unchanged, and if no rune changes
// the input slice itself is returned without copying.
func FoldRunes(rs []rune) []rune {
	if rs == nil {
		return nil
	}
	t := table()
	for i, r := range rs {
		if r < 0 || r >= bmpSize || rune(t[r]) == r {
			continue
		}
		out := make([]rune, len(rs))
		copy(out, rs[:i])
		for j := i; j < len(rs); j++ {
			c := rs[j]
			if c >= 0 && c < bmpSize {
				c = rune(t[c])
			}
			out[j] = c
		}
		return out
	}
	return rs
}
