package textutil

import "strings"

// NormalizeNewlines canonicalizes line endings in s: every "\r\n" pair and
// every lone '\r' becomes a single '\n'. The input is returned unchanged
// when it contains no '\r'. The result's length is the input's length minus
// the number of "\r\n" pairs.
func NormalizeNewlines(s string) string {
	// Counting pass. '\r' and '\n' are ASCII, so byte indexing is exact.
	crlf, lone := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] != '\r' {
			continue
		}
		if i+1 < len(s) && s[i+1] == '\n' {
			crlf++
			i++
		} else {
			lone++
		}
	}

	switch {
	case crlf == 0 && lone == 0:
		return s
	case crlf == 0:
		// Only lone carriage returns: one-for-one byte replacement.
		b := []byte(s)
		for i := range b {
			if b[i] == '\r' {
				b[i] = '\n'
			}
		}
		return string(b)
	}

	// At least one "\r\n" pair: collapse in a single segment-copy pass.
	var b strings.Builder
	b.Grow(len(s) - crlf)
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '\r' {
			continue
		}
		b.WriteString(s[start:i])
		b.WriteByte('\n')
		if i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
		start = i + 1
	}
	b.WriteString(s[start:])
	return b.String()
}
