package decode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf16"
)

// The UTF-16 and UTF-32 families are decoded by hand, like the UTF-8 path:
// validating code units directly keeps genuinely encoded U+FFFD apart from
// invalid input, which a substituting decoder cannot do, and yields exact
// byte offsets.

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	lowSurrogate = 0xDC00
	maxRune      = 0x10FFFF
)

// decodeUTF16 validates and decodes UTF-16 input code unit by code unit,
// carrying partial units across chunk boundaries. Unpaired surrogates and
// truncated units are invalid. baseOffset is the source offset of the first
// pending byte (the consumed byte-order mark).
func decodeUTF16(r io.Reader, prefix []byte, chunk int, sizeHint int64, baseOffset int64, eof bool, encName string, big bool) ([]rune, error) {
	runes := make([]rune, 0, runeCapacity(encName, sizeHint, len(prefix)))
	pending := make([]byte, 0, chunk+4)
	pending = append(pending, prefix...)
	readBuf := make([]byte, chunk)
	offset := baseOffset

	for {
		start := 0
		for len(pending)-start >= 2 {
			rest := pending[start:]
			u := unit16(rest, big)
			if u < surrogateMin || u > surrogateMax {
				runes = append(runes, rune(u))
				start += 2
				offset += 2
				continue
			}
			if u >= lowSurrogate {
				return nil, &DecodingError{Encoding: encName, ByteOffset: offset}
			}
			// High surrogate: its partner may sit in the next chunk.
			if len(rest) < 4 {
				break
			}
			u2 := unit16(rest[2:], big)
			if u2 < lowSurrogate || u2 > surrogateMax {
				return nil, &DecodingError{Encoding: encName, ByteOffset: offset}
			}
			runes = append(runes, utf16.DecodeRune(rune(u), rune(u2)))
			start += 4
			offset += 4
		}
		pending = pending[:copy(pending, pending[start:])]

		if eof {
			if len(pending) != 0 {
				// Truncated code unit or unpaired high surrogate at end.
				return nil, &DecodingError{Encoding: encName, ByteOffset: offset}
			}
			return runes, nil
		}

		n, rerr := r.Read(readBuf)
		pending = append(pending, readBuf[:n]...)
		switch {
		case errors.Is(rerr, io.EOF):
			eof = true
		case rerr != nil:
			return nil, fmt.Errorf("read source: %w", rerr)
		}
	}
}

// decodeUTF32 validates and decodes UTF-32 input. Values beyond U+10FFFF,
// surrogate code points, and truncated units are invalid.
func decodeUTF32(r io.Reader, prefix []byte, chunk int, sizeHint int64, baseOffset int64, eof bool, encName string, big bool) ([]rune, error) {
	runes := make([]rune, 0, runeCapacity(encName, sizeHint, len(prefix)))
	pending := make([]byte, 0, chunk+4)
	pending = append(pending, prefix...)
	readBuf := make([]byte, chunk)
	offset := baseOffset

	for {
		start := 0
		for len(pending)-start >= 4 {
			v := unit32(pending[start:], big)
			if v > maxRune || (v >= surrogateMin && v <= surrogateMax) {
				return nil, &DecodingError{Encoding: encName, ByteOffset: offset}
			}
			runes = append(runes, rune(v))
			start += 4
			offset += 4
		}
		pending = pending[:copy(pending, pending[start:])]

		if eof {
			if len(pending) != 0 {
				return nil, &DecodingError{Encoding: encName, ByteOffset: offset}
			}
			return runes, nil
		}

		n, rerr := r.Read(readBuf)
		pending = append(pending, readBuf[:n]...)
		switch {
		case errors.Is(rerr, io.EOF):
			eof = true
		case rerr != nil:
			return nil, fmt.Errorf("read source: %w", rerr)
		}
	}
}

func unit16(b []byte, big bool) uint32 {
	if big {
		return uint32(binary.BigEndian.Uint16(b))
	}
	return uint32(binary.LittleEndian.Uint16(b))
}

func unit32(b []byte, big bool) uint32 {
	if big {
		return binary.BigEndian.Uint32(b)
	}
	return binary.LittleEndian.Uint32(b)
}
