package decode

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Canonical names for the encodings with recognizable byte-order marks.
const (
	EncodingUTF8    = "utf-8"
	EncodingUTF16LE = "utf-16le"
	EncodingUTF16BE = "utf-16be"
	EncodingUTF32LE = "utf-32le"
	EncodingUTF32BE = "utf-32be"
)

// Result is the outcome of decoding a byte source.
type Result struct {
	// Runes is the fully decoded content, byte-order mark excluded.
	Runes []rune

	// Encoding is the canonical name of the encoding actually used.
	Encoding string

	// BOMFound reports whether a byte-order mark was detected and consumed.
	BOMFound bool
}

// Decode reads r to exhaustion and decodes it into runes.
//
// The first bytes are sniffed for a byte-order mark when opts.DetectBOM is
// set; a recognized mark is consumed and its implied encoding overrides
// opts.Encoding. The rest of the source is decoded incrementally in
// opts.ChunkSize steps. Invalid input surfaces as a *DecodingError carrying
// the approximate source byte offset.
//
// If r is an io.Closer and opts.LeaveOpen is false, r is closed on every
// exit path, success and failure alike.
func Decode(r io.Reader, opts Options) (res *Result, err error) {
	if c, ok := r.(io.Closer); ok && !opts.LeaveOpen {
		defer func() {
			if cerr := c.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close source: %w", cerr)
			}
		}()
	}

	encName := NormalizeEncoding(opts.Encoding)

	// Initial chunk: enough to cover the longest byte-order mark, or the
	// whole source if shorter.
	prefix := make([]byte, minChunkSize)
	n, rerr := io.ReadFull(r, prefix)
	eof := false
	switch {
	case errors.Is(rerr, io.EOF), errors.Is(rerr, io.ErrUnexpectedEOF):
		eof = true
	case rerr != nil:
		return nil, fmt.Errorf("read source: %w", rerr)
	}
	prefix = prefix[:n]

	bomFound := false
	var markLen int
	if opts.DetectBOM {
		if name, length := sniffBOM(prefix); length > 0 {
			encName = name
			prefix = prefix[length:]
			markLen = length
			bomFound = true
		}
	}

	// Remaining length of seekable sources bounds the buffer allocations.
	sizeHint := int64(-1)
	if s, ok := r.(io.Seeker); ok && !eof {
		if remaining, serr := remainingLength(s); serr == nil {
			sizeHint = remaining + int64(len(prefix))
		}
	} else if eof {
		sizeHint = int64(len(prefix))
	}

	chunk := opts.chunkSize()
	if sizeHint >= 0 && sizeHint < int64(chunk) {
		chunk = minChunkSize
	}

	var runes []rune
	switch encName {
	case EncodingUTF8:
		runes, err = decodeUTF8(r, prefix, chunk, sizeHint, int64(markLen), eof)
	case EncodingUTF16LE, EncodingUTF16BE:
		runes, err = decodeUTF16(r, prefix, chunk, sizeHint, int64(markLen), eof, encName, encName == EncodingUTF16BE)
	case EncodingUTF32LE, EncodingUTF32BE:
		runes, err = decodeUTF32(r, prefix, chunk, sizeHint, int64(markLen), eof, encName, encName == EncodingUTF32BE)
	default:
		var enc encoding.Encoding
		enc, err = lookupEncoding(encName)
		if err == nil {
			runes, err = decodeTransform(r, enc, encName, prefix, chunk, sizeHint, int64(markLen), eof)
		}
	}
	if err != nil {
		return nil, err
	}

	return &Result{Runes: runes, Encoding: encName, BOMFound: bomFound}, nil
}

// NormalizeEncoding canonicalizes an encoding name. Unrecognized names are
// lowercased and passed through for IANA lookup.
func NormalizeEncoding(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8
	case "utf-16le", "utf16le":
		return EncodingUTF16LE
	case "utf-16be", "utf16be":
		return EncodingUTF16BE
	case "utf-32le", "utf32le":
		return EncodingUTF32LE
	case "utf-32be", "utf32be":
		return EncodingUTF32BE
	default:
		return strings.ToLower(strings.TrimSpace(name))
	}
}

// MaxRuneCount estimates the maximum number of runes byteLen bytes of the
// named encoding can decode to. Used to size rune buffers up front.
func MaxRuneCount(encodingName string, byteLen int) int {
	switch NormalizeEncoding(encodingName) {
	case EncodingUTF16LE, EncodingUTF16BE:
		return byteLen/2 + 1
	case EncodingUTF32LE, EncodingUTF32BE:
		return byteLen/4 + 1
	default:
		// UTF-8 and single-byte encodings: at most one rune per byte.
		return byteLen
	}
}

// encodesReplacement reports whether enc has a genuine encoding for U+FFFD.
// When it does not, a replacement rune in the decoder's output can only be
// a substitution for invalid input.
func encodesReplacement(enc encoding.Encoding) bool {
	out, err := enc.NewEncoder().Bytes([]byte("\uFFFD"))
	return err == nil && len(out) > 0
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// remainingLength reports the bytes left between the current position and
// the end of a seekable source, restoring the position afterwards.
func remainingLength(s io.Seeker) (int64, error) {
	cur, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := s.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	return end - cur, nil
}

func runeCapacity(encName string, sizeHint int64, prefixLen int) int {
	if sizeHint >= 0 {
		return MaxRuneCount(encName, int(sizeHint))
	}
	return MaxRuneCount(encName, prefixLen)
}

// decodeUTF8 validates and decodes UTF-8 input rune by rune, carrying
// partial sequences across chunk boundaries. baseOffset is the source
// offset of the first pending byte (the consumed byte-order mark).
func decodeUTF8(r io.Reader, prefix []byte, chunk int, sizeHint int64, baseOffset int64, eof bool) ([]rune, error) {
	runes := make([]rune, 0, runeCapacity(EncodingUTF8, sizeHint, len(prefix)))
	pending := make([]byte, 0, chunk+utf8.UTFMax)
	pending = append(pending, prefix...)
	readBuf := make([]byte, chunk)
	offset := baseOffset

	for {
		start := 0
		for start < len(pending) {
			rest := pending[start:]
			if !eof && !utf8.FullRune(rest) {
				break
			}
			ch, size := utf8.DecodeRune(rest)
			if ch == utf8.RuneError && size <= 1 {
				return nil, &DecodingError{Encoding: EncodingUTF8, ByteOffset: offset}
			}
			runes = append(runes, ch)
			start += size
			offset += int64(size)
		}
		pending = pending[:copy(pending, pending[start:])]

		if eof {
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

// decodeTransform feeds chunks through an x/text incremental decoder. The
// decoder substitutes U+FFFD for input it cannot decode rather than
// returning an error, so for encodings that have no genuine encoding of
// U+FFFD (every single-byte charset, for one) a replacement rune in the
// output is treated as invalid input. Encodings that can encode U+FFFD
// (gb18030 and friends) keep it as data; their invalid input is then only
// caught when the transformer itself reports it.
func decodeTransform(r io.Reader, enc encoding.Encoding, encName string, prefix []byte, chunk int, sizeHint int64, baseOffset int64, eof bool) ([]rune, error) {
	dec := enc.NewDecoder()
	replacementIsData := encodesReplacement(enc)
	runes := make([]rune, 0, runeCapacity(encName, sizeHint, len(prefix)))
	src := make([]byte, 0, chunk+minChunkSize)
	src = append(src, prefix...)
	readBuf := make([]byte, chunk)
	dst := make([]byte, chunk*utf8.UTFMax+utf8.UTFMax)
	consumed := baseOffset

	for {
		if !eof {
			n, rerr := r.Read(readBuf)
			src = append(src, readBuf[:n]...)
			switch {
			case errors.Is(rerr, io.EOF):
				eof = true
			case rerr != nil:
				return nil, fmt.Errorf("read source: %w", rerr)
			}
		}

		nDst, nSrc, terr := dec.Transform(dst, src, eof)
		out := dst[:nDst]
		for len(out) > 0 {
			ch, size := utf8.DecodeRune(out)
			if ch == utf8.RuneError && !replacementIsData {
				return nil, &DecodingError{Encoding: encName, ByteOffset: consumed}
			}
			runes = append(runes, ch)
			out = out[size:]
		}
		src = src[:copy(src, src[nSrc:])]
		consumed += int64(nSrc)

		switch {
		case terr == nil:
			if eof && len(src) == 0 {
				return runes, nil
			}
			if eof && nDst == 0 && nSrc == 0 {
				// Terminal stall: leftover bytes the decoder will not take.
				return nil, &DecodingError{Encoding: encName, ByteOffset: consumed}
			}
		case errors.Is(terr, transform.ErrShortDst):
			// Output buffer drained above; decode the remainder next pass.
		case errors.Is(terr, transform.ErrShortSrc):
			if eof {
				// Truncated multi-byte sequence at end of source.
				return nil, &DecodingError{Encoding: encName, ByteOffset: consumed, Err: terr}
			}
		default:
			return nil, &DecodingError{Encoding: encName, ByteOffset: consumed, Err: terr}
		}
	}
}
