package decode

import "bytes"

// byteOrderMark associates a recognizable mark with the encoding it implies.
type byteOrderMark struct {
	encoding string
	mark     []byte
}

// Candidate marks, longest first so "\xFF\xFE\x00\x00" (UTF-32LE) wins over
// its "\xFF\xFE" (UTF-16LE) prefix.
//
//nolint:gochecknoglobals // Read-only lookup table.
var byteOrderMarks = []byteOrderMark{
	{encoding: EncodingUTF32LE, mark: []byte{0xFF, 0xFE, 0x00, 0x00}},
	{encoding: EncodingUTF32BE, mark: []byte{0x00, 0x00, 0xFE, 0xFF}},
	{encoding: EncodingUTF8, mark: []byte{0xEF, 0xBB, 0xBF}},
	{encoding: EncodingUTF16LE, mark: []byte{0xFF, 0xFE}},
	{encoding: EncodingUTF16BE, mark: []byte{0xFE, 0xFF}},
}

// sniffBOM checks prefix for a known byte-order mark.
// Returns the implied encoding name and the mark length, or ("", 0).
func sniffBOM(prefix []byte) (string, int) {
	for _, b := range byteOrderMarks {
		if bytes.HasPrefix(prefix, b.mark) {
			return b.encoding, len(b.mark)
		}
	}
	return "", 0
}
