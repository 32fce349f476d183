// Package decode turns a raw byte source into fully decoded text.
//
// It sniffs a leading byte-order mark, resolves the text encoding (the mark
// overrides the declared encoding when detection is enabled), and feeds the
// remaining bytes through an incremental decoder in fixed-size chunks. The
// whole source is materialized; callers that only need a window over a
// larger document sub-range the resulting buffer instead.
package decode
