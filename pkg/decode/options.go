package decode

// DefaultChunkSize is the read/decode chunk size used when Options does not
// specify one.
const DefaultChunkSize = 4096

// minChunkSize covers the longest recognizable byte-order mark.
const minChunkSize = 16

// Options configures the Decode function.
type Options struct {
	// Encoding is the declared encoding name ("utf-8", "utf-16le",
	// "iso-8859-1", ...). Empty means UTF-8. A detected byte-order mark
	// overrides it when DetectBOM is set.
	Encoding string

	// DetectBOM enables byte-order-mark sniffing at the start of the source.
	DetectBOM bool

	// ChunkSize is the size in bytes of each read/decode step.
	// Values below 16 are raised to 16; zero selects DefaultChunkSize.
	ChunkSize int

	// LeaveOpen keeps an io.Closer source open after decoding.
	// By default the source is closed on every exit path.
	LeaveOpen bool
}

// DefaultOptions returns Options with sensible defaults: UTF-8, BOM
// detection enabled, DefaultChunkSize chunks, source closed after use.
func DefaultOptions() Options {
	return Options{
		Encoding:  "utf-8",
		DetectBOM: true,
		ChunkSize: DefaultChunkSize,
	}
}

func (o Options) chunkSize() int {
	switch {
	case o.ChunkSize <= 0:
		return DefaultChunkSize
	case o.ChunkSize < minChunkSize:
		return minChunkSize
	default:
		return o.ChunkSize
	}
}
