package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldFiles  = "files"
	FieldBackup = "backup"

	// Decoding fields.
	FieldEncoding         = "encoding"
	FieldDeclaredEncoding = "declared_encoding"
	FieldBOM              = "bom"
	FieldChunkSize        = "chunk_size"
	FieldByteOffset       = "byte_offset"

	// Stream fields.
	FieldRunes    = "runes"
	FieldLines    = "lines"
	FieldLanguage = "language"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
