// Package langdetect identifies the content language of decoded sources.
// It uses go-enry, combining filename hints with content analysis so that
// sources read from standard input still get a useful answer.
package langdetect

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// classifierCandidates bounds the classifier to languages worth reporting.
// Without a candidate list enry's classifier is slow and noisy.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile", "Text",
}

// Detect returns the display name of the detected language, or "" when the
// content gives no reliable signal. filename may be empty or "-" for sources
// without a path.
func Detect(filename string, content []byte) string {
	if len(content) == 0 {
		return ""
	}

	// A shebang names the interpreter outright.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return lang
	}

	// Filename extension plus content, the common path for real files.
	if filename != "" && filename != "-" {
		if lang := enry.GetLanguage(filepath.Base(filename), content); lang != "" {
			return lang
		}
	}

	// Content-only classification for stdin and extensionless files.
	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return lang
	}

	return ""
}
