package pretty

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// defaultDividerWidth is used when the output is not a terminal.
const defaultDividerWidth = 40

// maxDividerWidth caps the divider on very wide terminals.
const maxDividerWidth = 72

// Report is the view model for one inspected source.
type Report struct {
	// Path is the file path, or "-" for standard input.
	Path string

	// Encoding is the encoding the source was decoded with.
	Encoding string

	// DeclaredEncoding is the encoding declared before BOM detection.
	DeclaredEncoding string

	// BOMFound reports whether a byte-order mark was detected.
	BOMFound bool

	// Runes is the decoded length in runes.
	Runes int

	// Lines is the number of lines in the decoded text.
	Lines int

	// LF, CRLF, and CR count the newline forms present in the source.
	LF, CRLF, CR int

	// Language is the detected content language, if any.
	Language string
}

// NewlineSummary describes the mix of newline forms, e.g. "lf" or
// "mixed (lf, crlf)". An empty source reports "none".
func (r Report) NewlineSummary() string {
	var forms []string
	if r.LF > 0 {
		forms = append(forms, "lf")
	}
	if r.CRLF > 0 {
		forms = append(forms, "crlf")
	}
	if r.CR > 0 {
		forms = append(forms, "cr")
	}
	switch len(forms) {
	case 0:
		return "none"
	case 1:
		return forms[0]
	default:
		return "mixed (" + strings.Join(forms, ", ") + ")"
	}
}

// FormatReport renders a report block for one source.
func (s *Styles) FormatReport(r Report) string {
	var b strings.Builder

	b.WriteString(s.FilePath.Render(r.Path))
	b.WriteString("\n")

	encoding := r.Encoding
	if r.BOMFound && r.DeclaredEncoding != r.Encoding {
		encoding += s.Dim.Render(fmt.Sprintf(" (declared %s, overridden by BOM)", r.DeclaredEncoding))
	}
	writeRow(&b, s, "encoding", encoding)
	writeRow(&b, s, "bom", yesNo(r.BOMFound))
	writeRow(&b, s, "runes", fmt.Sprintf("%d", r.Runes))
	writeRow(&b, s, "lines", fmt.Sprintf("%d", r.Lines))
	writeRow(&b, s, "newlines", r.NewlineSummary())
	if r.Language != "" {
		writeRow(&b, s, "language", r.Language)
	}

	b.WriteString(s.Divider.Render(strings.Repeat("-", dividerWidth())))
	b.WriteString("\n")

	return b.String()
}

func writeRow(b *strings.Builder, s *Styles, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", s.Label.Render(label+":"), s.Value.Render(value))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// dividerWidth adapts the divider to the terminal, falling back to a fixed
// width when stdout is not a terminal.
func dividerWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultDividerWidth
	}
	if w > maxDividerWidth {
		return maxDividerWidth
	}
	return w
}
