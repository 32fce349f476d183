package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/charstream/internal/langdetect"
	"github.com/yaklabco/charstream/internal/logging"
	"github.com/yaklabco/charstream/internal/ui/pretty"
	"github.com/yaklabco/charstream/pkg/decode"
)

func newInspectCommand(flags *globalFlags) *cobra.Command {
	var detectLanguage bool

	cmd := &cobra.Command{
		Use:   "inspect [files...]",
		Short: "Report how byte sources decode",
		Long: `Decode each file and report the effective encoding, byte-order mark,
rune and line counts, and the newline mix. Use "-" to read standard input.

Examples:
  charstream inspect README.md
  charstream inspect --encoding utf-16le legacy.txt
  cat notes.txt | charstream inspect -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, flags, detectLanguage)
		},
	}

	cmd.Flags().BoolVar(&detectLanguage, "language", true, "detect the content language")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, flags *globalFlags, detectLanguage bool) error {
	logger := logging.FromContext(cmd.Context())

	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}
	styles := pretty.NewStyles(pretty.ColorEnabled(cfg.Color, os.Stdout))

	for _, path := range args {
		report, err := inspectOne(path, cfg.DecodeOptions(), detectLanguage)
		if err != nil {
			logger.Error("inspect failed", logging.FieldPath, path, logging.FieldError, err)
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatReport(*report))
	}

	return nil
}

func inspectOne(path string, opts decode.Options, detectLanguage bool) (*pretty.Report, error) {
	res, name, err := decodeSource(path, opts)
	if err != nil {
		return nil, err
	}

	report := &pretty.Report{
		Path:             name,
		Encoding:         res.Encoding,
		DeclaredEncoding: decode.NormalizeEncoding(opts.Encoding),
		BOMFound:         res.BOMFound,
		Runes:            len(res.Runes),
	}
	countNewlines(res.Runes, report)

	if detectLanguage {
		report.Language = langdetect.Detect(name, []byte(string(res.Runes)))
	}

	return report, nil
}

// decodeSource decodes path, with "-" meaning standard input (left open).
func decodeSource(path string, opts decode.Options) (*decode.Result, string, error) {
	if path == "-" {
		opts.LeaveOpen = true
		res, err := decode.Decode(os.Stdin, opts)
		return res, "-", err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, path, fmt.Errorf("open %s: %w", path, err)
	}
	opts.LeaveOpen = false
	res, err := decode.Decode(f, opts)
	return res, path, err
}

// countNewlines fills the line and newline-form counters of the report.
func countNewlines(runes []rune, report *pretty.Report) {
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\n':
			report.LF++
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				report.CRLF++
				i++
			} else {
				report.CR++
			}
		}
	}
	report.Lines = report.LF + report.CRLF + report.CR
	if len(runes) > 0 {
		// A final line without a trailing newline still counts.
		last := runes[len(runes)-1]
		if last != '\n' && last != '\r' {
			report.Lines++
		}
	}
}
