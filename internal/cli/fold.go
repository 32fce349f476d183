package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/charstream/pkg/textutil"
)

func newFoldCommand(flags *globalFlags) *cobra.Command {
	tf := &transformFlags{}

	cmd := &cobra.Command{
		Use:   "fold [file]",
		Short: "Print a source with case-folded content",
		Long: `Decode a file, replace every rune with its simple case-fold equivalent,
and write the result to standard output. Folding covers the Basic
Multilingual Plane; runes outside it pass through unchanged. Use "-" to
read standard input, or --write to rewrite the file in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args[0], flags, tf, textutil.FoldCase)
		},
	}

	addTransformFlags(cmd, tf)

	return cmd
}
