package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/charstream/internal/fsutil"
	"github.com/yaklabco/charstream/internal/logging"
	"github.com/yaklabco/charstream/pkg/textutil"
)

// transformFlags are shared by the normalize and fold commands.
type transformFlags struct {
	write  bool
	backup bool
}

func newNormalizeCommand(flags *globalFlags) *cobra.Command {
	tf := &transformFlags{}

	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Print a source with canonical newlines",
		Long: `Decode a file, canonicalize its line endings ("\r\n" and "\r" become
"\n"), and write the result to standard output. Use "-" to read standard
input, or --write to rewrite the file in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args[0], flags, tf, textutil.NormalizeNewlines)
		},
	}

	addTransformFlags(cmd, tf)

	return cmd
}

func addTransformFlags(cmd *cobra.Command, tf *transformFlags) {
	cmd.Flags().BoolVarP(&tf.write, "write", "w", false, "rewrite the file in place instead of printing")
	cmd.Flags().BoolVar(&tf.backup, "backup", false, "keep a sidecar backup when rewriting in place")
}

// runTransform decodes one source, applies transform, and prints or rewrites
// the result. Shared by the normalize and fold commands.
func runTransform(cmd *cobra.Command, path string, flags *globalFlags, tf *transformFlags, transform func(string) string) error {
	if tf.write && path == "-" {
		return fmt.Errorf("%w: --write needs a file path, not standard input", errUsage)
	}

	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	res, name, err := decodeSource(path, cfg.DecodeOptions())
	if err != nil {
		return err
	}
	transformed := transform(string(res.Runes))

	if !tf.write {
		_, err = fmt.Fprint(cmd.OutOrStdout(), transformed)
		return err
	}

	return writeInPlace(cmd, name, transformed, tf.backup)
}

// writeInPlace rewrites path atomically. The rewritten file is always UTF-8,
// whatever the source encoding was.
func writeInPlace(cmd *cobra.Command, path, content string, backup bool) error {
	ctx := logging.WithFields(cmd.Context(), logging.FieldPath, path)
	logger := logging.FromContext(ctx)

	if backup {
		backupPath, err := fsutil.CreateBackup(ctx, path)
		if err != nil {
			return err
		}
		logger.Debug("backup created", logging.FieldBackup, backupPath)
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte(content), 0)
	if err != nil {
		return err
	}
	if !written {
		logger.Debug("content unchanged, skipping write")
	}
	return nil
}
