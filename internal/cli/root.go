// Package cli provides the Cobra command structure for charstream.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/charstream/internal/configloader"
	"github.com/yaklabco/charstream/internal/logging"
	"github.com/yaklabco/charstream/pkg/decode"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
	encoding   string
	chunkSize  int
	detectBOM  bool
}

// NewRootCommand creates the root charstream command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "charstream",
		Short: "Inspect and normalize decoded text sources",
		Long: `charstream decodes byte sources into position-stable text and exposes
what the decoder saw: the effective encoding, byte-order marks, rune and
line counts, and the newline mix. It can also rewrite a source with
normalized newlines or case-folded content.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flags.encoding, "encoding", decode.EncodingUTF8,
		"declared encoding for sources without a byte-order mark")
	rootCmd.PersistentFlags().IntVar(&flags.chunkSize, "chunk-size", decode.DefaultChunkSize,
		"decode chunk size in bytes")
	rootCmd.PersistentFlags().BoolVar(&flags.detectBOM, "detect-bom", true,
		"detect byte-order marks and let them override the declared encoding")

	// Add subcommands.
	rootCmd.AddCommand(newInspectCommand(flags))
	rootCmd.AddCommand(newNormalizeCommand(flags))
	rootCmd.AddCommand(newFoldCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// resolveConfig merges the config file with explicitly set CLI flags.
// Flags win over the file, the file wins over built-in defaults.
func resolveConfig(cmd *cobra.Command, flags *globalFlags) (*configloader.Config, error) {
	cfg, err := configloader.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("encoding") {
		cfg.Encoding = flags.encoding
	}
	if cmd.Flags().Changed("chunk-size") {
		cfg.ChunkSize = flags.chunkSize
	}
	if cmd.Flags().Changed("detect-bom") {
		cfg.DetectBOM = &flags.detectBOM
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = flags.color
	}

	return cfg, nil
}
