// Package configloader resolves CLI defaults from an optional YAML file.
// Precedence: --config path, then the CHARSTREAM_CONFIG environment
// variable, then .charstream.yaml in the working directory, then built-in
// defaults. CLI flags always win over file values; merging happens in the
// CLI layer.
package configloader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/charstream/pkg/decode"
)

// envVar names the environment variable holding an explicit config path.
const envVar = "CHARSTREAM_CONFIG"

// configFileName is the project-level config file name.
const configFileName = ".charstream.yaml"

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrConfigNotFound indicates an explicitly requested config file is missing.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigInvalid indicates the config file failed to parse or validate.
	ErrConfigInvalid = errors.New("invalid config")
)

// Config holds the CLI defaults a config file may set.
type Config struct {
	// Encoding is the declared encoding for sources without a byte-order mark.
	Encoding string `yaml:"encoding"`

	// ChunkSize is the decode chunk size in bytes.
	ChunkSize int `yaml:"chunk_size"`

	// DetectBOM toggles byte-order-mark sniffing. Nil means "not set".
	DetectBOM *bool `yaml:"detect_bom"`

	// Color controls output colorization: auto, always, never.
	Color string `yaml:"color"`
}

// NewConfig returns a Config with built-in defaults.
func NewConfig() *Config {
	detect := true
	return &Config{
		Encoding:  decode.EncodingUTF8,
		ChunkSize: decode.DefaultChunkSize,
		DetectBOM: &detect,
		Color:     "auto",
	}
}

// DecodeOptions translates the config into decoding options.
func (c *Config) DecodeOptions() decode.Options {
	opts := decode.DefaultOptions()
	opts.Encoding = c.Encoding
	opts.ChunkSize = c.ChunkSize
	if c.DetectBOM != nil {
		opts.DetectBOM = *c.DetectBOM
	}
	return opts
}

// Load resolves the configuration. explicitPath comes from the --config
// flag; when empty, CHARSTREAM_CONFIG and then the working directory are
// consulted. A missing implicit file is not an error.
func Load(explicitPath string) (*Config, error) {
	cfg := NewConfig()

	path, required := resolvePath(explicitPath)
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if required {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigInvalid, path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigInvalid, path, err)
	}

	return cfg, nil
}

// resolvePath picks the config file to read. required reports whether a
// missing file at that path is an error (explicit sources) or fine
// (working-directory discovery).
func resolvePath(explicitPath string) (path string, required bool) {
	if explicitPath != "" {
		return explicitPath, true
	}
	if env := os.Getenv(envVar); env != "" {
		return env, true
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return filepath.Join(wd, configFileName), false
}

func (c *Config) validate() error {
	if c.ChunkSize < 0 {
		return fmt.Errorf("chunk_size %d is negative", c.ChunkSize)
	}
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("color %q is not one of auto, always, never", c.Color)
	}
	return nil
}
