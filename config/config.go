package config

import (
	"bytes"
	_ "embed"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/wippyai/watfreq/analyzer"
	"github.com/wippyai/watfreq/errors"
)

//go:embed sample_config.toml
var sampleConfig string

// Formats accepted by the CLI and the config file.
const (
	FormatPlain = "plain"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config supplies defaults for the CLI flags.
type Config struct {
	Length int    `toml:"length"`
	Exact  bool   `toml:"exact"`
	Lexer  bool   `toml:"lexer"`
	Format string `toml:"format"`
	Top    int    `toml:"top"`
}

// Default returns the built-in configuration used when no file exists.
func Default() Config {
	return Config{
		Length: analyzer.DefaultLength,
		Format: FormatPlain,
	}
}

// DefaultPath returns <user config dir>/watfreq/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.PhaseConfig, errors.KindNotFound, err, "user config dir")
	}
	return filepath.Join(dir, "watfreq", "config.toml"), nil
}

// Load reads the config at path. A missing file yields the defaults; any
// other failure, including unknown keys, is fatal.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.PhaseConfig, errors.KindIO, err, "read "+path)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Default(), errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "parse "+path)
	}

	if cfg.Length <= 0 {
		cfg.Length = analyzer.DefaultLength
	}
	if cfg.Format == "" {
		cfg.Format = FormatPlain
	}
	if err := ValidFormat(cfg.Format); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// ValidFormat checks a format name from the config file or the -format flag.
func ValidFormat(format string) error {
	switch format {
	case FormatPlain, FormatTable, FormatJSON:
		return nil
	}
	return errors.InvalidInput(errors.PhaseConfig, "unknown format "+format)
}

// WriteSample writes the embedded sample config to path, creating parent
// directories as needed. It refuses to overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.InvalidInput(errors.PhaseConfig, path+" already exists")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindIO, err, "create config dir")
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindIO, err, "write "+path)
	}
	return nil
}
