// Package config handles cilc.toml tool configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/cil-codec/cil"
	"github.com/wippyai/cil-codec/errors"
)

// FileName is the configuration file FindAndLoad looks for.
const FileName = "cilc.toml"

// Output formats and colour modes.
const (
	FormatText = "text"
	FormatYAML = "yaml"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is a cilc.toml configuration.
type Config struct {
	Log      Log               `toml:"log"`
	Output   Output            `toml:"output"`
	Optimize Optimize          `toml:"optimize"`
	Strings  map[string]string `toml:"strings"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

// Log configures the tool logger.
type Log struct {
	Level string `toml:"level"`
}

// Output configures listings.
type Output struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// Optimize configures the macro optimizer.
type Optimize struct {
	FixedPoint bool `toml:"fixed_point"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Output.Color == "" {
		c.Output.Color = ColorAuto
	}
}

// Load parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, fmt.Sprintf("cannot read %s", path))
	}

	var c Config
	if _, err := toml.Decode(string(data), &c); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, fmt.Sprintf("parse error in %s", path))
	}
	c.Path = path
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// FindAndLoad walks up from startDir looking for cilc.toml and loads the
// first one found. Defaults are returned when there is none.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, fmt.Sprintf("cannot resolve %s", startDir))
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("output.format %q is not %q or %q", c.Output.Format, FormatText, FormatYAML))
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("output.color %q is not auto, always or never", c.Output.Color))
	}

	_, err := c.StringTokens()
	return err
}

// LogLevel parses log.level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, fmt.Sprintf("log.level %q", c.Log.Level))
	}
	return level, nil
}

// StringTokens parses the [strings] table. Keys are user-string tokens in
// any base strconv accepts, such as "0x70000001".
func (c *Config) StringTokens() (map[cil.Token]string, error) {
	tokens := make(map[cil.Token]string, len(c.Strings))
	for key, value := range c.Strings {
		v, err := strconv.ParseUint(key, 0, 32)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidToken, err, fmt.Sprintf("strings key %q", key))
		}
		token := cil.Token(v)
		if token.Table() != cil.TableUserString || token.RID() == 0 {
			return nil, errors.New(errors.PhaseConfig, errors.KindInvalidToken).
				Value(key).
				Detail("strings key %q is not a user-string token", key).
				Build()
		}
		tokens[token] = value
	}
	return tokens, nil
}
