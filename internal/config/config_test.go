package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/cil-codec/cil"
	cilerrors "github.com/wippyai/cil-codec/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[log]
level = "debug"

[output]
format = "yaml"
color = "never"

[optimize]
fixed_point = true

[strings]
"0x70000001" = "hello"
"0x7000000D" = "world"
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, c.Path)
	assert.Equal(t, FormatYAML, c.Output.Format)
	assert.Equal(t, ColorNever, c.Output.Color)
	assert.True(t, c.Optimize.FixedPoint)

	level, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)

	tokens, err := c.StringTokens()
	require.NoError(t, err)
	assert.Equal(t, map[cil.Token]string{0x70000001: "hello", 0x7000000D: "world"}, tokens)
}

func TestLoadAppliesDefaults(t *testing.T) {
	c, err := Load(writeConfig(t, t.TempDir(), "[optimize]\nfixed_point = false\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, FormatText, c.Output.Format)
	assert.Equal(t, ColorAuto, c.Output.Color)
	assert.Empty(t, c.Strings)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[log\nlevel = 1"},
		{"level", "[log]\nlevel = \"loud\""},
		{"format", "[output]\nformat = \"json\""},
		{"color", "[output]\ncolor = \"sometimes\""},
		{"string key not a number", "[strings]\nhello = \"x\""},
		{"string key wrong table", "[strings]\n\"0x0A000001\" = \"x\""},
		{"string key zero row", "[strings]\n\"0x70000000\" = \"x\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), tt.content))
			require.Error(t, err)

			var e *cilerrors.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, cilerrors.PhaseConfig, e.Phase)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[output]\nformat = \"yaml\"\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	c, err := FindAndLoad(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, FileName), c.Path)
	assert.Equal(t, FormatYAML, c.Output.Format)
}

func TestFindAndLoadDefaults(t *testing.T) {
	c, err := FindAndLoad(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, c.Path)
	assert.Equal(t, Default(), c)
	assert.NoError(t, c.Validate())
}
