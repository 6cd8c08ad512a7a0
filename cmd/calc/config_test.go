package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, "radians", c.Angle)
	assert.Equal(t, "%g", c.Format)
	assert.False(t, c.Lines)
	assert.Equal(t, "INFO", c.Logging.Level)
	assert.NoError(t, c.Validate())
	assert.Empty(t, c.Options())
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
		err  string
	}{
		{"degrees", func(c *Config) { c.Angle = "degrees" }, ""},
		{"level-case", func(c *Config) { c.Logging.Level = "debug" }, ""},
		{"angle", func(c *Config) { c.Angle = "gradians" }, `angle must be radians or degrees, got "gradians"`},
		{"format", func(c *Config) { c.Format = "" }, "format must not be empty"},
		{"level", func(c *Config) { c.Logging.Level = "loud" }, `logging: unknown log level "loud"`},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			cfg := NewConfig()
			c.mod(&cfg)
			err := cfg.Validate()
			if c.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, c.err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), c)

	path := filepath.Join(t.TempDir(), "calc.toml")
	data := `
angle = "degrees"
lines = true

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	c, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "degrees", c.Angle)
	// Keys missing from the file keep their defaults.
	assert.Equal(t, "%g", c.Format)
	assert.True(t, c.Lines)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Len(t, c.Options(), 1)

	require.NoError(t, os.WriteFile(path, []byte("angle = "), 0644))
	_, err = LoadConfig(path)
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "INFO", "Warn", "error"} {
		_, err := parseLevel(lvl)
		assert.NoError(t, err, lvl)
	}
	_, err := parseLevel("")
	assert.Error(t, err)
}
