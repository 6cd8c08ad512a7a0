package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/calc"
)

// Config is the calc configuration file.
type Config struct {
	// Angle is the angle unit for trig functions, "radians" or "degrees".
	Angle string `toml:"angle"`
	// Format is the fmt verb used to print results.
	Format string `toml:"format"`
	// Lines makes each input line a separate expression.
	Lines bool `toml:"lines"`

	Logging LoggingConfig `toml:"logging"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

func NewConfig() Config {
	return Config{
		Angle:  "radians",
		Format: "%g",
		Logging: LoggingConfig{
			Level: "INFO",
		},
	}
}

func (c Config) Validate() error {
	switch c.Angle {
	case "radians", "degrees":
	default:
		return errors.Errorf("angle must be radians or degrees, got %q", c.Angle)
	}
	if c.Format == "" {
		return errors.New("format must not be empty")
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, "logging")
	}
	return nil
}

// Options returns the evaluator options the configuration describes.
func (c Config) Options() []calc.Option {
	if c.Angle == "degrees" {
		return []calc.Option{calc.Degrees()}
	}
	return nil
}

// LoadConfig decodes the file at path over the defaults. A blank path gives
// the defaults.
func LoadConfig(path string) (Config, error) {
	c := NewConfig()
	if path == "" {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	return c, nil
}
