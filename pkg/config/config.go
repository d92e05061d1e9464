// Package config loads generator defaults from a TOML file.
//
// All keys are optional; absent keys fall through to the built-in defaults,
// and command-line flags override both:
//
//	dist = 0.25
//	precision = 40
//	polarity = "random"
//	seed = 42
//	workers = 4
package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/edgebend/pkg/curve"
	"github.com/matzehuels/edgebend/pkg/errors"
)

// DefaultFilename is the config file the CLI looks for when --config is not
// given.
const DefaultFilename = "edgebend.toml"

// Config holds generator defaults parsed from TOML. Pointer fields
// distinguish "absent" from "zero" so only keys present in the file override
// the defaults.
type Config struct {
	Dist      *float64 `toml:"dist"`
	Precision *int     `toml:"precision"`
	Polarity  string   `toml:"polarity"`
	Seed      *uint64  `toml:"seed"`
	Workers   *int     `toml:"workers"`
}

// Load reads and parses a TOML config file.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a TOML config from r.
func Parse(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if c.Polarity != "" {
		switch curve.Polarity(c.Polarity) {
		case curve.PolarityFixed, curve.PolarityRandom:
		default:
			return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown polarity %q", c.Polarity)
		}
	}
	return c, nil
}

// Apply overlays the config's set keys onto opts and returns opts.
// Range validation is left to the generator, which checks the merged result.
func (c Config) Apply(opts *curve.Options) *curve.Options {
	if c.Dist != nil {
		opts.Dist = *c.Dist
	}
	if c.Precision != nil {
		opts.Precision = *c.Precision
	}
	if c.Polarity != "" {
		opts.Polarity = curve.Polarity(c.Polarity)
	}
	if c.Seed != nil {
		opts.Seed = *c.Seed
	}
	if c.Workers != nil {
		opts.Workers = *c.Workers
	}
	return opts
}
