// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package config loads the YAML settings used by the command-line tools.
package config

import (
	"log/slog"
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/wdamron/wand"
	"github.com/wdamron/wand/internal/log"
	"github.com/wdamron/wand/types"
)

type Config struct {
	// `pairwise` or `rewrite`
	Strategy string `yaml:"strategy"`
	// `int` or `real`
	NumericDefault string `yaml:"numeric_default"`
	// Print every unification step.
	Trace       bool     `yaml:"trace"`
	LogLevel    string   `yaml:"log_level"`
	LogSections []string `yaml:"log_sections"`
}

var knownSections = []string{log.SectionInfer, log.SectionUnify, log.SectionParse, log.SectionCLI}

// Default returns the settings used when no configuration file is given.
func Default() *Config {
	return &Config{
		Strategy:       wand.Pairwise.String(),
		NumericDefault: types.IntName,
		LogLevel:       "warn",
		LogSections:    slices.Clone(knownSections),
	}
}

// Load reads a configuration file. Missing keys keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading config %s", path)
	}
	return c, nil
}

// Parse decodes and validates YAML settings over the defaults.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "decoding yaml")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if _, err := wand.ParseStrategy(c.Strategy); err != nil {
		return errors.Wrap(err, "strategy")
	}
	if _, err := c.numericDefault(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	for _, section := range c.LogSections {
		if !slices.Contains(knownSections, section) {
			return errors.Errorf("log_sections: unknown section %q", section)
		}
	}
	return nil
}

func (c *Config) numericDefault() (types.Type, error) {
	switch c.NumericDefault {
	case types.IntName:
		return types.Int, nil
	case types.RealName:
		return types.Real, nil
	}
	return nil, errors.Errorf("numeric_default: expected int or real, found %q", c.NumericDefault)
}

// Level returns the configured log level, or warn if it cannot be parsed.
func (c *Config) Level() slog.Level {
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}

// ApplyLogging sets the level and sections of the shared logger.
func (c *Config) ApplyLogging() {
	log.SetLevel(c.Level())
	log.EnableSections(c.LogSections...)
}

// Options returns the inference options for a validated configuration.
func (c *Config) Options() []wand.Option {
	var opts []wand.Option
	if s, err := wand.ParseStrategy(c.Strategy); err == nil {
		opts = append(opts, wand.WithStrategy(s))
	}
	if t, err := c.numericDefault(); err == nil {
		opts = append(opts, wand.WithNumericDefault(t))
	}
	return opts
}
