// Package config provides loading and validation of scg-ingest YAML configuration files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrInvalidComma is returned when the configured delimiter cannot be used by the CSV reader.
var ErrInvalidComma = errors.New("comma must be a single character other than quote, CR or LF")

// Config represents an scg-ingest configuration file.
type Config struct {
	// Input is the path of the customer CSV file.
	Input string `yaml:"input"`
	// Comma is the field delimiter. Default: ","
	Comma string `yaml:"comma,omitempty"`
	// MetricsFile, when set, receives the run's counters in Prometheus text format.
	MetricsFile string `yaml:"metrics_file,omitempty"`
	Debug       bool   `yaml:"debug,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Comma: ","}
}

// Load reads the YAML file at path on top of Default(). Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("input path is required")
	}

	if _, err := c.CommaRune(); err != nil {
		return err
	}

	return nil
}

// CommaRune returns Comma as the rune handed to the CSV reader.
func (c Config) CommaRune() (rune, error) {
	if utf8.RuneCountInString(c.Comma) != 1 {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidComma, c.Comma)
	}

	r, _ := utf8.DecodeRuneInString(c.Comma)
	if r == 0 || r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidComma, c.Comma)
	}

	return r, nil
}
