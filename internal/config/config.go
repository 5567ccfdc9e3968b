// Package config loads the sigan command configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cwbudde/algo-signal/analysis"
	"github.com/cwbudde/algo-signal/dsp/filter/fir"
	"github.com/cwbudde/algo-signal/dsp/window"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

var errConfig = errors.New("config")

// Config is the sigan configuration file.
//
//	filter:
//	  half_width: 10
//	  cutoff: 50
//	  sample_rate: 125
//	  window: rectangular
//	output:
//	  format: table
//	  bins: 16
//	timeout: 30s
type Config struct {
	Filter  FilterConfig `yaml:"filter"`
	Output  OutputConfig `yaml:"output"`
	Timeout string       `yaml:"timeout"` // time.ParseDuration syntax
}

// FilterConfig selects the low-pass design.
type FilterConfig struct {
	fir.LowPassSpec `yaml:",inline"`
	Window          window.Type `yaml:"window"`
}

// OutputConfig controls how the report is printed.
type OutputConfig struct {
	Format string `yaml:"format"`
	// Bins limits the spectrum rows of the table format; 0 prints all.
	Bins int `yaml:"bins"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Filter: FilterConfig{
			LowPassSpec: fir.LowPassSpec{HalfWidth: 10, Cutoff: 50, SampleRate: 125},
			Window:      window.TypeRectangular,
		},
		Output: OutputConfig{
			Format: FormatTable,
			Bins:   16,
		},
		Timeout: "30s",
	}
}

// Load reads the YAML file at path. Keys absent from the file keep their
// default values; unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes a configuration from r on top of Default and validates it.
func Parse(r io.Reader) (*Config, error) {
	c := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the filter parameters, the output format and the timeout.
func (c *Config) Validate() error {
	if err := c.Filter.Validate(); err != nil {
		return fmt.Errorf("%w: filter: %w", errConfig, err)
	}
	switch c.Output.Format {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown output format %q", errConfig, c.Output.Format)
	}
	if c.Output.Bins < 0 {
		return fmt.Errorf("%w: output bins must be >= 0, got %d", errConfig, c.Output.Bins)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// TimeoutDuration parses Timeout. An empty value disables the timeout and
// returns 0.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout: %w", errConfig, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: timeout must be >= 0, got %s", errConfig, d)
	}
	return d, nil
}

// AnalysisOptions converts the filter section for analysis.Run.
func (c *Config) AnalysisOptions() analysis.Options {
	return analysis.Options{
		Filter: c.Filter.LowPassSpec,
		Window: c.Filter.Window,
	}
}
