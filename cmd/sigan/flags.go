package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/cwbudde/algo-signal/dsp/window"
	"github.com/cwbudde/algo-signal/internal/config"
)

type cliOptions struct {
	configPath string
	input      string
	synth      bool
	samples    int
	seed       int64
	verbose    bool

	// Overrides applied on top of the configuration file. Only flags given
	// on the command line are applied.
	halfWidth  int
	cutoff     float64
	sampleRate float64
	window     string
	format     string
	set        map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*cliOptions, error) {
	def := config.Default()
	opts := &cliOptions{set: make(map[string]bool)}

	fs := flag.NewFlagSet("sigan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.IntVar(&opts.halfWidth, "m", def.Filter.HalfWidth, "filter half-width M (taps = 2M+1)")
	fs.Float64Var(&opts.cutoff, "fc", def.Filter.Cutoff, "cutoff frequency in Hz")
	fs.Float64Var(&opts.sampleRate, "fs", def.Filter.SampleRate, "sample rate in Hz used for the filter design")
	fs.StringVar(&opts.window, "window", def.Filter.Window.String(), "filter window (rectangular, hann, hamming, blackman, kaiser)")
	fs.StringVar(&opts.format, "format", def.Output.Format, "output format: table or json")
	fs.BoolVar(&opts.synth, "synth", false, "analyze a synthetic signal instead of a file")
	fs.IntVar(&opts.samples, "n", 250, "number of samples for -synth")
	fs.Int64Var(&opts.seed, "seed", 1, "noise seed for -synth")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: sigan [flags] <file>\n\n")
		_, _ = fmt.Fprintf(stderr, "Fits a linear trend, computes the DFT magnitude spectrum and low-pass\n")
		_, _ = fmt.Fprintf(stderr, "filters a two-column (time amplitude) signal. Use \"-\" for stdin.\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(stderr, "\nExamples:\n")
		_, _ = fmt.Fprintf(stderr, "  sigan data.txt\n")
		_, _ = fmt.Fprintf(stderr, "  sigan -m 20 -fc 10 -fs 100 data.txt\n")
		_, _ = fmt.Fprintf(stderr, "  sigan -synth -format json\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	switch {
	case opts.synth && fs.NArg() > 0:
		return nil, errors.New("-synth does not take an input file")
	case !opts.synth && fs.NArg() != 1:
		fs.Usage()
		return nil, errors.New("expected exactly one input file")
	case fs.NArg() == 1:
		opts.input = fs.Arg(0)
	}
	if opts.samples < 2 {
		return nil, fmt.Errorf("-n must be >= 2, got %d", opts.samples)
	}
	return opts, nil
}

// resolveConfig loads the configuration file, if any, and applies the flags
// that were set explicitly.
func resolveConfig(opts *cliOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		c, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	if opts.set["m"] {
		cfg.Filter.HalfWidth = opts.halfWidth
	}
	if opts.set["fc"] {
		cfg.Filter.Cutoff = opts.cutoff
	}
	if opts.set["fs"] {
		cfg.Filter.SampleRate = opts.sampleRate
	}
	if opts.set["window"] {
		t, err := window.ParseType(opts.window)
		if err != nil {
			return nil, err
		}
		cfg.Filter.Window = t
	}
	if opts.set["format"] {
		cfg.Output.Format = opts.format
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
