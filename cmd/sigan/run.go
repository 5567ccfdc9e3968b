package main

import (
	"context"
	"fmt"
	"io"

	"github.com/cwbudde/algo-signal/analysis"
	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/signal"
	"github.com/cwbudde/algo-signal/internal/config"
	"go.uber.org/zap"
)

// Relative tolerance on the time step below which a signal counts as
// uniformly sampled.
const uniformTol = 1e-6

func run(ctx context.Context, opts *cliOptions, stdin io.Reader, stdout io.Writer, log *zap.Logger) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	log.Debug("configuration",
		zap.String("path", opts.configPath),
		zap.Int("half_width", cfg.Filter.HalfWidth),
		zap.Float64("cutoff", cfg.Filter.Cutoff),
		zap.Float64("sample_rate", cfg.Filter.SampleRate),
		zap.Stringer("window", cfg.Filter.Window),
		zap.String("format", cfg.Output.Format),
	)

	sig, err := loadSignal(opts, cfg, stdin)
	if err != nil {
		return err
	}

	dt, err := sig.SampleInterval()
	if err != nil {
		return err
	}
	log.Info("signal loaded",
		zap.String("source", sourceName(opts)),
		zap.Int("samples", sig.Len()),
		zap.Float64("sample_interval", dt),
		zap.Float64("duration", sig.Duration()),
	)
	if !sig.Uniform(uniformTol) {
		log.Warn("signal is not uniformly sampled; spectrum bins assume the first time step",
			zap.Float64("sample_interval", dt))
	}
	if rate := 1 / dt; !core.NearlyEqual(rate, cfg.Filter.SampleRate, uniformTol) {
		log.Warn("filter sample rate differs from the signal's",
			zap.Float64("filter_sample_rate", cfg.Filter.SampleRate),
			zap.Float64("signal_sample_rate", rate))
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	rep, err := analysis.Run(ctx, sig, cfg.AnalysisOptions())
	if err != nil {
		return err
	}
	log.Info("analysis done", zap.Duration("elapsed", rep.Elapsed))

	switch cfg.Output.Format {
	case config.FormatJSON:
		return writeJSON(stdout, rep)
	default:
		return writeTable(stdout, rep, cfg.Output.Bins)
	}
}

func loadSignal(opts *cliOptions, cfg *config.Config, stdin io.Reader) (signal.Signal, error) {
	switch {
	case opts.synth:
		return synthesize(opts, cfg)
	case opts.input == "-":
		return signal.Read(stdin)
	default:
		return signal.ReadFile(opts.input)
	}
}

// synthesize returns a trend with a slow and a fast sine plus noise, sampled
// at the filter's sample rate, so the low-pass has something to remove.
func synthesize(opts *cliOptions, cfg *config.Config) (signal.Signal, error) {
	fs := cfg.Filter.SampleRate
	gen := signal.NewGenerator(signal.WithSampleRate(fs), signal.WithSeed(opts.seed))
	sig, err := gen.Generate(opts.samples,
		signal.Trend(0.5, 1),
		signal.Sine(fs/25, 1),
		signal.Sine(fs*0.45, 0.5),
		signal.Noise(0.1),
	)
	if err != nil {
		return signal.Signal{}, fmt.Errorf("synthesize: %w", err)
	}
	return sig, nil
}

func sourceName(opts *cliOptions) string {
	switch {
	case opts.synth:
		return "synthetic"
	case opts.input == "-":
		return "stdin"
	default:
		return opts.input
	}
}
