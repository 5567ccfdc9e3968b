// Command sigan analyzes a sampled signal: it fits a linear trend, computes
// the DFT magnitude spectrum and applies a windowed-sinc low-pass filter.
//
// Usage:
//
//	sigan [flags] <file>
//
// The input file holds two whitespace-separated columns per line, time and
// amplitude. Blank lines and lines starting with '#' are skipped. Use "-" to
// read from standard input.
//
// Examples:
//
//	sigan data.txt
//	sigan -m 20 -fc 10 -fs 100 data.txt
//	sigan -config sigan.yaml -format json data.txt
//	sigan -synth -n 500
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func realMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	log, err := newLogger(opts.verbose)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: init logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	if err := run(context.Background(), opts, stdin, stdout, log); err != nil {
		log.Error("analysis failed", zap.Error(err))
		return 1
	}
	return 0
}

// newLogger returns a JSON production logger writing to stderr, or a
// development console logger at debug level when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
