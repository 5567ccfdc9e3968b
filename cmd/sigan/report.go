package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-signal/analysis"
)

func writeJSON(w io.Writer, rep *analysis.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// writeTable prints a summary of rep. At most bins rows of the one-sided
// spectrum are printed; bins == 0 prints all of them.
func writeTable(w io.Writer, rep *analysis.Report, bins int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	p := &printer{w: tw}

	reg := rep.Regression
	p.printf("Signal\n")
	p.printf("  samples\t%d\n", rep.Samples)
	p.printf("  sample interval\t%.6g s\n", rep.SampleInterval)
	p.printf("\nLinear regression\n")
	p.printf("  slope\t%.6g\n", reg.Slope)
	p.printf("  intercept\t%.6g\n", reg.Intercept)
	p.printf("  R²\t%.6f\n", reg.RSquared)
	p.printf("  residual RMS\t%.6g\n", reg.Residuals.RMS)

	freq, mag := rep.Spectrum.OneSided()
	st := rep.Spectrum.Stats
	p.printf("\nSpectrum (%d of %d bins)\n", len(mag), len(rep.Spectrum.Magnitude))
	p.printf("  DC\t%.6g\n", st.DC)
	p.printf("  peak\t%.6g at %.4g Hz (bin %d)\n", st.Peak, st.PeakFreq, st.PeakBin)
	p.printf("  centroid\t%.4g Hz\n", st.Centroid)
	p.printf("\n  Bin\tFreq [Hz]\tMagnitude\n")
	p.printf("  ---\t---------\t---------\n")
	n := len(mag)
	if bins > 0 && bins < n {
		n = bins
	}
	for k := range n {
		p.printf("  %d\t%.4f\t%.6g\n", k, freq[k], mag[k])
	}
	if n < len(mag) {
		p.printf("  ...\t\t(%d more)\n", len(mag)-n)
	}

	lp := rep.LowPass
	p.printf("\nLow-pass filter\n")
	p.printf("  half-width M\t%d (%d taps)\n", lp.Spec.HalfWidth, lp.Spec.Taps())
	p.printf("  cutoff\t%.6g Hz\n", lp.Spec.Cutoff)
	p.printf("  sample rate\t%.6g Hz\n", lp.Spec.SampleRate)
	p.printf("  window\t%s\n", lp.Window)
	p.printf("  gain at cutoff\t%.2f dB\n", lp.CutoffGainDB)
	p.printf("  output RMS\t%.6g\n", lp.Output.RMS)
	p.printf("  removed RMS\t%.6g\n", lp.Removed.RMS)

	if p.err != nil {
		return fmt.Errorf("write report: %w", p.err)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// printer keeps the first write error so the table can be written without
// checking every line.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
