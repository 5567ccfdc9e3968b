package signal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// ErrFormat reports a line that is not a "time amplitude" pair.
var ErrFormat = fmt.Errorf("%w: malformed signal text", core.ErrInvalidInput)

// Read parses the two-column text format: one whitespace-separated
// "time amplitude" pair per line. Blank lines and lines starting with '#'
// are skipped. The result is validated with [Signal.Validate].
func Read(r io.Reader) (Signal, error) {
	var sig Signal

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return Signal{}, fmt.Errorf("signal: line %d: %w: want 2 columns, got %d", lineNo, ErrFormat, len(fields))
		}
		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Signal{}, fmt.Errorf("signal: line %d: %w: time %q", lineNo, ErrFormat, fields[0])
		}
		a, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Signal{}, fmt.Errorf("signal: line %d: %w: amplitude %q", lineNo, ErrFormat, fields[1])
		}
		sig.Time = append(sig.Time, t)
		sig.Amplitude = append(sig.Amplitude, a)
	}
	if err := sc.Err(); err != nil {
		return Signal{}, fmt.Errorf("signal: read: %w", err)
	}

	if err := sig.Validate(); err != nil {
		return Signal{}, err
	}
	return sig, nil
}

// ReadFile opens path and parses it with [Read].
func ReadFile(path string) (Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return Signal{}, fmt.Errorf("signal: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Write emits sig in the format accepted by [Read].
func Write(w io.Writer, sig Signal) error {
	if len(sig.Time) != len(sig.Amplitude) {
		return fmt.Errorf("signal: %w: time/amplitude length mismatch: %d != %d",
			core.ErrInvalidInput, len(sig.Time), len(sig.Amplitude))
	}

	bw := bufio.NewWriter(w)
	for i, t := range sig.Time {
		bw.WriteString(strconv.FormatFloat(t, 'g', -1, 64))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(sig.Amplitude[i], 'g', -1, 64))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("signal: write: %w", err)
	}
	return nil
}
