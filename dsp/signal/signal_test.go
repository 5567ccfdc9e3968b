package signal

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	in := `# time amplitude
0    1.5
0.008	-2

0.016 3e-1
`
	sig, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.008, 0.016}, sig.Time)
	assert.Equal(t, []float64{1.5, -2, 0.3}, sig.Amplitude)
	assert.Equal(t, 3, sig.Len())

	dt, err := sig.SampleInterval()
	require.NoError(t, err)
	assert.InDelta(t, 0.008, dt, 1e-15)

	fs, err := sig.SampleRate()
	require.NoError(t, err)
	assert.InDelta(t, 125.0, fs, 1e-9)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
		wantMsg string
	}{
		{name: "one column", in: "0 1\n1\n", wantErr: ErrFormat, wantMsg: "line 2"},
		{name: "three columns", in: "0 1 2\n", wantErr: ErrFormat, wantMsg: "line 1"},
		{name: "bad time", in: "0 1\nx 2\n", wantErr: ErrFormat, wantMsg: `time "x"`},
		{name: "bad amplitude", in: "0 1\n1 y\n", wantErr: ErrFormat, wantMsg: `amplitude "y"`},
		{name: "empty", in: "", wantErr: core.ErrInvalidInput},
		{name: "single sample", in: "0 1\n", wantErr: core.ErrInvalidInput},
		{name: "not increasing", in: "0 1\n1 2\n1 3\n", wantErr: core.ErrInvalidInput, wantMsg: "index 2"},
		{name: "decreasing", in: "1 1\n0 2\n", wantErr: core.ErrInvalidInput},
		{name: "nan", in: "0 1\n1 NaN\n", wantErr: core.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in))
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, core.ErrInvalidInput)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	sig := Signal{
		Time:      []float64{0, 0.1, 0.2},
		Amplitude: []float64{-1.25, 1e-9, 42},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sig))
	assert.Equal(t, "0 -1.25\n0.1 1e-09\n0.2 42\n", buf.String())

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, sig, got)

	require.ErrorIs(t, Write(&buf, Signal{Time: []float64{1}}), core.ErrInvalidInput)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sig.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n1 2\n2 4\n"), 0o600))

	sig, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, sig.Len())

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Signal{Time: []float64{0, 1}, Amplitude: []float64{5, 5}}.Validate())

	err := Signal{Time: []float64{0, 1, 2}, Amplitude: []float64{5, 5}}.Validate()
	require.ErrorIs(t, err, core.ErrInvalidInput)

	err = Signal{Time: []float64{0, math.Inf(1)}, Amplitude: []float64{5, 5}}.Validate()
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestUniformAndDuration(t *testing.T) {
	u := Signal{Time: []float64{0, 0.5, 1, 1.5}, Amplitude: make([]float64, 4)}
	assert.True(t, u.Uniform(1e-9))
	assert.InDelta(t, 1.5, u.Duration(), 0)

	nu := Signal{Time: []float64{0, 0.5, 1, 2}, Amplitude: make([]float64, 4)}
	assert.False(t, nu.Uniform(1e-3))

	assert.False(t, Signal{}.Uniform(1))
	assert.InDelta(t, 0.0, Signal{}.Duration(), 0)

	_, err := Signal{Time: []float64{1}}.SampleInterval()
	require.ErrorIs(t, err, core.ErrInvalidInput)
}
