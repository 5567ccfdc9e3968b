package window

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTypes() []Type {
	types := make([]Type, len(shapes))
	for i := range shapes {
		types[i] = Type(i)
	}
	return types
}

func TestSymmetricWindowsPeakAtCenter(t *testing.T) {
	for _, typ := range allTypes() {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 21)
			require.Len(t, w, 21)
			testutil.RequireFinite(t, w)

			assert.InDelta(t, 1.0, w[10], 1e-12)
			for i := range w {
				assert.InDelta(t, w[i], w[len(w)-1-i], 1e-12, "tap %d", i)
				assert.LessOrEqual(t, w[i], 1+1e-12)
				assert.GreaterOrEqual(t, w[i], -1e-12)
			}
		})
	}
}

func TestEndpoints(t *testing.T) {
	tests := []struct {
		typ  Type
		want float64
	}{
		{TypeRectangular, 1},
		{TypeHann, 0},
		{TypeHamming, 0.08},
		{TypeBlackman, 0},
		{TypeKaiser, 1 / besselI0(DefaultKaiserBeta)},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			w := Generate(tt.typ, 5)
			assert.InDelta(t, tt.want, w[0], 1e-12)
			assert.InDelta(t, tt.want, w[4], 1e-12)
		})
	}
}

func TestGenerateDegenerateLengths(t *testing.T) {
	assert.Nil(t, Generate(TypeHann, 0))
	assert.Nil(t, Generate(TypeHann, -3))
	assert.Nil(t, Generate(Type(42), 8))

	// A single tap is the window center.
	for _, typ := range allTypes() {
		assert.Equal(t, []float64{1}, Generate(typ, 1), typ.String())
	}
}

func TestHannValues(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, Generate(TypeHann, 4), []float64{0, 0.75, 0.75, 0}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, Generate(TypeHann, 4, WithPeriodic()), []float64{0, 0.5, 1, 0.5}, 1e-12)
}

func TestBesselI0(t *testing.T) {
	// Reference values of I0.
	assert.InDelta(t, 1.0, besselI0(0), 1e-15)
	assert.InDelta(t, 1.2660658777520082, besselI0(1), 1e-12)
	assert.InDelta(t, 27.239871823604442, besselI0(5), 1e-9)
}

func TestKaiserBetaOption(t *testing.T) {
	flat := Generate(TypeKaiser, 9, WithBeta(0))
	testutil.RequireSliceNearlyEqual(t, flat, testutil.DC(1, 9), 0)

	narrow := Generate(TypeKaiser, 9, WithBeta(12))
	wide := Generate(TypeKaiser, 9, WithBeta(2))
	assert.Less(t, narrow[0], wide[0])

	assert.Equal(t, Generate(TypeKaiser, 9), Generate(TypeKaiser, 9, WithBeta(-1)))
}

func TestKaiserBeta(t *testing.T) {
	assert.Zero(t, KaiserBeta(10))
	assert.InDelta(t, 0.5842*math.Pow(9, 0.4)+0.07886*9, KaiserBeta(30), 1e-12)
	assert.InDelta(t, 0.1102*(60-8.7), KaiserBeta(60), 1e-12)
}

func TestApply(t *testing.T) {
	buf := []float64{2, 2, 2, 2}
	require.NoError(t, Apply(TypeHann, buf))
	testutil.RequireSliceNearlyEqual(t, buf, []float64{0, 1.5, 1.5, 0}, 1e-12)

	rect := []float64{1, 2, 3}
	require.NoError(t, Apply(TypeRectangular, rect))
	assert.Equal(t, []float64{1, 2, 3}, rect)

	require.ErrorIs(t, Apply(TypeHann, nil), core.ErrEmptyInput)
	require.ErrorIs(t, Apply(Type(-1), rect), core.ErrInvalidParameter)
}

func TestParseType(t *testing.T) {
	for _, typ := range allTypes() {
		got, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	got, err := ParseType("  Hamming ")
	require.NoError(t, err)
	assert.Equal(t, TypeHamming, got)

	_, err = ParseType("tukey")
	require.ErrorIs(t, err, errUnknownType)
}

func TestTypeText(t *testing.T) {
	b, err := TypeBlackman.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "blackman", string(b))

	var typ Type
	require.NoError(t, typ.UnmarshalText([]byte("kaiser")))
	assert.Equal(t, TypeKaiser, typ)

	_, err = Type(99).MarshalText()
	require.Error(t, err)
	assert.Equal(t, "Type(99)", Type(99).String())
}
