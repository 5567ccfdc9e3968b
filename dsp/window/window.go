// Package window generates tapering windows for FIR design.
//
// The fir package truncates its ideal sinc response with [TypeRectangular]
// by default. The tapered windows trade a wider transition band for lower
// passband ripple and stopband leakage.
//
// Windows are evaluated at centered positions u in [-1, 1], so tap j of a
// 2M+1 tap filter sits at u = j/M and the center tap always has weight 1.
package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeKaiser
)

type shape struct {
	name string
	at   func(u float64, s settings) float64
}

var shapes = [...]shape{
	TypeRectangular: {"rectangular", func(float64, settings) float64 { return 1 }},
	TypeHann:        {"hann", func(u float64, _ settings) float64 { return raisedCosine(u, 0.5, 0.5, 0) }},
	TypeHamming:     {"hamming", func(u float64, _ settings) float64 { return raisedCosine(u, 0.54, 0.46, 0) }},
	TypeBlackman:    {"blackman", func(u float64, _ settings) float64 { return raisedCosine(u, 0.42, 0.5, 0.08) }},
	TypeKaiser:      {"kaiser", func(u float64, s settings) float64 { return kaiser(u, s.beta) }},
}

func (t Type) valid() bool {
	return t >= 0 && int(t) < len(shapes)
}

func (t Type) String() string {
	if !t.valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return shapes[t].name
}

// ParseType returns the Type named s (case-insensitive), as printed by
// Type.String.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, sh := range shapes {
		if sh.name == s {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errUnknownType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: %d", errUnknownType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// DefaultKaiserBeta is the Kaiser shape used when WithBeta is not given.
const DefaultKaiserBeta = 8.6

// Option configures window generation.
type Option func(*settings)

type settings struct {
	beta     float64
	periodic bool
}

// WithBeta sets the Kaiser shape parameter. Negative values are ignored.
func WithBeta(beta float64) Option {
	return func(s *settings) {
		if beta >= 0 {
			s.beta = beta
		}
	}
}

// WithPeriodic drops the last point of a length+1 symmetric window, the
// framing used before a DFT.
func WithPeriodic() Option {
	return func(s *settings) {
		s.periodic = true
	}
}

// KaiserBeta returns the Kaiser beta that reaches a stopband attenuation of
// attenuationDB (Kaiser's empirical formula).
func KaiserBeta(attenuationDB float64) float64 {
	switch a := attenuationDB; {
	case a > 50:
		return 0.1102 * (a - 8.7)
	case a >= 21:
		return 0.5842*math.Pow(a-21, 0.4) + 0.07886*(a-21)
	default:
		return 0
	}
}

// Generate returns length window weights, or nil if length <= 0 or t is
// unknown.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 || !t.valid() {
		return nil
	}

	s := settings{beta: DefaultKaiserBeta}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	span := float64(length - 1)
	if s.periodic {
		span = float64(length)
	}

	at := shapes[t].at
	w := make([]float64, length)
	for i := range w {
		u := 0.0
		if span > 0 {
			u = (2*float64(i) - span) / span
		}
		w[i] = at(u, s)
	}
	return w
}

// Apply multiplies buf in place by the window t of the same length.
func Apply(t Type, buf []float64, opts ...Option) error {
	if len(buf) == 0 {
		return errEmptyBuffer
	}
	if !t.valid() {
		return fmt.Errorf("%w: %d", errUnknownType, int(t))
	}
	if t == TypeRectangular {
		return nil
	}
	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
	return nil
}

// raisedCosine is a0 + a1·cos(πu) + a2·cos(2πu).
func raisedCosine(u, a0, a1, a2 float64) float64 {
	return a0 + a1*math.Cos(math.Pi*u) + a2*math.Cos(2*math.Pi*u)
}

func kaiser(u, beta float64) float64 {
	if beta == 0 {
		return 1
	}
	r := math.Sqrt(math.Max(0, 1-u*u))
	return besselI0(beta*r) / besselI0(beta)
}

// besselI0 sums the power series of the modified Bessel function of the
// first kind, order zero, until terms fall below 1e-16 of the total.
func besselI0(x float64) float64 {
	half := x / 2
	sum, term := 1.0, 1.0
	for k := 1; k < 500; k++ {
		f := half / float64(k)
		term *= f * f
		sum += term
		if term < 1e-16*sum {
			break
		}
	}
	return sum
}
