// Package regression fits an ordinary least-squares line to a sampled signal.
//
// [FitLinear] accumulates the four sums Σt, Σy, Σt², Σty in one pass and
// solves the normal equations in closed form:
//
//	slope     = (n·Σty − Σt·Σy) / (n·Σt² − (Σt)²)
//	intercept = (Σy − slope·Σt) / n
//
// The sums are plain (uncompensated). For very long signals, or time stamps
// with a large offset relative to their spread, the denominator suffers from
// cancellation and the fitted coefficients lose precision. This is a known
// limitation; shift the time axis toward zero before fitting if it matters.
package regression
