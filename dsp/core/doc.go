// Package core holds the error taxonomy and input checks shared by the
// regression, spectrum and fir packages.
//
// Errors are plain sentinels wrapped with context:
//
//	_, err := regression.FitLinear(t, y)
//	if errors.Is(err, core.ErrDegenerateInput) {
//		// all time stamps identical
//	}
//
// Parameter violations additionally carry a *ParamError naming the
// parameter:
//
//	var pe *core.ParamError
//	if errors.As(err, &pe) {
//		fmt.Println(pe.Name)
//	}
package core
