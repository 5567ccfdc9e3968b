package regression_test

import (
	"fmt"

	"github.com/cwbudde/algo-signal/dsp/regression"
)

func ExampleFitLinear() {
	time := []float64{0, 1, 2, 3, 4}
	amp := []float64{3, 5, 7, 9, 11}

	res, err := regression.FitLinear(time, amp)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("y = %.4fx + %.4f\n", res.Slope, res.Intercept)
	// Output:
	// y = 2.0000x + 3.0000
}

func ExampleFitLinear_degenerate() {
	_, err := regression.FitLinear([]float64{1, 1, 1}, []float64{0, 1, 2})
	fmt.Println(err)
	// Output:
	// regression: degenerate input: time values are all identical
}
