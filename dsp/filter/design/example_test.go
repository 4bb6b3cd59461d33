package design_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sigkit/dsp/filter/design"
)

func ExampleDerive() {
	spec, err := design.NewLowPass(200, 1000)
	if err != nil {
		panic(err)
	}

	c, err := design.Derive(spec)
	if err != nil {
		panic(err)
	}

	fmt.Println(spec)
	fmt.Printf("b = %.6f %.6f %.6f\n", c.B0, c.B1, c.B2)
	fmt.Printf("a = 1 %.6f %.6f\n", c.A1, c.A2)
	fmt.Printf("%.2f dB at cutoff\n", c.MagnitudeDB(200, 1000))
	// Output:
	// lowpass 200 Hz @ 1000 Hz
	// b = 0.206572 0.413144 0.206572
	// a = 1 -0.369527 0.195816
	// -3.01 dB at cutoff
}

func ExampleNewLowPass_aboveNyquist() {
	_, err := design.NewLowPass(600, 1000)
	fmt.Println(errors.Is(err, design.ErrInvalidCutoff))
	// Output:
	// true
}
