package time_test

import (
	"fmt"

	"github.com/cwbudde/algo-sigkit/dsp/core"
	timestats "github.com/cwbudde/algo-sigkit/stats/time"
)

func ExampleAverage() {
	avg, err := timestats.Average(core.FloatSeries([]float32{6.2, 7.1, 6.2}))
	if err != nil {
		panic(err)
	}

	fmt.Println(avg)
	// Output:
	// 6.5
}

func ExampleNormalizeByMean() {
	out, err := timestats.NormalizeByMean(core.IntSeries([]int32{1, 2, 3}))
	if err != nil {
		panic(err)
	}

	fmt.Println(out)
	// Output:
	// [0.5 1 1.5]
}
