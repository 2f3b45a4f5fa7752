package sweep_test

import (
	"fmt"

	"github.com/strandlab/coopstrand/fitness"
	"github.com/strandlab/coopstrand/sweep"
)

// ExampleSummarize condenses a finished run into console statistics.
func ExampleSummarize() {
	res := &sweep.Result{
		RunID:    "example",
		Baseline: fitness.Factors{Combined: 0.27},
		Cells: []sweep.Cell{
			{AlphaL: 1, AlphaR: 1, Ratio: 1},
			{AlphaL: 1, AlphaR: 4, Ratio: 1.6},
			{AlphaL: 4, AlphaR: 1, Ratio: 1.6},
			{AlphaL: 4, AlphaR: 4, Ratio: 2.2},
		},
	}

	s, err := sweep.Summarize(res)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("cells %d\n", s.Cells)
	fmt.Printf("ratio min %.2f max %.2f median %.2f\n", s.MinRatio, s.MaxRatio, s.MedianRatio)
	// Output:
	// cells 4
	// ratio min 1.00 max 2.20 median 1.60
}
