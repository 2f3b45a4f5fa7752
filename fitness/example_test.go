package fitness_test

import (
	"fmt"

	"github.com/strandlab/coopstrand/fitness"
)

// ExampleCompute evaluates the advantage factors of the non-cooperative
// circular baseline (residence 0.4 from breakage 0.5, r0 = 10).
func ExampleCompute() {
	f, err := fitness.Compute(0.4, 2.0, 10, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("retention %.4f\n", f.Retention)
	fmt.Printf("growth    %.4f\n", f.Growth)
	fmt.Printf("combined  %.4f\n", f.Combined)
	// Output:
	// retention 0.9817
	// growth    0.3333
	// combined  0.3272
}
