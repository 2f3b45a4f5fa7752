package lattice_test

import (
	"fmt"

	"github.com/strandlab/coopstrand/lattice"
)

// ExampleIndex shows where a pattern sits in the canonical enumeration.
func ExampleIndex() {
	// Sites 1 and 3 occupied: 0b00101.
	i, _ := lattice.Index(lattice.State(0b00101))
	fmt.Println(i)

	full, _ := lattice.Index(lattice.Full)
	fmt.Println(full)
	// Output:
	// 7
	// 31
}

// ExampleOf walks the first few states of the enumeration.
func ExampleOf() {
	for i := 0; i < 7; i++ {
		s, _ := lattice.Of(i)
		fmt.Printf("%2d: %05b (weight %d)\n", i, s, lattice.Weight(s))
	}
	// Output:
	//  0: 00000 (weight 0)
	//  1: 00001 (weight 1)
	//  2: 00010 (weight 1)
	//  3: 00100 (weight 1)
	//  4: 01000 (weight 1)
	//  5: 10000 (weight 1)
	//  6: 00011 (weight 2)
}
