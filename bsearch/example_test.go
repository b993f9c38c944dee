package bsearch_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/bsearch"
)

func ExampleLowerBound() {
	s := []int{10, 20, 20, 30}
	fmt.Println(bsearch.LowerBound(s, 20), bsearch.UpperBound(s, 20))
	// Output: 1 3
}

// Largest integer square root of 1000.
func ExampleMaxTrue() {
	r, ok := bsearch.MaxTrue(0, 1000, func(x int64) bool { return x*x <= 1000 })
	fmt.Println(r, ok)
	// Output: 31 true
}
