package lyndon_test

import (
	"fmt"

	"github.com/katalvlaran/polylog/lyndon"
	"github.com/katalvlaran/polylog/word"
)

func ExampleFactorize() {
	less := func(a, b int) bool { return a < b }
	fmt.Println(lyndon.Factorize([]int{1, 2, 3, 2, 1}, less))
	// Output: [[1 2 3 2] [1]]
}

func ExampleToBasis() {
	e := word.Single(2, 1, 3)
	fmt.Println(word.Format(lyndon.ToBasis(e)))
	// Output:
	// - (1, 2, 3)
	// - (1, 3, 2)
}
