package delta_test

import (
	"fmt"

	"github.com/katalvlaran/polylog/delta"
)

func ExampleCrossRatio() {
	fmt.Println(delta.Format(delta.CrossRatio(1, 2, 3, 4)))
	// Output:
	// + (x1 - x2)
	// - (x1 - x4)
	// - (x2 - x3)
	// + (x3 - x4)
}
