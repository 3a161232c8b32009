package linear_test

import (
	"fmt"

	"github.com/katalvlaran/polylog/linear"
)

func ExampleLinear() {
	e := linear.SingleKey("a").Add(linear.SingleKey("b").Scale(3))
	e = e.Sub(linear.SingleKey("a"))
	fmt.Println(e.NumTerms(), e.CoeffForKey("b"))
	// Output: 1 3
}

func ExampleOuterProduct() {
	lhs := linear.FromTerms(linear.Term[string]{Key: "a", Coeff: 1}, linear.Term[string]{Key: "b", Coeff: -1})
	rhs := linear.SingleKey("c")
	fmt.Println(linear.OuterProduct(lhs, rhs, func(x, y string) string { return x + y }))
	// Output:
	// + ac
	// - bc
}
