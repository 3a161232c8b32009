package linear

import (
	"fmt"
	"math"
)

// addCoeff returns a+b, panicking with ErrCoeffOverflow if the sum does not fit into int.
func addCoeff(a, b int) int {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		panic(fmt.Errorf("%w: %d + %d", ErrCoeffOverflow, a, b))
	}
	return s
}

// mulCoeff returns a*b, panicking with ErrCoeffOverflow if the product does not fit into int.
func mulCoeff(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		panic(fmt.Errorf("%w: %d * %d", ErrCoeffOverflow, a, b))
	}
	p := a * b
	if p/b != a {
		panic(fmt.Errorf("%w: %d * %d", ErrCoeffOverflow, a, b))
	}
	return p
}

// Factorial returns n! as an int. It panics with ErrCoeffOverflow when n! does not fit.
func Factorial(n int) int {
	ret := 1
	for i := 2; i <= n; i++ {
		ret = mulCoeff(ret, i)
	}
	return ret
}
