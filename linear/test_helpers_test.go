package linear_test

import (
	"strings"

	"github.com/katalvlaran/polylog/linear"
)

// strParam treats plain strings as monomials; concatenation is the product.
type strParam struct{}

func (strParam) ObjectToKey(obj string) string { return obj }
func (strParam) KeyToObject(key string) string { return key }
func (strParam) ObjectToString(obj string) string { return "[" + obj + "]" }
func (strParam) MonomTensorProduct(a, b string) string { return a + b }

var sp strParam

func terms(pairs ...any) linear.Linear[string] {
	var ret linear.Linear[string]
	for i := 0; i < len(pairs); i += 2 {
		ret.AddToKey(pairs[i].(string), pairs[i+1].(int))
	}
	return ret
}

func concat(a, b string) string { return a + b }

func upper(s string) string { return strings.ToUpper(s) }
