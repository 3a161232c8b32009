package word_test

import (
	"fmt"

	"github.com/katalvlaran/polylog/word"
)

func ExampleConcat() {
	u := word.Encode(1, 2)
	v := word.Encode(3)
	fmt.Println(word.Concat(u, v), word.Concat(u, v).Len())
	// Output: (1, 2, 3) 3
}
