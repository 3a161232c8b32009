package codec_test

import (
	"fmt"

	"github.com/katalvlaran/polylog/codec"
	"github.com/katalvlaran/polylog/word"
)

func ExampleMarshal() {
	e := word.Single(1, 2).Sub(word.Single(3).Scale(2))
	b, err := codec.Marshal(e)
	if err != nil {
		panic(err)
	}
	back, err := codec.Unmarshal(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(word.Format(back))
	fmt.Println(len(codec.FromExpr(back).Terms))
	// Output:
	// + (1, 2)
	// -2 (3)
	// 2
}
