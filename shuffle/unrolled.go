package shuffle

import (
	"math/bits"
	"sync"

	"github.com/katalvlaran/polylog/word"
)

// masks[n][m] lists every interleaving of a length-n word with a length-m
// word (1 <= n <= m, n+m <= MaxUnrolledLen). Bit i set means position i of
// the output takes the next letter of the shorter word.
var (
	masksOnce sync.Once
	masks     [][][]uint16
)

func interleavings(n, m int) []uint16 {
	masksOnce.Do(buildMasks)
	return masks[n][m]
}

func buildMasks() {
	masks = make([][][]uint16, MaxUnrolledLen+1)
	for n := 1; 2*n <= MaxUnrolledLen; n++ {
		masks[n] = make([][]uint16, MaxUnrolledLen-n+1)
		for m := n; n+m <= MaxUnrolledLen; m++ {
			total := n + m
			for mask := 0; mask < 1<<total; mask++ {
				if bits.OnesCount(uint(mask)) == n {
					masks[n][m] = append(masks[n][m], uint16(mask))
				}
			}
		}
	}
}

// unrolledProduct returns u ⧢ v from the table, or false if the shape is not
// covered. Both words must be non-empty.
func unrolledProduct(u, v word.Word) (word.Expr, bool) {
	if len(u) > len(v) {
		u, v = v, u
	}
	n, m := len(u), len(v)
	if n+m > MaxUnrolledLen {
		return word.Expr{}, false
	}
	var ret word.Expr
	buf := make(word.Word, n+m)
	for _, mask := range interleavings(n, m) {
		i, j := 0, 0
		for pos := range buf {
			if mask&(1<<pos) != 0 {
				buf[pos] = u[i]
				i++
			} else {
				buf[pos] = v[j]
				j++
			}
		}
		ret.AddToKey(word.Encode(buf...), 1)
	}
	return ret, true
}
