package delta

// CrossRatio returns Σ (-1)^i D(v[i], v[i+1 mod n]). For four points this is
// the symbol of the cross ratio (a, b, c, d).
func CrossRatio(v ...int) Expr {
	var ret Expr
	n := len(v)
	for i := 0; i < n; i++ {
		sign := 1
		if i%2 == 1 {
			sign = -1
		}
		ret.Accumulate(D(v[i], v[(i+1)%n]), sign)
	}
	return ret
}

// NegCrossRatio is the symbol of 1 - cross ratio (a, b, c, d).
func NegCrossRatio(a, b, c, d int) Expr { return CrossRatio(a, c, b, d) }

// NegInvCrossRatio is the symbol of 1 - 1 / cross ratio (a, b, c, d).
func NegInvCrossRatio(a, b, c, d int) Expr { return CrossRatio(a, c, d, b) }
