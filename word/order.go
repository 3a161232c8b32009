package word

// Order is a strict total order on letters.
type Order interface {
	Less(a, b int) bool
}

// Natural orders letters as integers.
type Natural struct{}

func (Natural) Less(a, b int) bool { return a < b }

// Reversed orders letters as integers, largest first.
type Reversed struct{}

func (Reversed) Less(a, b int) bool { return a > b }

// OrderFunc adapts a plain function to Order.
type OrderFunc func(a, b int) bool

func (f OrderFunc) Less(a, b int) bool { return f(a, b) }
