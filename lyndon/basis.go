package lyndon

import (
	"container/heap"
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/polylog/shuffle"
	"github.com/katalvlaran/polylog/word"
)

var log = logging.Logger("lyndon")

// ToBasis returns the Lyndon basis form of e. Annotations of e are copied to
// the result unchanged. ToBasis is idempotent.
//
// Words are reduced largest first: the shuffle of the factors of w contains w
// once and otherwise only words smaller than w, so each word is expanded at
// most once.
//
// Implementation:
//   - Stage 1: push every word of e onto a max-heap ordered by length, then
//     by the letter order; coefficients wait in a pending expression.
//   - Stage 2: pop the largest word. Lyndon words go to the result and two
//     letter words are flipped directly. Any other word w = L1^k1...Lm^km
//     is replaced by w - (L1⧢...⧢Lm)/(k1!...km!), whose words are all
//     smaller and are pushed back.
//   - Stage 3: copy the annotations of e.
//
// Complexity:
//   - Time O(W·S) where W is the number of words ever queued and S the
//     largest factor shuffle, Space O(W).
//
// Notes:
//   - The division is exact. A remainder panics with ErrInvariant.
func ToBasis(e word.Expr, opts ...Option) word.Expr {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := reducer{ord: o.Order, shuffleOpts: o.Shuffle, queued: make(map[word.Key]struct{})}
	r.queue.ord = o.Order
	e.ForEachKey(r.push)

	var ret word.Expr
	expanded := 0
	for r.queue.Len() > 0 {
		it := heap.Pop(&r.queue).(item)
		c := r.pending.CoeffForKey(it.key)
		r.pending.AddToKey(it.key, -c)
		if c == 0 {
			continue
		}
		switch len(it.word) {
		case 0, 1:
			ret.AddToKey(it.key, c)
			continue
		case 2:
			a, b := it.word[0], it.word[1]
			switch {
			case o.Order.Less(a, b):
				ret.AddToKey(it.key, c)
			case o.Order.Less(b, a):
				ret.AddToKey(word.Encode(b, a), -c)
			}
			continue
		}
		factors := FactorizeWord(it.word, o.Order)
		if len(factors) == 1 {
			ret.AddToKey(it.key, c)
			continue
		}
		expanded++
		r.expand(it.key, factors, c)
	}
	log.Debugf("to_lyndon_basis: %d terms in, %d terms out, %d words expanded", e.NumTerms(), ret.NumTerms(), expanded)
	return ret.CopyAnnotations(e.Annotations())
}

// IsBasis reports whether every word of e is a Lyndon word under ord.
func IsBasis(e word.Expr, ord word.Order) bool {
	for k := range e.All() {
		if !IsLyndon([]int(word.Decode(k)), ord.Less) {
			return false
		}
	}
	return true
}

// Equivalent reports whether a and b agree modulo shuffle relations.
func Equivalent(a, b word.Expr, opts ...Option) bool {
	return ToBasis(a.Sub(b), opts...).IsZero()
}

type reducer struct {
	ord         word.Order
	shuffleOpts []shuffle.Option
	pending     word.Expr
	queued      map[word.Key]struct{}
	queue       wordHeap
}

func (r *reducer) push(k word.Key, c int) {
	if _, ok := r.queued[k]; !ok {
		r.queued[k] = struct{}{}
		heap.Push(&r.queue, item{key: k, word: word.Decode(k)})
	}
	r.pending.AddToKey(k, c)
}

// expand replaces c·w by -c·(shuffle of factors / symmetry - w).
func (r *reducer) expand(k word.Key, factors []word.Word, c int) {
	keys := make([]word.Key, len(factors))
	denominator := 1
	run := 1
	for i, f := range factors {
		keys[i] = word.Encode(f...)
		if i > 0 && f.Equal(factors[i-1]) {
			run++
		} else {
			run = 1
		}
		denominator *= run
	}
	sh := shuffle.ProductMany(keys, r.shuffleOpts...)
	if denominator != 1 {
		var err error
		sh, err = sh.DivInt(denominator)
		if err != nil {
			panic(fmt.Errorf("%w: %s: %w", ErrInvariant, k, err))
		}
	}
	if got := sh.CoeffForKey(k); got != 1 {
		panic(fmt.Errorf("%w: word %s has coefficient %d in the shuffle of its factors", ErrInvariant, k, got))
	}
	sh.AddToKey(k, -1)
	sh.Scale(-c).ForEachKey(r.push)
}

type item struct {
	key  word.Key
	word word.Word
}

// wordHeap is a max-heap of words under ord.
type wordHeap struct {
	items []item
	ord   word.Order
}

func (h wordHeap) Len() int { return len(h.items) }
func (h wordHeap) Less(i, j int) bool {
	return word.Compare(h.items[i].word, h.items[j].word, h.ord) > 0
}
func (h wordHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *wordHeap) Push(x any) { h.items = append(h.items, x.(item)) }
func (h *wordHeap) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	return it
}
