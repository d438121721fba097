package Trees

import (
	"cmp"
	"math/rand/v2"

	"github.com/taylorza/go-lfsr"
)

// RandLess returns a strict less-than function for T that orders equal
// values pseudo-randomly. Unequal values compare normally. It is meant
// for ordering-sensitive callers whose inputs contain equal but distinct
// elements, where a partial order must be forced into a total one.
// Each tie consumes one step of a lfsr stream seeded randomly at creation,
// so comparing the same pair twice can give different answers. A CAVLTree
// combining it with real equality will therefore sometimes store copies of
// a value in separate nodes, and Has/Count/Remove on such values can miss;
// only order-blind properties (Len, balance, drain order) stay reliable.
// The returned function carries the stream state and isn't safe for
// concurrent use, matching the single writer contract of the trees.
func RandLess[T cmp.Ordered]() func(T, T) bool {
	gen := lfsr.NewLfsr32(rand.Uint32())
	return func(a, b T) bool {
		if a != b {
			return a < b
		}
		r, _ := gen.Next()
		return r&1 == 1
	}
}
