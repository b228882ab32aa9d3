package rbtree

import (
	"math/rand"
	"testing"

	qt "github.com/frankban/quicktest"
)

// TestProperty_InvariantsHoldAfterEveryMutation drives 100 random
// insert/delete sequences of length 1-1000 against a fresh tree,
// re-checking every red-black invariant (root color, sentinel color,
// no red-red parent/child, uniform black-height, BST ordering) after
// every single mutation. This directly exercises spec scenario 8.4.
func TestProperty_InvariantsHoldAfterEveryMutation(t *testing.T) {
	c := qt.New(t)
	rng := rand.New(rand.NewSource(1))

	for seq := 0; seq < 100; seq++ {
		tree := New[int, struct{}](func(a, b int) bool { return a < b })

		length := 1 + rng.Intn(1000)
		inserted := map[int]bool{}

		for i := 0; i < length; i++ {
			key := rng.Intn(length * 2)

			if len(inserted) > 0 && rng.Intn(3) == 0 {
				// occasionally delete an existing key instead of inserting
				var victim int
				for k := range inserted {
					victim = k
					break
				}
				n, found := tree.Search(victim)
				c.Assert(found, qt.IsTrue)
				c.Assert(tree.Delete(n), qt.IsTrue)
				delete(inserted, victim)
			} else {
				tree.Insert(key, struct{}{})
				inserted[key] = true
			}

			c.Assert(tree.IsTreeValid(), qt.IsNil,
				qt.Commentf("sequence %d step %d: tree:\n%s", seq, i, tree))
		}
	}
}
