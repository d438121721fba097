package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// AVLTree is a height-balanced binary search tree that allows repeated
// values. Equal values share one node carrying a duplicate counter, and
// every node tracks the size of its left subtree, so Push can report the
// rank of the new value (how many stored elements are strictly smaller)
// without an extra pass.
// T is the type of values it will hold, S is the type of the variables
// used for storing the counts of different subtrees.
// Balance is maintained by rotations driven by a height change signal
// that every mutation hands back to its parent, keeping the worst case
// height D below f(n)=1.44*log2(n+2), n counting duplicates.
// S must be wide enough to hold the total number of stored elements,
// duplicates included; narrower S silently overflows. The zero value is
// an empty tree ready for use.
type AVLTree[T cmp.Ordered, S constraints.Unsigned] struct {
	root nodePtr[T, S]
}

// MakeAVLTree returns an empty AVLTree satisfying the above definitions
// for root and types.
func MakeAVLTree[T cmp.Ordered, S constraints.Unsigned]() *AVLTree[T, S] {
	return &AVLTree[T, S]{}
}

// push v into the subtree rooted in the slot n recursively. n is passed by
// reference. Returns the count of elements less than v in that subtree, the
// count of copies of v present before this call, and the height change. A
// left descent first grows cur's left subtree total; a right descent adds
// everything at and left of cur to the reported rank on the way back.
func (u *AVLTree[T, S]) push(n *nodePtr[T, S], v T) (S, S, delta) {
	if cur := *n; cur == nil {
		*n = &node[T, S]{v: v}
		return 0, 0, grew
	} else if v < cur.v {
		cur.less++
		less, dup, d := u.push(&cur.l, v)
		return less, dup, rebalance(n, d, true)
	} else if v > cur.v {
		less, dup, d := u.push(&cur.r, v)
		return cur.less + cur.dup + 1 + less, dup, rebalance(n, d, false)
	} else {
		cur.dup++
		return cur.less, cur.dup, same
	}
}

// Push [Tree.Push]. Recursive.
// It is a wrapper for push.
// Time: O(D)
func (u *AVLTree[T, S]) Push(v T) (S, S) {
	rank, dup, _ := u.push(&u.root, v)
	return rank, dup
}

// remove one occurrence of v from the subtree rooted in the slot n
// recursively. n is passed by reference. Returns false if the removal
// failed (v doesn't exist in u), otherwise true. Duplicates are consumed
// in place without touching the shape. A node with two children absorbs
// the value and duplicate counter of its in-order predecessor when its
// left side is at least as tall, of its successor otherwise, choosing the
// side whose shrinking cannot unbalance it. Levels whose left subtree lost
// elements shrink their less counters by the amount removed.
func (u *AVLTree[T, S]) remove(n *nodePtr[T, S], v T) (bool, delta) {
	cur := *n
	if cur == nil {
		return false, same
	}
	if v < cur.v {
		if ok, d := u.remove(&cur.l, v); ok {
			cur.less--
			return true, rebalance(n, d, true)
		}
		return false, same
	}
	if v > cur.v {
		if ok, d := u.remove(&cur.r, v); ok {
			return true, rebalance(n, d, false)
		}
		return false, same
	}
	if cur.dup > 0 {
		cur.dup--
		return true, same
	}
	if cur.l == nil {
		*n = cur.r
		return true, shrank
	}
	if cur.r == nil {
		*n = cur.l
		return true, shrank
	}
	if cur.bf >= 0 {
		v2, dup, d := popMaxAll(&cur.l)
		cur.v, cur.dup = v2, dup
		cur.less -= dup + 1
		return true, rebalance(n, d, true)
	}
	v2, dup, d := popMinAll(&cur.r)
	cur.v, cur.dup = v2, dup
	return true, rebalance(n, d, false)
}

// Remove [Tree.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *AVLTree[T, S]) Remove(v T) bool {
	ok, _ := u.remove(&u.root, v)
	return ok
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Count [Tree.Count]
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) Count(v T) S {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return cur.dup + 1
		}
	}
	return 0
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) Minimum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) Maximum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
}

// PopMin [Tree.PopMin]. Recursive.
// Time: O(D)
func (u *AVLTree[T, S]) PopMin() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	v, _ := popMin(&u.root)
	return v, true
}

// PopMax [Tree.PopMax]. Recursive.
// Time: O(D)
func (u *AVLTree[T, S]) PopMax() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	v, _ := popMax(&u.root)
	return v, true
}

// PopMinAll [Tree.PopMinAll]. Recursive.
// Time: O(D)
func (u *AVLTree[T, S]) PopMinAll() (T, S, bool) {
	if u.root == nil {
		return *new(T), 0, false
	}
	v, dup, _ := popMinAll(&u.root)
	return v, dup, true
}

// PopMaxAll [Tree.PopMaxAll]. Recursive.
// Time: O(D)
func (u *AVLTree[T, S]) PopMaxAll() (T, S, bool) {
	if u.root == nil {
		return *new(T), 0, false
	}
	v, dup, _ := popMaxAll(&u.root)
	return v, dup, true
}

// Len [Tree.Len]. Computed from the root's counters rather than stored.
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) Len() S {
	return total(u.root)
}

// Height [Tree.Height]
// Time: O(D); Space: O(1)
func (u AVLTree[T, S]) Height() uint {
	return height(u.root)
}
