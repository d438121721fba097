package Trees

import (
	"golang.org/x/exp/constraints"
)

// CAVLTree is the version of AVLTree for element types without a natural
// total order. All methods are implemented exactly as AVLTree except for
// using the given less-than and equality functions for comparisons.
// Arguments passed to lessThan and equals will always be type T so no
// type checks are needed. lessThan must describe a strict total order
// consistent with equals; RandLess paired with plain value equality is
// the sanctioned exception, see its doc for the guarantees that remain.
// Unlike AVLTree, the zero value has no comparison functions and is not
// usable; create a CAVLTree with MakeCAVLTree.
type CAVLTree[T any, S constraints.Unsigned] struct {
	root   nodePtr[T, S]
	lt, eq func(T, T) bool
}

// MakeCAVLTree is the CAVLTree equivalence of MakeAVLTree.
func MakeCAVLTree[T any, S constraints.Unsigned](lessThan, equals func(T, T) bool) *CAVLTree[T, S] {
	return &CAVLTree[T, S]{lt: lessThan, eq: equals}
}

func (u *CAVLTree[T, S]) push(n *nodePtr[T, S], v T) (S, S, delta) {
	if cur := *n; cur == nil {
		*n = &node[T, S]{v: v}
		return 0, 0, grew
	} else if u.lt(v, cur.v) {
		cur.less++
		less, dup, d := u.push(&cur.l, v)
		return less, dup, rebalance(n, d, true)
	} else if u.eq(v, cur.v) {
		cur.dup++
		return cur.less, cur.dup, same
	} else {
		less, dup, d := u.push(&cur.r, v)
		return cur.less + cur.dup + 1 + less, dup, rebalance(n, d, false)
	}
}

// Push [Tree.Push]. Recursive.
// Time: O(D)
func (u *CAVLTree[T, S]) Push(v T) (S, S) {
	rank, dup, _ := u.push(&u.root, v)
	return rank, dup
}

func (u *CAVLTree[T, S]) remove(n *nodePtr[T, S], v T) (bool, delta) {
	cur := *n
	if cur == nil {
		return false, same
	}
	if u.lt(v, cur.v) {
		if ok, d := u.remove(&cur.l, v); ok {
			cur.less--
			return true, rebalance(n, d, true)
		}
		return false, same
	}
	if u.eq(v, cur.v) {
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
	if ok, d := u.remove(&cur.r, v); ok {
		return true, rebalance(n, d, false)
	}
	return false, same
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *CAVLTree[T, S]) Remove(v T) bool {
	ok, _ := u.remove(&u.root, v)
	return ok
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u CAVLTree[T, S]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if u.lt(v, cur.v) {
			cur = cur.l
		} else if u.eq(v, cur.v) {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Count [Tree.Count]
// Time: O(D); Space: O(1)
func (u CAVLTree[T, S]) Count(v T) S {
	for cur := u.root; cur != nil; {
		if u.lt(v, cur.v) {
			cur = cur.l
		} else if u.eq(v, cur.v) {
			return cur.dup + 1
		} else {
			cur = cur.r
		}
	}
	return 0
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u CAVLTree[T, S]) Minimum() (T, bool) {
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
func (u CAVLTree[T, S]) Maximum() (T, bool) {
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
func (u *CAVLTree[T, S]) PopMin() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	v, _ := popMin(&u.root)
	return v, true
}

// PopMax [Tree.PopMax]. Recursive.
// Time: O(D)
func (u *CAVLTree[T, S]) PopMax() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	v, _ := popMax(&u.root)
	return v, true
}

// PopMinAll [Tree.PopMinAll]. Recursive.
// Time: O(D)
func (u *CAVLTree[T, S]) PopMinAll() (T, S, bool) {
	if u.root == nil {
		return *new(T), 0, false
	}
	v, dup, _ := popMinAll(&u.root)
	return v, dup, true
}

// PopMaxAll [Tree.PopMaxAll]. Recursive.
// Time: O(D)
func (u *CAVLTree[T, S]) PopMaxAll() (T, S, bool) {
	if u.root == nil {
		return *new(T), 0, false
	}
	v, dup, _ := popMaxAll(&u.root)
	return v, dup, true
}

// Len [Tree.Len]. Computed from the root's counters rather than stored.
// Time: O(D); Space: O(1)
func (u CAVLTree[T, S]) Len() S {
	return total(u.root)
}

// Height [Tree.Height]
// Time: O(D); Space: O(1)
func (u CAVLTree[T, S]) Height() uint {
	return height(u.root)
}
