package Trees

import "golang.org/x/exp/constraints"

// A node in the AVLTree and CAVLTree.
// The zero value is meaningless. Each distinct value lives in exactly one
// node; extra copies only grow dup. less is the total number of elements
// stored in the subtree rooted at l, duplicates included, so at the root
// it is the rank of v within the whole tree.
type node[T any, S constraints.Unsigned] struct {
	v    T
	l, r nodePtr[T, S]
	less S
	dup  S
	bf   int8
}

// Pointer to a node. A nil nodePtr is an empty subtree.
type nodePtr[T any, S constraints.Unsigned] *node[T, S]

// delta is the height change of a subtree reported to its parent after a
// mutation somewhere below.
type delta int8

const (
	shrank delta = iota - 1
	same
	grew
)

// total elements in the subtree rooted at n, duplicates included. Only the
// right spine is walked since less already counts everything to the left.
// Time: O(D); Space: O(1)
func total[T any, S constraints.Unsigned](n nodePtr[T, S]) S {
	var c S
	for ; n != nil; n = n.r {
		c += n.less + n.dup + 1
	}
	return c
}

// height of the subtree rooted at n. Descends the taller side chosen by the
// balance factor, which is exact because sibling heights differ by at most 1.
// Time: O(D); Space: O(1)
func height[T any, S constraints.Unsigned](n nodePtr[T, S]) uint {
	var h uint
	for n != nil {
		h++
		if n.bf >= 0 {
			n = n.l
		} else {
			n = n.r
		}
	}
	return h
}

// rotateLeft performs a left rotation on nodePtr n. n is passed by reference
// in order to modify its content. Balance factors of the two nodes follow
// the general rotation formulas, which also hold for the transient ±2 states
// inside a double rotation. The promoted node's less is recomputed as the
// total of its new left subtree.
// Time: O(D); Space: O(1)
func rotateLeft[T any, S constraints.Unsigned](n *nodePtr[T, S]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	r.bf = r.bf + 1 - min(rc.bf, 0)
	rc.bf = rc.bf + 1 + max(r.bf, 0)
	rc.less = total(rc.l)
	*n = rc
}

// rotateRight performs a right rotation on nodePtr n. n is passed by
// reference in order to modify its content. The demoted node's less is
// recomputed as the total of its new left subtree.
// Time: O(D); Space: O(1)
func rotateRight[T any, S constraints.Unsigned](n *nodePtr[T, S]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	r.bf = r.bf - 1 - max(lc.bf, 0)
	lc.bf = lc.bf - 1 + min(r.bf, 0)
	r.less = total(r.l)
	*n = lc
}

// rotate restores the balance invariant at n when its balance factor
// reached ±2, choosing a single or double rotation by the heavy child's
// lean. No-op returning false otherwise.
func rotate[T any, S constraints.Unsigned](n *nodePtr[T, S]) bool {
	switch cur := *n; cur.bf {
	case 2:
		if cur.l.bf < 0 {
			rotateLeft(&cur.l)
		}
		rotateRight(n)
		return true
	case -2:
		if cur.r.bf > 0 {
			rotateRight(&cur.r)
		}
		rotateLeft(n)
		return true
	}
	return false
}

// rebalance folds the height change d of the child on the side given by
// fromLeft into n's balance factor, rotating when it hits ±2, and returns
// the height change of the whole subtree at n for the next level up. This
// runs once per ancestor on the way back from every mutation.
func rebalance[T any, S constraints.Unsigned](n *nodePtr[T, S], d delta, fromLeft bool) delta {
	cur := *n
	switch d {
	case grew:
		if fromLeft {
			cur.bf++
		} else {
			cur.bf--
		}
		if rotate(n) || cur.bf == 0 {
			return same
		}
		return grew
	case shrank:
		if fromLeft {
			cur.bf--
		} else {
			cur.bf++
		}
		if cur.bf == -2 {
			d = shrank
			if cur.r.bf == 0 {
				d = same
			}
			rotate(n)
			return d
		} else if cur.bf == 2 {
			d = shrank
			if cur.l.bf == 0 {
				d = same
			}
			rotate(n)
			return d
		} else if cur.bf == 0 {
			return shrank
		}
		return same
	}
	return same
}

// popMin removes one occurrence of the smallest element of the non-empty
// subtree rooted in the slot n. A node outlives its first pops through dup;
// the node itself is spliced out only when no duplicates remain. Every level
// on the path loses one element from its left subtree.
func popMin[T any, S constraints.Unsigned](n *nodePtr[T, S]) (T, delta) {
	cur := *n
	if cur.l == nil {
		if cur.dup > 0 {
			cur.dup--
			return cur.v, same
		}
		*n = cur.r
		return cur.v, shrank
	}
	v, d := popMin(&cur.l)
	cur.less--
	return v, rebalance(n, d, true)
}

// popMax is the mirror of popMin. Right descents never pass a left link, so
// no less counter changes.
func popMax[T any, S constraints.Unsigned](n *nodePtr[T, S]) (T, delta) {
	cur := *n
	if cur.r == nil {
		if cur.dup > 0 {
			cur.dup--
			return cur.v, same
		}
		*n = cur.l
		return cur.v, shrank
	}
	v, d := popMax(&cur.r)
	return v, rebalance(n, d, false)
}

// popMinAll removes the smallest element of the non-empty subtree rooted in
// the slot n together with all its duplicates, returning the element and its
// dup count. Every level on the path loses dup+1 elements from its left
// subtree.
func popMinAll[T any, S constraints.Unsigned](n *nodePtr[T, S]) (T, S, delta) {
	cur := *n
	if cur.l == nil {
		*n = cur.r
		return cur.v, cur.dup, shrank
	}
	v, dup, d := popMinAll(&cur.l)
	cur.less -= dup + 1
	return v, dup, rebalance(n, d, true)
}

// popMaxAll is the mirror of popMinAll.
func popMaxAll[T any, S constraints.Unsigned](n *nodePtr[T, S]) (T, S, delta) {
	cur := *n
	if cur.r == nil {
		*n = cur.l
		return cur.v, cur.dup, shrank
	}
	v, dup, d := popMaxAll(&cur.r)
	return v, dup, rebalance(n, d, false)
}
