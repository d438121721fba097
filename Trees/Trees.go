package Trees

import "golang.org/x/exp/constraints"

// Tree represents an ordered container that collapses equal elements into
// a single node with a duplicate counter, so it behaves as a multiset.
// Receivers that have A bool as the last return value indicate whether
// the other return values are defined. For example, calling Minimum on
// an empty tree returns (x T, false bool); in this case the value of x
// should be undefined. However, depending on specific implementations,
// x might have A meaning, but it's advised that x not to be used.
// S is the type used for all element counts: duplicate counters, ranks,
// and sizes. Choose S wide enough to hold the total number of stored
// elements, duplicates included; narrower S silently overflows.
// If an implementation didn't specify anything special, then the
// implemented receivers follow the behaviors defined here.
type Tree[T any, S constraints.Unsigned] interface {
	//Push v into the Tree, always succeeding. Returns the number of stored
	//elements strictly less than v at the moment of insertion and the
	//number of copies of v present before this call.
	Push(v T) (S, S)
	//Remove one occurrence of v from the Tree. Returns true if successful,
	//false if v isn't in the Tree.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Count the occurrences of v. 0 if v isn't in the Tree.
	Count(v T) S
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//PopMin removes and returns one occurrence of the minimum element.
	PopMin() (T, bool)
	//PopMax removes and returns one occurrence of the maximum element.
	PopMax() (T, bool)
	//PopMinAll removes the minimum element with all its duplicates,
	//returning the element and the number of duplicates it had.
	PopMinAll() (T, S, bool)
	//PopMaxAll removes the maximum element with all its duplicates,
	//returning the element and the number of duplicates it had.
	PopMaxAll() (T, S, bool)
	//Len is the number of stored elements, duplicates included.
	Len() S
	//Height of the tree. 0 when empty.
	Height() uint
}
