package deque

// The functions below are generic sequence algorithms over iterator ranges, each range being half-open ([first,
// last)). Iterators of a single range must belong to the same deque, otherwise the functions panic.

// Copy copies the elements in [first, last) to the range starting at dst and returns an iterator one past the last
// element written. The destination must already hold enough elements; it may overlap the source as long as it
// starts before it.
func Copy[T any](first, last ConstIterator[T], dst Iterator[T]) Iterator[T] {
	mustShareOwner(first.d, last.d)

	for ; first.Less(last); first, dst = first.Next(), dst.Next() {
		dst.Set(first.Value())
	}

	return dst
}

// Fill overwrites every element in [first, last) with v.
func Fill[T any](first, last Iterator[T], v T) {
	for ; first.Less(last); first = first.Next() {
		first.Set(v)
	}
}

// Count returns the number of elements in [first, last) equal to v.
func Count[T comparable](first, last ConstIterator[T], v T) int {
	return CountFunc(first, last, func(e T) bool { return e == v })
}

// CountFunc returns the number of elements in [first, last) satisfying fn.
func CountFunc[T any](first, last ConstIterator[T], fn func(e T) bool) int {
	var n int

	for ; first.Less(last); first = first.Next() {
		if fn(first.Value()) {
			n++
		}
	}

	return n
}

// Reverse reverses the order of the elements in [first, last).
func Reverse[T any](first, last Iterator[T]) {
	mustShareOwner(first.d, last.d)

	if !first.Less(last) {
		return
	}

	for i, j := first, last.Prev(); i.Less(j); i, j = i.Next(), j.Prev() {
		a, b := i.Value(), j.Value()
		i.Set(b)
		j.Set(a)
	}
}

// EqualRange returns whether [first1, last1) and [first2, first2 + (last1 - first1)) hold equal elements according to
// eq. The second range must be at least as long as the first.
func EqualRange[T any](first1, last1, first2 ConstIterator[T], eq func(a, b T) bool) bool {
	for ; first1.Less(last1); first1, first2 = first1.Next(), first2.Next() {
		if !eq(first1.Value(), first2.Value()) {
			return false
		}
	}

	return true
}

// LexicographicalCompare compares [first1, last1) with [first2, last2) element by element using cmp, returning a
// negative number, zero or a positive number like 'cmp.Compare'. When one range is a prefix of the other, the shorter
// one is less.
func LexicographicalCompare[T any](first1, last1, first2, last2 ConstIterator[T], cmp func(a, b T) int) int {
	for ; first1.Less(last1) && first2.Less(last2); first1, first2 = first1.Next(), first2.Next() {
		if c := cmp(first1.Value(), first2.Value()); c != 0 {
			return c
		}
	}

	switch {
	case first1.Less(last1):
		return 1
	case first2.Less(last2):
		return -1
	}

	return 0
}
