package deque

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Equal returns whether both deques hold the same number of elements and every pair of corresponding elements is
// equal. A nil deque is equal to an empty one.
//
// NOTE: This must not be a method, otherwise Deque would be constrained to comparable elements.
func Equal[T comparable](a, b *Deque[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// NotEqual is the negation of 'Equal'.
func NotEqual[T comparable](a, b *Deque[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is like 'Equal' but uses eq to compare elements. Sizes are compared first, so eq is only called for deques
// of equal length.
func (d *Deque[T]) EqualFunc(other *Deque[T], eq func(a, b T) bool) bool {
	if d.Len() != other.Len() {
		return false
	}

	return EqualRange(d.CBegin(), d.CEnd(), other.CBegin(), eq)
}

// Compare compares the elements of both deques lexicographically, returning -1, 0 or +1. When one deque is a prefix
// of the other, the shorter one is less.
func Compare[T constraints.Ordered](a, b *Deque[T]) int {
	return a.CompareFunc(b, cmp.Compare[T])
}

// CompareFunc is like 'Compare' but uses cmp to compare elements.
func (d *Deque[T]) CompareFunc(other *Deque[T], cmp func(a, b T) int) int {
	c := LexicographicalCompare(d.CBegin(), d.CEnd(), other.CBegin(), other.CEnd(), cmp)

	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}

	return 0
}

// Less returns whether a sorts before b, see 'Compare'.
func Less[T constraints.Ordered](a, b *Deque[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual returns whether a sorts before b or is equal to it.
func LessOrEqual[T constraints.Ordered](a, b *Deque[T]) bool {
	return Compare(a, b) <= 0
}

// Greater returns whether a sorts after b.
func Greater[T constraints.Ordered](a, b *Deque[T]) bool {
	return Compare(a, b) > 0
}

// GreaterOrEqual returns whether a sorts after b or is equal to it.
func GreaterOrEqual[T constraints.Ordered](a, b *Deque[T]) bool {
	return Compare(a, b) >= 0
}
