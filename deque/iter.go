package deque

import "iter"

// All returns an iterator over index-value pairs, front to back. Modifying the deque during iteration is allowed, the
// sequence stops once the index passes the current length.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < d.Len(); i++ {
			if !yield(i, d.Get(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.Len(); i++ {
			if !yield(d.Get(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs, back to front.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.Len() - 1; i >= 0; i-- {
			if !yield(i, d.Get(i)) {
				return
			}
		}
	}
}

// Iter calls fn on each item in the deque, starting from the front.
func (d *Deque[T]) Iter(fn IterFunc[T]) {
	for i := 0; i < d.Len(); i++ {
		fn(d.Get(i))
	}
}
