package deque

import "fmt"

// Insert places v before the element pointed to by it (or at the end when it equals 'End') and returns an iterator
// pointing at the inserted element.
//
// Insert runs in time linear in the number of elements after the insertion point: the last element is pushed again to
// make room, then every element from the insertion point onwards is shifted right by one. Every iterator at or after
// the insertion point now refers to a different element.
func (d *Deque[T]) Insert(it Iterator[T], v T) (Iterator[T], error) {
	if it.d != d {
		return Iterator[T]{}, ErrForeignIterator
	}

	idx := it.index
	if idx < 0 || idx > d.size {
		return Iterator[T]{}, &OutOfRangeError{Index: idx, Length: d.size}
	}

	if d.size == 0 {
		if err := d.PushBack(v); err != nil {
			return Iterator[T]{}, fmt.Errorf("failed to insert element: %w", err)
		}

		return it, nil
	}

	if err := d.PushBack(d.Get(d.size - 1)); err != nil {
		return Iterator[T]{}, fmt.Errorf("failed to insert element: %w", err)
	}

	for i := d.size - 2; i > idx; i-- {
		d.Set(i, d.Get(i-1))
	}

	d.Set(idx, v)

	d.checkInvariants()

	return it, nil
}

// Erase removes the element pointed to by it and returns an iterator pointing at the element which followed it (or
// 'End' if it was the last one).
//
// Like 'Insert', Erase shifts every following element, left this time, and then pops the duplicated last slot.
func (d *Deque[T]) Erase(it Iterator[T]) (Iterator[T], error) {
	if it.d != d {
		return Iterator[T]{}, ErrForeignIterator
	}

	idx := it.index
	if idx < 0 || idx >= d.size {
		return Iterator[T]{}, &OutOfRangeError{Index: idx, Length: d.size}
	}

	for i := idx; i < d.size-1; i++ {
		d.Set(i, d.Get(i+1))
	}

	d.PopBack()

	return it, nil
}

// Resize pushes copies of v to, or pops from, the back of the deque until it holds exactly n elements.
//
// If growing fails part way through, the pushed copies are popped again and the deque holds its original elements.
func (d *Deque[T]) Resize(n int, v T) error {
	if n < 0 {
		return ErrNegativeSize
	}

	size := d.size

	for d.size < n {
		if err := d.PushBack(v); err != nil {
			d.truncate(size)
			return fmt.Errorf("failed to grow to %d elements: %w", n, err)
		}
	}

	d.truncate(n)

	return nil
}

// Clear removes every element. Allocated blocks are retained for reuse.
func (d *Deque[T]) Clear() {
	d.truncate(0)
}

// truncate pops from the back until the deque holds at most n elements.
func (d *Deque[T]) truncate(n int) {
	for d.size > max(n, 0) {
		d.PopBack()
	}
}
