package deque

import "fmt"

// Iterator points at an element of a deque by logical index. Every dereference goes through the owning deque, so an
// iterator stays valid while the deque grows; it's invalidated by anything that renumbers elements, i.e. 'Insert',
// 'Erase', 'PushFront', 'PopFront' and 'Clear'.
//
// Iterators are values: arithmetic returns a new iterator rather than modifying the receiver.
type Iterator[T any] struct {
	d     *Deque[T]
	index int
}

// Begin returns an iterator pointing at the first element.
func (d *Deque[T]) Begin() Iterator[T] {
	return Iterator[T]{d: d}
}

// End returns an iterator pointing one past the last element.
func (d *Deque[T]) End() Iterator[T] {
	return Iterator[T]{d: d, index: d.Len()}
}

// Index returns the logical index the iterator points at.
func (it Iterator[T]) Index() int {
	return it.index
}

// Value returns the element the iterator points at.
func (it Iterator[T]) Value() T {
	return it.d.Get(it.index)
}

// Set overwrites the element the iterator points at.
func (it Iterator[T]) Set(v T) {
	it.d.Set(it.index, v)
}

// Ptr returns the address of the element the iterator points at.
func (it Iterator[T]) Ptr() *T {
	return it.d.Ptr(it.index)
}

// Next returns an iterator pointing at the following element.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

// Prev returns an iterator pointing at the preceding element.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Add(-1)
}

// Add returns an iterator moved n elements forwards (or backwards when n is negative).
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.index += n
	checkIteratorIndex(it.d, it.index)

	return it
}

// Sub returns an iterator moved n elements backwards.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	return it.Add(-n)
}

// Distance returns the number of steps from it to other, which is negative when other comes first.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return other.index - it.index
}

// Equal returns whether both iterators belong to the same deque and point at the same index.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.d == other.d && it.index == other.index
}

// Less returns whether it points before other; both must belong to the same deque.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	mustShareOwner(it.d, other.d)
	return it.index < other.index
}

// Const returns a read-only iterator pointing at the same element.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{d: it.d, index: it.index}
}

func (it Iterator[T]) String() string {
	return fmt.Sprintf("Iterator(%d)", it.index)
}

// ConstIterator is the read-only counterpart of 'Iterator', with the same invalidation rules.
type ConstIterator[T any] struct {
	d     *Deque[T]
	index int
}

// CBegin returns a read-only iterator pointing at the first element.
func (d *Deque[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{d: d}
}

// CEnd returns a read-only iterator pointing one past the last element.
func (d *Deque[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{d: d, index: d.Len()}
}

// Index returns the logical index the iterator points at.
func (it ConstIterator[T]) Index() int {
	return it.index
}

// Value returns the element the iterator points at.
func (it ConstIterator[T]) Value() T {
	return it.d.Get(it.index)
}

// Next returns an iterator pointing at the following element.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return it.Add(1)
}

// Prev returns an iterator pointing at the preceding element.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	return it.Add(-1)
}

// Add returns an iterator moved n elements forwards (or backwards when n is negative).
func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	it.index += n
	checkIteratorIndex(it.d, it.index)

	return it
}

// Sub returns an iterator moved n elements backwards.
func (it ConstIterator[T]) Sub(n int) ConstIterator[T] {
	return it.Add(-n)
}

// Distance returns the number of steps from it to other, which is negative when other comes first.
func (it ConstIterator[T]) Distance(other ConstIterator[T]) int {
	return other.index - it.index
}

// Equal returns whether both iterators belong to the same deque and point at the same index.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.d == other.d && it.index == other.index
}

// Less returns whether it points before other; both must belong to the same deque.
func (it ConstIterator[T]) Less(other ConstIterator[T]) bool {
	mustShareOwner(it.d, other.d)
	return it.index < other.index
}

func (it ConstIterator[T]) String() string {
	return fmt.Sprintf("ConstIterator(%d)", it.index)
}

// mustShareOwner panics when two iterators being compared or used as a range belong to different deques, mirroring
// the panic raised by slicing with invalid bounds.
func mustShareOwner[T any](a, b *Deque[T]) {
	if a != b {
		panic("deque: iterators belong to different deques")
	}
}

// checkIteratorIndex panics when an iterator has been moved before the first element; it's compiled out unless built
// with the 'dequedebug' tag.
func checkIteratorIndex[T any](d *Deque[T], index int) {
	if debugChecks && index < 0 {
		d.logger.Panicf("%s Iterator moved to negative index %d", d.opts.LogPrefix, index)
	}
}
