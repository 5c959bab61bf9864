// Package deque provides a double ended queue backed by a circular array of lazily allocated, fixed-size blocks.
//
// Elements are addressed by logical index; both ends grow in amortized constant time and growing never moves an
// element, only the pointers to the blocks holding them.
package deque

import (
	"fmt"

	"github.com/couchbase/tools-common/containers/log"
)

const (
	// BlockSize is the number of elements held by each block.
	BlockSize = 10

	// InitialRows is the length of the outer array of a newly created deque.
	InitialRows = 10

	// growthFactor is the factor by which the outer array grows when the begin and end cursors collide.
	growthFactor = 2
)

// IterFunc is a function which will be executed for every element in the deque.
type IterFunc[T any] func(v T)

// Deque is a double-ended queue. It has efficient (i.e. amortized constant time) pop and push to both ends and constant
// time indexing.
//
// The deque owns an outer array of rows, each row either nil or pointing at a 'Block'. The cursors (beginRow,
// beginCol) and (endRow, endCol) delimit the occupied slots as a half-open range; the row holding the end cursor is
// always allocated so the next 'PushBack' can write immediately.
//
// NOTE: A Deque isn't safe for concurrent use.
type Deque[T any] struct {
	rows []*Block[T]

	beginRow, beginCol int
	endRow, endCol     int

	size int

	opts   Options[T]
	logger log.WrappedLogger
}

// NewDeque creates an empty deque which allocates its blocks from the heap.
func NewDeque[T any]() *Deque[T] {
	// The heap allocator never fails.
	d, _ := NewDequeWithOptions(Options[T]{})
	return d
}

// NewDequeWithOptions creates an empty deque using the given options. The outer array starts with 'InitialRows' rows and
// only the middle one allocated, with both cursors in the middle of that row so either end can grow before any
// further allocation is required.
func NewDequeWithOptions[T any](opts Options[T]) (*Deque[T], error) {
	opts.defaults()

	d := &Deque[T]{
		rows:   make([]*Block[T], InitialRows),
		opts:   opts,
		logger: log.NewWrappedLogger(opts.Logger),
	}

	block, err := d.allocate()
	if err != nil {
		return nil, err
	}

	d.beginRow, d.beginCol = InitialRows/2, BlockSize/2
	d.endRow, d.endCol = d.beginRow, d.beginCol
	d.rows[d.beginRow] = block

	d.checkInvariants()

	return d, nil
}

// NewFilled creates a deque holding n copies of v. At most one set of options may be given, when omitted the deque
// allocates its blocks from the heap.
func NewFilled[T any](n int, v T, opts ...Options[T]) (*Deque[T], error) {
	var options Options[T]
	if len(opts) > 0 {
		options = opts[0]
	}

	d, err := NewDequeWithOptions(options)
	if err != nil {
		return nil, err
	}

	if err := d.Resize(n, v); err != nil {
		d.Release()
		return nil, err
	}

	return d, nil
}

// NewFromSlice creates a deque holding a copy of every element in s, in order.
func NewFromSlice[T any](s []T) *Deque[T] {
	d := NewDeque[T]()

	for _, v := range s {
		_ = d.PushBack(v) // The heap allocator never fails
	}

	return d
}

// Clone returns a deep copy of the deque which shares its options (and therefore its allocator). Modifying either
// deque afterwards never affects the other.
func (d *Deque[T]) Clone() (*Deque[T], error) {
	clone, err := NewDequeWithOptions(d.opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create clone: %w", err)
	}

	for i := 0; i < d.size; i++ {
		if err := clone.PushBack(d.Get(i)); err != nil {
			clone.Release()
			return nil, fmt.Errorf("failed to copy element %d: %w", i, err)
		}
	}

	return clone, nil
}

// Assign replaces the contents of the deque with a copy of the contents of src, reusing the existing storage where
// possible.
//
// Elements missing from the deque are pushed first, so when an allocation fails they're popped again and the deque is
// left holding its original elements.
func (d *Deque[T]) Assign(src *Deque[T]) error {
	if d == src {
		return nil
	}

	size := d.size

	for i := size; i < src.Len(); i++ {
		if err := d.PushBack(src.Get(i)); err != nil {
			d.truncate(size)
			return fmt.Errorf("failed to copy element %d: %w", i, err)
		}
	}

	for i := 0; i < min(size, src.Len()); i++ {
		d.Set(i, src.Get(i))
	}

	d.truncate(src.Len())

	return nil
}

// Release destroys every element, hands every block back to the allocator and drops the outer array. The deque must
// not be used afterwards, other than calling 'Len' which reports zero.
func (d *Deque[T]) Release() {
	if d == nil || d.rows == nil {
		return
	}

	d.Clear()

	var freed int

	for i, block := range d.rows {
		if block == nil {
			continue
		}

		d.opts.Allocator.Free(block)
		d.rows[i] = nil
		freed++
	}

	d.logger.Tracef("%s Released %d block(s)", d.opts.LogPrefix, freed)

	d.rows = nil
	d.beginRow, d.beginCol, d.endRow, d.endCol = 0, 0, 0, 0
}

// Len returns the number of elements in the deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}

	return d.size
}

// Empty returns whether the deque holds no elements.
func (d *Deque[T]) Empty() bool {
	return d.Len() == 0
}

// Rows returns the current length of the outer array.
func (d *Deque[T]) Rows() int {
	return len(d.rows)
}

// AllocatedBlocks returns the number of rows which currently point at a block.
func (d *Deque[T]) AllocatedBlocks() int {
	var n int

	for _, block := range d.rows {
		if block != nil {
			n++
		}
	}

	return n
}

// Swap exchanges the contents of the two deques in constant time; no element is copied. Blocks travel together with
// the allocator which provided them.
func (d *Deque[T]) Swap(other *Deque[T]) {
	*d, *other = *other, *d

	d.checkInvariants()
	other.checkInvariants()
}

// Slice returns a newly allocated slice holding a copy of every element, front to back.
func (d *Deque[T]) Slice() []T {
	s := make([]T, 0, d.Len())

	for i := 0; i < d.Len(); i++ {
		s = append(s, d.Get(i))
	}

	return s
}

// String renders the elements in the same way 'fmt' renders a slice.
func (d *Deque[T]) String() string {
	return fmt.Sprint(d.Slice())
}

// allocate requests a block from the allocator, wrapping any failure.
func (d *Deque[T]) allocate() (*Block[T], error) {
	block, err := d.opts.Allocator.Allocate()
	if err != nil {
		d.logger.Warnf("%s Failed to allocate block: %v", d.opts.LogPrefix, err)
		return nil, fmt.Errorf("failed to allocate block: %w", err)
	}

	d.logger.Tracef("%s Allocated block", d.opts.LogPrefix)

	return block, nil
}
