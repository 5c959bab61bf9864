package deque

import "sync/atomic"

// Allocator hands out the blocks which back a deque, and takes them back once the deque is released.
type Allocator[T any] interface {
	// Allocate returns a zeroed block, or an error if one can't be provided. Deques never partially apply an
	// operation whose allocation failed.
	Allocate() (*Block[T], error)

	// Free returns a block which is no longer referenced by the deque.
	Free(block *Block[T])
}

// HeapAllocator allocates every block from the Go heap and leaves freeing to the garbage collector. It never fails.
type HeapAllocator[T any] struct{}

// Allocate implements the 'Allocator' interface.
func (HeapAllocator[T]) Allocate() (*Block[T], error) {
	return new(Block[T]), nil
}

// Free implements the 'Allocator' interface.
func (HeapAllocator[T]) Free(_ *Block[T]) {}

// PoolAllocator recycles freed blocks so deques which repeatedly grow and are released don't churn the heap. It may
// optionally cap the number of blocks which are handed out at any one time.
//
// PoolAllocator is safe for concurrent use, so one pool may be shared between deques owned by different goroutines
// (each deque must still only be used by one goroutine at a time).
//
// NOTE: Internally we use a buffered channel as the free list, both operations on it are non-blocking.
type PoolAllocator[T any] struct {
	free        chan *Block[T]
	maxBlocks   int
	outstanding atomic.Int64
}

// NewPoolAllocator creates a pool which retains at most 'size' free blocks. When 'maxBlocks' is greater than zero,
// 'Allocate' returns 'ErrAllocationLimit' once that many blocks are outstanding.
func NewPoolAllocator[T any](size, maxBlocks int) *PoolAllocator[T] {
	return &PoolAllocator[T]{free: make(chan *Block[T], max(0, size)), maxBlocks: maxBlocks}
}

// Allocate implements the 'Allocator' interface, reusing a pooled block when one is available.
func (p *PoolAllocator[T]) Allocate() (*Block[T], error) {
	if n := p.outstanding.Add(1); p.maxBlocks > 0 && n > int64(p.maxBlocks) {
		p.outstanding.Add(-1)
		return nil, ErrAllocationLimit
	}

	select {
	case block := <-p.free:
		return block, nil
	default:
		return new(Block[T]), nil
	}
}

// Free implements the 'Allocator' interface. The block is zeroed and kept for reuse unless the pool is already full.
func (p *PoolAllocator[T]) Free(block *Block[T]) {
	if block == nil {
		return
	}

	p.outstanding.Add(-1)
	block.Reset()

	select {
	case p.free <- block:
	default:
	}
}

// Outstanding returns the number of blocks which have been allocated and not yet freed.
func (p *PoolAllocator[T]) Outstanding() int {
	return int(p.outstanding.Load())
}

// Pooled returns the number of free blocks currently retained for reuse.
func (p *PoolAllocator[T]) Pooled() int {
	return len(p.free)
}

// Size returns the maximum number of free blocks the pool retains.
func (p *PoolAllocator[T]) Size() int {
	return cap(p.free)
}
