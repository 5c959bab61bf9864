package deque

// Block is a fixed-capacity storage unit holding up to 'BlockSize' elements. Each row of a deque's outer array either
// points at a Block or is nil, meaning the row has not been allocated yet.
//
// NOTE: Blocks are never moved or copied by the deque once allocated; growth only copies pointers to them.
type Block[T any] struct {
	items [BlockSize]T
}

// Get returns a copy of the element at the given sub-index.
func (b *Block[T]) Get(i int) T {
	return b.items[i]
}

// Set stores v at the given sub-index.
func (b *Block[T]) Set(i int, v T) {
	b.items[i] = v
}

// Ptr returns the address of the slot at the given sub-index.
func (b *Block[T]) Ptr(i int) *T {
	return &b.items[i]
}

// Clear zeroes the slot at the given sub-index so the garbage collector can reclaim anything it referenced.
func (b *Block[T]) Clear(i int) {
	var zero T
	b.items[i] = zero
}

// Reset zeroes every slot in the block.
func (b *Block[T]) Reset() {
	b.items = [BlockSize]T{}
}

// Cap returns the number of slots in the block.
func (b *Block[T]) Cap() int {
	return BlockSize
}
