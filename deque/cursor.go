package deque

// mod returns numerator % denominator but defined in the Python way.
//
// In Go modulo is defined for negative numbers such that the result is negative. As an example -5 % 3 is -2. For our
// purposes (moving cursors backwards past row zero) the definition where the result is always non-negative is more
// useful (i.e. -5 % 3 is 1).
func mod(numerator, denominator int) int {
	m := numerator % denominator
	if m < 0 {
		m += denominator
	}

	return m
}

// floorDiv is the division matching 'mod', rounding towards negative infinity.
func floorDiv(numerator, denominator int) int {
	return (numerator - mod(numerator, denominator)) / denominator
}

// slot maps the logical index i onto the row and column holding it. This is the only place the mapping is computed;
// indexing, iterators and invariant checks all go through it.
func (d *Deque[T]) slot(i int) (row, col int) {
	offset := d.beginCol + i
	return mod(d.beginRow+floorDiv(offset, BlockSize), len(d.rows)), mod(offset, BlockSize)
}

// span returns the number of rows from the begin cursor to the end cursor, both inclusive, walking circularly.
func (d *Deque[T]) span() int {
	return mod(d.endRow-d.beginRow, len(d.rows)) + 1
}
