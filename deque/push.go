package deque

// PushBack adds v to the end of the deque.
//
// If a block allocation is needed and fails, the error is returned and the deque is left exactly as it was.
func (d *Deque[T]) PushBack(v T) error {
	row, col := d.endRow, d.endCol+1

	if col == BlockSize {
		row, col = mod(row+1, len(d.rows)), 0

		var (
			collision = row == d.beginRow
			block     *Block[T]
		)

		// Allocate before touching anything so a failure leaves the deque untouched.
		if collision || d.rows[row] == nil {
			var err error

			block, err = d.allocate()
			if err != nil {
				return err
			}
		}

		if collision {
			d.grow()
			row = d.endRow + 1
		}

		if block != nil {
			d.rows[row] = block
		}
	}

	d.rows[d.endRow].Set(d.endCol, v)
	d.endRow, d.endCol = row, col
	d.size++

	d.checkInvariants()

	return nil
}

// PushFront adds v to the start of the deque.
//
// If a block allocation is needed and fails, the error is returned and the deque is left exactly as it was.
func (d *Deque[T]) PushFront(v T) error {
	row, col := d.beginRow, d.beginCol-1

	if col < 0 {
		row, col = mod(row-1, len(d.rows)), BlockSize-1

		var (
			collision = row == d.endRow
			block     *Block[T]
		)

		if collision || d.rows[row] == nil {
			var err error

			block, err = d.allocate()
			if err != nil {
				return err
			}
		}

		if collision {
			d.grow()
			row = d.beginRow - 1
		}

		if block != nil {
			d.rows[row] = block
		}
	}

	d.rows[row].Set(col, v)
	d.beginRow, d.beginCol = row, col
	d.size++

	d.checkInvariants()

	return nil
}

// PopBack removes the last element of the deque and returns it, returning the default value and false if it is empty.
// The vacated slot is zeroed; its block stays allocated for reuse.
func (d *Deque[T]) PopBack() (T, bool) {
	if d.Empty() {
		return *new(T), false
	}

	row, col := d.endRow, d.endCol-1
	if col < 0 {
		row, col = mod(row-1, len(d.rows)), BlockSize-1
	}

	v := d.rows[row].Get(col)
	d.rows[row].Clear(col)

	d.endRow, d.endCol = row, col
	d.size--

	d.checkInvariants()

	return v, true
}

// PopFront removes the first element of the deque and returns it, returning the default value and false if it is
// empty. The vacated slot is zeroed; its block stays allocated for reuse.
func (d *Deque[T]) PopFront() (T, bool) {
	if d.Empty() {
		return *new(T), false
	}

	v := d.rows[d.beginRow].Get(d.beginCol)
	d.rows[d.beginRow].Clear(d.beginCol)

	d.beginCol++
	if d.beginCol == BlockSize {
		d.beginRow, d.beginCol = mod(d.beginRow+1, len(d.rows)), 0
	}

	d.size--

	d.checkInvariants()

	return v, true
}
