package deque

import (
	"errors"
	"fmt"
)

// Validate checks the internal consistency of the deque, returning a 'ValidationError' listing every broken
// invariant. It's a debugging aid; a deque only manipulated through its methods always validates.
func (d *Deque[T]) Validate() error {
	var errs ValidationError

	numRows := len(d.rows)
	if numRows == 0 {
		errs.Add(errors.New("outer array is not allocated"))
		return errs.ErrOrNil()
	}

	if d.size < 0 || d.size > numRows*BlockSize {
		errs.Add(fmt.Errorf("size %d outside of [0, %d]", d.size, numRows*BlockSize))
	}

	cursors := []struct {
		name     string
		row, col int
	}{
		{name: "begin", row: d.beginRow, col: d.beginCol},
		{name: "end", row: d.endRow, col: d.endCol},
	}

	cursorsOK := true

	for _, c := range cursors {
		if c.row < 0 || c.row >= numRows || c.col < 0 || c.col >= BlockSize {
			errs.Add(fmt.Errorf("%s cursor (%d, %d) outside of %d rows of %d", c.name, c.row, c.col, numRows, BlockSize))
			cursorsOK = false
		}
	}

	// The remaining checks are relative to the cursors, which must at least point inside the outer array.
	if !cursorsOK {
		return errs.ErrOrNil()
	}

	if row, col := d.slot(d.size); row != d.endRow || col != d.endCol {
		errs.Add(fmt.Errorf("size %d maps to (%d, %d) but the end cursor is (%d, %d)", d.size, row, col, d.endRow,
			d.endCol))
	}

	if same := d.beginRow == d.endRow && d.beginCol == d.endCol; same != (d.size == 0) {
		errs.Add(fmt.Errorf("cursors coincide is %t but size is %d", same, d.size))
	}

	for i, row := 0, d.beginRow; i < d.span(); i, row = i+1, mod(row+1, numRows) {
		if d.rows[row] == nil {
			errs.Add(fmt.Errorf("row %d is in use but not allocated", row))
		}
	}

	return errs.ErrOrNil()
}

// checkInvariants panics if the deque fails validation; it's compiled out unless built with the 'dequedebug' tag.
func (d *Deque[T]) checkInvariants() {
	if !debugChecks {
		return
	}

	if err := d.Validate(); err != nil {
		d.logger.Panicf("%s %v", d.opts.LogPrefix, err)
	}
}
