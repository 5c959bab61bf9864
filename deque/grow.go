package deque

// grow doubles the outer array, recentring the occupied rows in the middle of the new array so both ends get the same
// headroom. Only the block pointers are copied; the elements stay where they are, and the columns of both cursors are
// unaffected.
//
// NOTE: Only called when one cursor is about to move onto the other's row, at which point every row is in use.
func (d *Deque[T]) grow() {
	var (
		oldRows = len(d.rows)
		newRows = oldRows * growthFactor
		span    = d.span()
		begin   = newRows/2 - oldRows/2
		rows    = make([]*Block[T], newRows)
	)

	if debugChecks && d.beginRow == d.endRow {
		d.logger.Panicf("%s Growing with both cursors on row %d", d.opts.LogPrefix, d.beginRow)
	}

	// The occupied rows may wrap past the end of the old array, in which case they're copied in two parts.
	if d.beginRow <= d.endRow {
		copy(rows[begin:], d.rows[d.beginRow:d.endRow+1])
	} else {
		n := copy(rows[begin:], d.rows[d.beginRow:])
		copy(rows[begin+n:], d.rows[:d.endRow+1])
	}

	d.logger.Debugf("%s Growing outer array from %d to %d rows (%d elements)", d.opts.LogPrefix, oldRows, newRows,
		d.size)

	d.rows = rows
	d.beginRow = begin
	d.endRow = begin + span - 1
}
