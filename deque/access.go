package deque

// Get returns the element at logical index i.
//
// NOTE: Get doesn't check its argument; the caller must guarantee 0 <= i < Len(). Use 'At' for a checked lookup.
func (d *Deque[T]) Get(i int) T {
	row, col := d.slot(i)
	return d.rows[row].Get(col)
}

// Set overwrites the element at logical index i without checking it's in range, see 'Get'.
func (d *Deque[T]) Set(i int, v T) {
	row, col := d.slot(i)
	d.rows[row].Set(col, v)
}

// Ptr returns the address of the element at logical index i without checking it's in range, see 'Get'.
//
// The pointer remains valid while the element stays in the deque at the same position; growing either end never
// moves it.
func (d *Deque[T]) Ptr(i int) *T {
	row, col := d.slot(i)
	return d.rows[row].Ptr(col)
}

// At returns the element at logical index i, or an 'OutOfRangeError' if there is no such element.
func (d *Deque[T]) At(i int) (T, error) {
	if err := d.checkIndex(i); err != nil {
		return *new(T), err
	}

	return d.Get(i), nil
}

// SetAt overwrites the element at logical index i, or returns an 'OutOfRangeError' if there is no such element.
func (d *Deque[T]) SetAt(i int, v T) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}

	d.Set(i, v)

	return nil
}

// PtrAt returns the address of the element at logical index i, or an 'OutOfRangeError' if there is no such element.
func (d *Deque[T]) PtrAt(i int) (*T, error) {
	if err := d.checkIndex(i); err != nil {
		return nil, err
	}

	return d.Ptr(i), nil
}

// Front returns the first element, returning the default value and false if the deque is empty.
func (d *Deque[T]) Front() (T, bool) {
	if d.Empty() {
		return *new(T), false
	}

	return d.Get(0), true
}

// Back returns the last element, returning the default value and false if the deque is empty.
func (d *Deque[T]) Back() (T, bool) {
	if d.Empty() {
		return *new(T), false
	}

	return d.Get(d.size - 1), true
}

func (d *Deque[T]) checkIndex(i int) error {
	if i < 0 || i >= d.Len() {
		return &OutOfRangeError{Index: i, Length: d.Len()}
	}

	return nil
}
