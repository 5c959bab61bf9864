package deque

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange is matched (using 'errors.Is') by every 'OutOfRangeError'.
	ErrOutOfRange = errors.New("index out of range")

	// ErrNegativeSize is returned when asking for a deque with a negative number of elements.
	ErrNegativeSize = errors.New("size cannot be negative")

	// ErrForeignIterator is returned when a mutating method is given an iterator which belongs to another deque.
	ErrForeignIterator = errors.New("iterator belongs to a different deque")

	// ErrAllocationLimit is returned by a 'PoolAllocator' which has already handed out its maximum number of blocks.
	ErrAllocationLimit = errors.New("block allocation limit reached")
)

// OutOfRangeError is returned by the checked accessors when the index isn't within the deque. The deque is never
// modified when this error is returned.
type OutOfRangeError struct {
	Index  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for deque of length %d", e.Index, e.Length)
}

// Is allows matching against 'ErrOutOfRange'.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// IsOutOfRange returns a boolean indicating whether the given error is an 'OutOfRangeError'.
func IsOutOfRange(err error) bool {
	var outOfRange *OutOfRangeError
	return errors.As(err, &outOfRange)
}

// ValidationError aggregates every broken invariant found by 'Validate'.
//
// The zero value of ValidationError is ready for use.
type ValidationError struct {
	errs []error
}

// Add records another violation, <nil> errors are ignored.
func (v *ValidationError) Add(err error) {
	if err == nil {
		return
	}

	v.errs = append(v.errs, err)
}

func (v *ValidationError) Error() string {
	msgs := make([]string, 0, len(v.errs))

	for _, err := range v.errs {
		msgs = append(msgs, err.Error())
	}

	return "deque invariants violated: " + strings.Join(msgs, "; ")
}

// Errors returns every recorded violation.
//
// NOTE: Callers must not modify the returned slice.
func (v *ValidationError) Errors() []error {
	return v.errs
}

// ErrOrNil returns this ValidationError if at least one violation was recorded, or nil otherwise.
func (v *ValidationError) ErrOrNil() error {
	if len(v.errs) > 0 {
		return v
	}

	return nil
}
