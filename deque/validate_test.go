package deque

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		d        func() *Deque[int]
		expected int
	}{
		{
			name: "Valid",
			d:    func() *Deque[int] { return newState(10, 8, 7, 1, 2, 25) },
		},
		{
			name:     "SizeDisagreesWithEndCursor",
			d:        func() *Deque[int] { return newState(10, 8, 7, 1, 2, 24) },
			expected: 1,
		},
		{
			name: "RowInUseNotAllocated",
			d: func() *Deque[int] {
				d := newState(10, 8, 7, 1, 2, 25)
				d.rows[0] = nil

				return d
			},
			expected: 1,
		},
		{
			name:     "EmptyWithDistinctCursors",
			d:        func() *Deque[int] { return newState(10, 5, 5, 5, 6, 0) },
			expected: 2,
		},
		{
			name:     "SizeTooLarge",
			d:        func() *Deque[int] { return newState(10, 5, 5, 5, 5, 101) },
			expected: 3,
		},
		{
			name:     "NegativeSize",
			d:        func() *Deque[int] { return newState(10, 5, 5, 5, 5, -1) },
			expected: 3,
		},
		{
			name:     "CursorOutOfRange",
			d:        func() *Deque[int] { return newState(10, 5, 10, 10, 0, 0) },
			expected: 2,
		},
		{
			name:     "NoOuterArray",
			d:        func() *Deque[int] { return &Deque[int]{} },
			expected: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.d().Validate()

			if test.expected == 0 {
				require.NoError(t, err)
				return
			}

			var validationErr *ValidationError

			require.ErrorAs(t, err, &validationErr)
			require.Len(t, validationErr.Errors(), test.expected)
		})
	}
}

func TestValidationError(t *testing.T) {
	var errs ValidationError
	require.NoError(t, errs.ErrOrNil())

	errs.Add(nil)
	require.NoError(t, errs.ErrOrNil())

	errs.Add(errors.New("a"))
	errs.Add(errors.New("b"))

	require.EqualError(t, errs.ErrOrNil(), "deque invariants violated: a; b")
}
