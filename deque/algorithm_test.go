package deque

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlgorithms(t *testing.T) {
	x, err := NewFilled(10, 2)
	require.NoError(t, err)

	y, err := NewFilled(10, 2)
	require.NoError(t, err)

	require.Equal(t, 0, Count(y.CBegin(), y.CEnd(), 3))

	Copy(y.CBegin(), y.CEnd(), x.Begin())
	Fill(x.Begin(), x.End(), 2)
	Reverse(x.Begin(), x.End())

	require.True(t, Equal(x, y))
}

func TestCopy(t *testing.T) {
	var (
		src = NewFromSlice(sequence(25))
		dst = NewFromSlice(make([]int, 30))
	)

	end := Copy(src.CBegin().Add(5), src.CEnd(), dst.Begin().Add(2))
	require.Equal(t, 22, end.Index())

	expected := make([]int, 30)
	copy(expected[2:], sequence(25)[5:])

	require.Equal(t, expected, dst.Slice())
}

func TestCopyOverlappingForwards(t *testing.T) {
	d := NewFromSlice(sequence(6))

	Copy(d.CBegin().Add(2), d.CEnd(), d.Begin())
	require.Equal(t, []int{2, 3, 4, 5, 4, 5}, d.Slice())
}

func TestCopyMismatchedRange(t *testing.T) {
	var (
		x = NewFromSlice(sequence(3))
		y = NewFromSlice(sequence(3))
	)

	require.Panics(t, func() { Copy(x.CBegin(), y.CEnd(), x.Begin()) })
	require.Panics(t, func() { Reverse(x.Begin(), y.End()) })
}

func TestFill(t *testing.T) {
	d := NewFromSlice(sequence(20))

	Fill(d.Begin().Add(5), d.End().Sub(5), -1)

	require.Equal(t, 10, Count(d.CBegin(), d.CEnd(), -1))
	require.Equal(t, 4, d.Get(4))
	require.Equal(t, -1, d.Get(5))
	require.Equal(t, -1, d.Get(14))
	require.Equal(t, 15, d.Get(15))
}

func TestCountFunc(t *testing.T) {
	d := NewFromSlice(sequence(100))
	require.Equal(t, 50, CountFunc(d.CBegin(), d.CEnd(), func(e int) bool { return e%2 == 0 }))
	require.Equal(t, 0, CountFunc(d.CEnd(), d.CEnd(), func(_ int) bool { return true }))
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected []int
	}{
		{name: "Empty"},
		{name: "One", n: 1, expected: []int{0}},
		{name: "Even", n: 4, expected: []int{3, 2, 1, 0}},
		{name: "Odd", n: 5, expected: []int{4, 3, 2, 1, 0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := NewFromSlice(sequence(test.n))
			Reverse(d.Begin(), d.End())

			if test.n == 0 {
				require.True(t, d.Empty())
				return
			}

			require.Equal(t, test.expected, d.Slice())
		})
	}
}

func TestReverseAcrossBlocks(t *testing.T) {
	d := NewDeque[int]()

	for i := 0; i < 250; i++ {
		require.NoError(t, d.PushFront(249-i))
	}

	Reverse(d.Begin(), d.End())

	for i := 0; i < 250; i++ {
		require.Equal(t, 249-i, d.Get(i))
	}
}

func TestLexicographicalCompare(t *testing.T) {
	cmp := func(a, b int) int { return a - b }

	tests := []struct {
		name     string
		a, b     []int
		expected int
	}{
		{name: "BothEmpty"},
		{name: "EmptyFirst", b: []int{1}, expected: -1},
		{name: "EmptySecond", a: []int{1}, expected: 1},
		{name: "Equal", a: []int{1, 2, 3}, b: []int{1, 2, 3}},
		{name: "Prefix", a: []int{1, 2}, b: []int{1, 2, 3}, expected: -1},
		{name: "FirstDifferenceWins", a: []int{1, 5}, b: []int{1, 2, 3}, expected: 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var (
				a = NewFromSlice(test.a)
				b = NewFromSlice(test.b)
			)

			require.Equal(t, test.expected, LexicographicalCompare(a.CBegin(), a.CEnd(), b.CBegin(), b.CEnd(), cmp))
		})
	}
}
