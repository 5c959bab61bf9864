package deque

import (
	"github.com/stretchr/testify/mock"

	"github.com/couchbase/tools-common/containers/log"
)

type mockAllocator struct {
	mock.Mock
}

func (m *mockAllocator) Allocate() (*Block[int], error) {
	args := m.Called()

	if fn, ok := args.Get(0).(func() *Block[int]); ok {
		return fn(), args.Error(1)
	}

	block, _ := args.Get(0).(*Block[int])

	return block, args.Error(1)
}

func (m *mockAllocator) Free(block *Block[int]) {
	m.Called(block)
}

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Log(level log.Level, format string, args ...any) {
	m.Called(level, format, args)
}
