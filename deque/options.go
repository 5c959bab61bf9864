package deque

import "github.com/couchbase/tools-common/containers/log"

// Options encapsulates the available options which can be used when creating a deque.
type Options[T any] struct {
	// Allocator provides the blocks backing the deque, defaults to 'HeapAllocator'.
	Allocator Allocator[T]

	// Logger is the passed Logger struct that implements the Log method for logger the user wants to use. Nothing is
	// logged when omitted.
	Logger log.Logger

	// LogPrefix is the prefix used for every message logged by the deque. Defaults to '(deque)'.
	LogPrefix string
}

// defaults fills any missing attributes to a sane default.
func (o *Options[T]) defaults() {
	if o.Allocator == nil {
		o.Allocator = HeapAllocator[T]{}
	}

	if o.LogPrefix == "" {
		o.LogPrefix = "(deque)"
	}
}
