//go:build dequedebug

package deque

// debugChecks enables internal consistency checks after every mutation.
const debugChecks = true
