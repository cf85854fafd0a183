package listing

import "context"

// DefaultNumberFloor is the first listing number ever issued.
const DefaultNumberFloor int64 = 240226

// NumberAllocator issues listing numbers. Every value returned is at least the floor
// and strictly greater than every value returned before it, across all callers.
// Overflow is reported as ErrAllocatorExhausted.
type NumberAllocator interface {
	Next(ctx context.Context) (int64, error)
}
