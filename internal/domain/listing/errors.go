package listing

import "errors"

var (
	ErrListingNotFound         = errors.New("listing not found")
	ErrInvalidStatusTransition = errors.New("invalid listing status transition")
	ErrConcurrentModification  = errors.New("listing was modified concurrently")

	// ErrAllocatorExhausted means the listing number sequence reached the integer
	// limit. It is permanent, retrying cannot succeed.
	ErrAllocatorExhausted = errors.New("listing number allocator exhausted")
)
