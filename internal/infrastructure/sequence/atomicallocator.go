package sequence

import (
	"context"
	"math"
	"sync/atomic"

	"github.com/orris-inc/estatehub/internal/domain/listing"
)

// AtomicAllocator is an in-process counter for single-node and test wiring.
type AtomicAllocator struct {
	last  atomic.Int64
	floor int64
}

var _ listing.NumberAllocator = (*AtomicAllocator)(nil)

// NewAtomicAllocator returns an allocator whose first value is max(floor, lastIssued+1).
func NewAtomicAllocator(floor, lastIssued int64) *AtomicAllocator {
	if floor < listing.DefaultNumberFloor {
		floor = listing.DefaultNumberFloor
	}
	a := &AtomicAllocator{floor: floor}
	a.last.Store(lastIssued)
	return a
}

func (a *AtomicAllocator) Next(ctx context.Context) (int64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		cur := a.last.Load()
		if cur == math.MaxInt64 {
			return 0, listing.ErrAllocatorExhausted
		}

		next := cur + 1
		if next < a.floor {
			next = a.floor
		}
		if a.last.CompareAndSwap(cur, next) {
			return next, nil
		}
	}
}
