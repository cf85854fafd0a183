package listing

import "context"

type Repository interface {
	Create(ctx context.Context, l *Listing) error
	GetByID(ctx context.Context, id uint) (*Listing, error)
	GetBySID(ctx context.Context, sid string) (*Listing, error)

	// UpdateStatus persists l's status when the stored version equals expectedVersion.
	// It returns ErrConcurrentModification when another writer got there first.
	UpdateStatus(ctx context.Context, l *Listing, expectedVersion int) error

	// MarkBonusIssued sets bonus_issued only if it is still false and reports whether
	// this call flipped it.
	MarkBonusIssued(ctx context.Context, id uint) (bool, error)
}
