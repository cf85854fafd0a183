package inquiry

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, i *Inquiry) error
	GetByID(ctx context.Context, id uint) (*Inquiry, error)
	GetBySID(ctx context.Context, sid string) (*Inquiry, error)

	// SetFirstResponse writes at only while first_agent_response_at is null and
	// reports whether it did.
	SetFirstResponse(ctx context.Context, id uint, at time.Time) (bool, error)

	Archive(ctx context.Context, id uint, at time.Time) error

	// AdvanceNotifiedState moves last_notified_state from -> to atomically and
	// reports whether this caller won.
	AdvanceNotifiedState(ctx context.Context, id uint, from, to NotifiedState) (bool, error)

	// ListOpen pages through unanswered, unarchived inquiries not yet notified as
	// stale, ordered by id, starting after afterID.
	ListOpen(ctx context.Context, afterID uint, limit int) ([]*Inquiry, error)

	// ListActive returns unarchived inquiries, optionally for one agent (0 for all).
	ListActive(ctx context.Context, agentID uint) ([]*Inquiry, error)
}
