package notification

import (
	"context"
	"errors"
)

// ErrNotificationNotFound is returned when the id does not exist or is owned by another user
var ErrNotificationNotFound = errors.New("notification not found")

type ListFilter struct {
	UserID     uint
	UnreadOnly bool
	Limit      int
	Offset     int
}

type NotificationRepository interface {
	// Create inserts n. Writing the same (event, recipient) pair twice succeeds without
	// a second row.
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	List(ctx context.Context, filter ListFilter) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	// MarkAsRead returns ErrNotificationNotFound unless id belongs to userID
	MarkAsRead(ctx context.Context, id, userID uint) error
	MarkAllAsRead(ctx context.Context, userID uint) (int64, error)
	CountByRelated(ctx context.Context, notificationType string, relatedType string, relatedID uint) (int64, error)
}
