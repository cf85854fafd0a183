package notification

import (
	"fmt"
	"sync"
	"time"

	vo "github.com/orris-inc/estatehub/internal/domain/notification/valueobjects"
	"github.com/orris-inc/estatehub/internal/shared/biztime"
	"github.com/orris-inc/estatehub/internal/shared/id"
)

const (
	maxTitleLength   = 200
	maxMessageLength = 2000
)

// Notification is an in-app message owned by its recipient. After creation only
// the read flag changes.
type Notification struct {
	id               uint
	sid              string
	userID           uint
	notificationType vo.NotificationType
	title            string
	message          string
	link             string
	relatedType      string
	relatedID        uint
	eventID          string
	payload          map[string]any
	isRead           bool
	readAt           *time.Time
	createdAt        time.Time
	updatedAt        time.Time
	mu               sync.RWMutex
}

// Content is the rendered part of a notification.
type Content struct {
	Title       string
	Message     string
	Link        string
	RelatedType string
	RelatedID   uint
	Payload     map[string]any
}

// NewNotification creates an unread notification for userID. eventID identifies the
// domain event that produced it; a recipient receives at most one record per event.
func NewNotification(userID uint, notificationType vo.NotificationType, eventID string, content Content) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notificationType)
	}
	if eventID == "" {
		return nil, fmt.Errorf("event ID is required")
	}
	if len(content.Title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(content.Title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(content.Message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(content.Message) > maxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}

	sid, err := id.NewNotificationID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate notification ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Notification{
		sid:              sid,
		userID:           userID,
		notificationType: notificationType,
		title:            content.Title,
		message:          content.Message,
		link:             content.Link,
		relatedType:      content.RelatedType,
		relatedID:        content.RelatedID,
		eventID:          eventID,
		payload:          content.Payload,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructNotification rebuilds a notification from persistence.
func ReconstructNotification(
	id uint,
	sid string,
	userID uint,
	notificationType vo.NotificationType,
	eventID string,
	content Content,
	isRead bool,
	readAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notificationType)
	}

	return &Notification{
		id:               id,
		sid:              sid,
		userID:           userID,
		notificationType: notificationType,
		title:            content.Title,
		message:          content.Message,
		link:             content.Link,
		relatedType:      content.RelatedType,
		relatedID:        content.RelatedID,
		eventID:          eventID,
		payload:          content.Payload,
		isRead:           isRead,
		readAt:           readAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (n *Notification) ID() uint {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.id
}

func (n *Notification) SID() string                   { return n.sid }
func (n *Notification) UserID() uint                  { return n.userID }
func (n *Notification) Type() vo.NotificationType     { return n.notificationType }
func (n *Notification) Title() string                 { return n.title }
func (n *Notification) Message() string               { return n.message }
func (n *Notification) Link() string                  { return n.link }
func (n *Notification) RelatedType() string           { return n.relatedType }
func (n *Notification) RelatedID() uint               { return n.relatedID }
func (n *Notification) EventID() string               { return n.eventID }
func (n *Notification) Payload() map[string]any       { return n.payload }
func (n *Notification) CreatedAt() time.Time          { return n.createdAt }

func (n *Notification) IsRead() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.isRead
}

func (n *Notification) ReadAt() *time.Time {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.readAt
}

func (n *Notification) UpdatedAt() time.Time {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.updatedAt
}

func (n *Notification) SetID(id uint) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkAsRead is idempotent.
func (n *Notification) MarkAsRead() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.isRead {
		return
	}

	now := biztime.NowUTC()
	n.isRead = true
	n.readAt = &now
	n.updatedAt = now
}
