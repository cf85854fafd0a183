package dto

import (
	"time"

	"github.com/orris-inc/estatehub/internal/domain/notification"
)

type NotificationResponse struct {
	ID          uint           `json:"id"`
	SID         string         `json:"sid"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Message     string         `json:"message"`
	Link        string         `json:"link,omitempty"`
	RelatedType string         `json:"related_type,omitempty"`
	RelatedID   uint           `json:"related_id,omitempty"`
	Payload     map[string]any `json:"payload,omitempty"`
	IsRead      bool           `json:"is_read"`
	ReadAt      *time.Time     `json:"read_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllAsReadResponse struct {
	Updated int64 `json:"updated"`
}

func ToNotificationResponse(n *notification.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}
	return &NotificationResponse{
		ID:          n.ID(),
		SID:         n.SID(),
		Type:        n.Type().String(),
		Title:       n.Title(),
		Message:     n.Message(),
		Link:        n.Link(),
		RelatedType: n.RelatedType(),
		RelatedID:   n.RelatedID(),
		Payload:     n.Payload(),
		IsRead:      n.IsRead(),
		ReadAt:      n.ReadAt(),
		CreatedAt:   n.CreatedAt(),
	}
}

func ToNotificationResponses(list []*notification.Notification) []*NotificationResponse {
	out := make([]*NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, ToNotificationResponse(n))
	}
	return out
}
