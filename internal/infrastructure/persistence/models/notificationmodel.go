package models

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationModel struct {
	ID          uint           `gorm:"primaryKey"`
	SID         string         `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	UserID      uint           `gorm:"not null;index:idx_user_read;uniqueIndex:idx_notification_event_user,priority:2"`
	EventID     string         `gorm:"size:36;not null;uniqueIndex:idx_notification_event_user,priority:1"`
	Type        string         `gorm:"size:50;not null"`
	Title       string         `gorm:"size:255;not null"`
	Message     string         `gorm:"type:text;not null"`
	Link        string         `gorm:"size:500"`
	RelatedType string         `gorm:"size:50;index:idx_related"`
	RelatedID   uint           `gorm:"index:idx_related"`
	Payload     datatypes.JSON `gorm:"type:json"`
	IsRead      bool           `gorm:"not null;default:false;index:idx_user_read"`
	ReadAt      *time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (NotificationModel) TableName() string {
	return "notifications"
}
