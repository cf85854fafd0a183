package models

import (
	"time"
)

// AccountModel maps the columns of the accounts table the engine reads.
type AccountModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	Role         string `gorm:"size:20;not null;index"`
	Status       string `gorm:"size:20;not null;default:active"`
	ReferredByID *uint  `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AccountModel) TableName() string {
	return "accounts"
}
