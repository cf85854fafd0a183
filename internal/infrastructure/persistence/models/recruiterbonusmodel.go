package models

import (
	"time"
)

// RecruiterBonusRecordModel is unique on (listing_id, referrer_id).
type RecruiterBonusRecordModel struct {
	ID               uint      `gorm:"primaryKey"`
	SID              string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	ListingID        uint      `gorm:"not null;uniqueIndex:idx_bonus_listing_referrer,priority:1"`
	ReferrerID       uint      `gorm:"not null;uniqueIndex:idx_bonus_listing_referrer,priority:2;index"`
	ReferredID       uint      `gorm:"not null"`
	Amount           float64   `gorm:"type:decimal(12,2);not null"`
	QualifyingStatus string    `gorm:"size:20;not null"`
	CreatedAt        time.Time `gorm:"not null"`
}

func (RecruiterBonusRecordModel) TableName() string {
	return "recruiter_bonus_records"
}
