package models

import (
	"time"

	"gorm.io/gorm"
)

// ListingModel is the GORM model for listings. Commission percentages are stored
// as DECIMAL(5,2).
type ListingModel struct {
	ID                    uint    `gorm:"primaryKey"`
	SID                   string  `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	ListingNumber         int64   `gorm:"not null;uniqueIndex"`
	Title                 string  `gorm:"size:200;not null"`
	Price                 float64 `gorm:"type:decimal(14,2);not null"`
	ListingType           string  `gorm:"size:10;not null"`
	Status                string  `gorm:"size:20;not null;default:pending;index"`
	CreatorID             uint    `gorm:"not null;index"`
	AgentID               uint    `gorm:"not null;index"`
	PromoterID            *uint   `gorm:"index"`
	AgentCommissionPct    float64 `gorm:"type:decimal(5,2);not null"`
	PromoterCommissionPct float64 `gorm:"type:decimal(5,2);not null;default:0"`
	CompanyCommissionPct  float64 `gorm:"type:decimal(5,2);not null"`
	BonusIssued           bool    `gorm:"not null;default:false"`
	Version               int     `gorm:"not null;default:1"`
	ClosedAt              *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (ListingModel) TableName() string {
	return "listings"
}

func (m *ListingModel) BeforeCreate(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = "pending"
	}
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}

// ListingSequenceModel holds one row per named counter.
type ListingSequenceModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:50;not null;uniqueIndex"`
	LastValue int64  `gorm:"not null"`
	UpdatedAt time.Time
}

func (ListingSequenceModel) TableName() string {
	return "listing_sequences"
}
