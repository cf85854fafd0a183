package models

import (
	"time"
)

type InquiryModel struct {
	ID                   uint   `gorm:"primaryKey"`
	SID                  string `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	ListingID            uint   `gorm:"not null;index"`
	ListingNumber        int64  `gorm:"not null"`
	AssignedAgentID      uint   `gorm:"not null;index:idx_inquiry_agent_open"`
	BuyerName            string `gorm:"size:100;not null"`
	BuyerEmail           string `gorm:"size:255;not null"`
	Message              string `gorm:"type:text"`
	FirstAgentResponseAt *time.Time
	LastNotifiedState    string     `gorm:"size:20;not null;default:none"`
	ArchivedAt           *time.Time `gorm:"index:idx_inquiry_agent_open"`
	CreatedAt            time.Time  `gorm:"index"`
	UpdatedAt            time.Time
}

func (InquiryModel) TableName() string {
	return "inquiries"
}
