package models

import (
	"time"
)

// SystemSettingModel stores one engine setting in canonical string form.
type SystemSettingModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Key         string    `gorm:"column:setting_key;type:varchar(100);not null;uniqueIndex:idx_system_settings_setting_key"`
	RawValue    string    `gorm:"column:value;type:text"`
	ValueType   string    `gorm:"column:value_type;type:varchar(20);not null"`
	Description string    `gorm:"column:description;type:varchar(500)"`
	UpdatedBy   uint      `gorm:"column:updated_by"`
	Version     int       `gorm:"column:version;default:1"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (SystemSettingModel) TableName() string {
	return "system_settings"
}
