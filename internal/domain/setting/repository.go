package setting

import (
	"context"
)

// Repository defines the interface for system setting persistence
type Repository interface {
	// GetByKey returns ErrSettingNotFound when no row exists
	GetByKey(ctx context.Context, key string) (*SystemSetting, error)

	GetAll(ctx context.Context) ([]*SystemSetting, error)

	// Upsert creates the row or overwrites value, updated_by and version
	Upsert(ctx context.Context, setting *SystemSetting) error

	// CreateIfAbsent inserts the row unless the key exists and reports whether it inserted
	CreateIfAbsent(ctx context.Context, setting *SystemSetting) (bool, error)
}
