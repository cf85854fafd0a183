package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orris-inc/estatehub/internal/domain/setting"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/models"
	"github.com/orris-inc/estatehub/internal/shared/db"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// SystemSettingRepository implements setting.Repository
type SystemSettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SystemSettingMapper
}

// NewSystemSettingRepository creates a new SystemSettingRepository
func NewSystemSettingRepository(db *gorm.DB, logger logger.Interface) setting.Repository {
	return &SystemSettingRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewSystemSettingMapper(),
	}
}

// GetByKey retrieves a setting by key
func (r *SystemSettingRepository) GetByKey(ctx context.Context, key string) (*setting.SystemSetting, error) {
	var model models.SystemSettingModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("setting_key = ?", key).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, setting.ErrSettingNotFound
		}
		r.logger.Errorw("failed to get setting by key", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get setting by key: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// GetAll retrieves all system settings
func (r *SystemSettingRepository) GetAll(ctx context.Context) ([]*setting.SystemSetting, error) {
	var modelList []*models.SystemSettingModel

	err := db.GetTxFromContext(ctx, r.db).
		Order("setting_key ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to get all settings", "error", err)
		return nil, fmt.Errorf("failed to get all settings: %w", err)
	}

	return r.mapper.ToEntities(modelList), nil
}

// Upsert creates or updates a setting
func (r *SystemSettingRepository) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	model := r.mapper.ToModel(s)

	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "value_type", "updated_by", "version", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert setting", "key", s.Key(), "error", err)
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	if s.ID() == 0 && model.ID != 0 {
		s.SetID(model.ID)
	}

	return nil
}

// CreateIfAbsent inserts the setting unless its key already exists
func (r *SystemSettingRepository) CreateIfAbsent(ctx context.Context, s *setting.SystemSetting) (bool, error) {
	model := r.mapper.ToModel(s)

	result := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "setting_key"}}, DoNothing: true}).
		Create(model)
	if result.Error != nil {
		r.logger.Errorw("failed to seed setting", "key", s.Key(), "error", result.Error)
		return false, fmt.Errorf("failed to seed setting: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	s.SetID(model.ID)
	return true, nil
}
