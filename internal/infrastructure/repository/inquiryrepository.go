package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/models"
	"github.com/orris-inc/estatehub/internal/shared/db"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

type InquiryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.InquiryMapper
	logger logger.Interface
}

func NewInquiryRepository(db *gorm.DB, logger logger.Interface) inquiry.Repository {
	return &InquiryRepositoryImpl{
		db:     db,
		mapper: mappers.NewInquiryMapper(),
		logger: logger,
	}
}

func (r *InquiryRepositoryImpl) Create(ctx context.Context, i *inquiry.Inquiry) error {
	model := r.mapper.ToModel(i)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create inquiry", "listing_id", i.ListingID(), "error", err)
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	i.SetID(model.ID)
	return nil
}

func (r *InquiryRepositoryImpl) GetByID(ctx context.Context, id uint) (*inquiry.Inquiry, error) {
	var model models.InquiryModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inquiry.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry by ID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *InquiryRepositoryImpl) GetBySID(ctx context.Context, sid string) (*inquiry.Inquiry, error) {
	var model models.InquiryModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inquiry.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry by SID: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *InquiryRepositoryImpl) SetFirstResponse(ctx context.Context, id uint, at time.Time) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.InquiryModel{}).
		Where("id = ? AND first_agent_response_at IS NULL AND archived_at IS NULL", id).
		Updates(map[string]interface{}{
			"first_agent_response_at": at.UTC(),
			"updated_at":              at.UTC(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to record first response: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *InquiryRepositoryImpl) Archive(ctx context.Context, id uint, at time.Time) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.InquiryModel{}).
		Where("id = ? AND archived_at IS NULL", id).
		Updates(map[string]interface{}{
			"archived_at": at.UTC(),
			"updated_at":  at.UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to archive inquiry: %w", result.Error)
	}
	return nil
}

func (r *InquiryRepositoryImpl) AdvanceNotifiedState(ctx context.Context, id uint, from, to inquiry.NotifiedState) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.InquiryModel{}).
		Where("id = ? AND last_notified_state = ?", id, string(from)).
		Update("last_notified_state", string(to))
	if result.Error != nil {
		return false, fmt.Errorf("failed to advance notified state: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *InquiryRepositoryImpl) ListOpen(ctx context.Context, afterID uint, limit int) ([]*inquiry.Inquiry, error) {
	var modelList []*models.InquiryModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("id > ? AND first_agent_response_at IS NULL AND archived_at IS NULL AND last_notified_state <> ?",
			afterID, string(inquiry.NotifiedStale)).
		Order("id ASC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list open inquiries: %w", err)
	}
	return r.mapper.ToEntities(modelList), nil
}

func (r *InquiryRepositoryImpl) ListActive(ctx context.Context, agentID uint) ([]*inquiry.Inquiry, error) {
	query := db.GetTxFromContext(ctx, r.db).Where("archived_at IS NULL")
	if agentID != 0 {
		query = query.Where("assigned_agent_id = ?", agentID)
	}

	var modelList []*models.InquiryModel
	if err := query.Order("id ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list active inquiries: %w", err)
	}
	return r.mapper.ToEntities(modelList), nil
}
