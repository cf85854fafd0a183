package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/estatehub/internal/domain/listing"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/models"
	"github.com/orris-inc/estatehub/internal/shared/db"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

type ListingRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ListingMapper
	logger logger.Interface
}

func NewListingRepository(db *gorm.DB, logger logger.Interface) listing.Repository {
	return &ListingRepositoryImpl{
		db:     db,
		mapper: mappers.NewListingMapper(),
		logger: logger,
	}
}

func (r *ListingRepositoryImpl) Create(ctx context.Context, l *listing.Listing) error {
	model := r.mapper.ToModel(l)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create listing", "listing_number", l.ListingNumber(), "error", err)
		return fmt.Errorf("failed to create listing: %w", err)
	}

	l.SetID(model.ID)
	return nil
}

func (r *ListingRepositoryImpl) GetByID(ctx context.Context, id uint) (*listing.Listing, error) {
	var model models.ListingModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, listing.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ListingRepositoryImpl) GetBySID(ctx context.Context, sid string) (*listing.Listing, error) {
	var model models.ListingModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, listing.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing by SID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ListingRepositoryImpl) UpdateStatus(ctx context.Context, l *listing.Listing, expectedVersion int) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ListingModel{}).
		Where("id = ? AND version = ?", l.ID(), expectedVersion).
		Updates(map[string]interface{}{
			"status":     l.Status().String(),
			"version":    l.Version(),
			"closed_at":  l.ClosedAt(),
			"updated_at": l.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update listing status", "id", l.ID(), "error", result.Error)
		return fmt.Errorf("failed to update listing status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return listing.ErrConcurrentModification
	}
	return nil
}

func (r *ListingRepositoryImpl) MarkBonusIssued(ctx context.Context, id uint) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ListingModel{}).
		Where("id = ? AND bonus_issued = ?", id, false).
		Update("bonus_issued", true)
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark bonus issued: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}
