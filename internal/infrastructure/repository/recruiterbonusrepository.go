package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/estatehub/internal/domain/referral"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/models"
	"github.com/orris-inc/estatehub/internal/shared/db"
	apperrors "github.com/orris-inc/estatehub/internal/shared/errors"
)

type RecruiterBonusRepositoryImpl struct {
	db *gorm.DB
}

func NewRecruiterBonusRepository(db *gorm.DB) referral.BonusRecordRepository {
	return &RecruiterBonusRepositoryImpl{db: db}
}

func (r *RecruiterBonusRepositoryImpl) Create(ctx context.Context, record *referral.RecruiterBonusRecord) error {
	model := mappers.BonusRecordToModel(record)

	tx := db.GetTxFromContext(ctx, r.db)
	// SAVEPOINT keeps an outer transaction usable after a unique violation
	err := tx.Transaction(func(inner *gorm.DB) error {
		return inner.Create(model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateError(err) {
			return referral.ErrBonusAlreadyRecorded
		}
		return fmt.Errorf("failed to create recruiter bonus record: %w", err)
	}

	record.SetID(model.ID)
	return nil
}

func (r *RecruiterBonusRepositoryImpl) ListByListing(ctx context.Context, listingID uint) ([]*referral.RecruiterBonusRecord, error) {
	var modelList []*models.RecruiterBonusRecordModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("listing_id = ?", listingID).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list bonus records by listing: %w", err)
	}

	records := make([]*referral.RecruiterBonusRecord, 0, len(modelList))
	for _, m := range modelList {
		records = append(records, mappers.BonusRecordToEntity(m))
	}
	return records, nil
}

func (r *RecruiterBonusRepositoryImpl) ListByReferrer(ctx context.Context, referrerID uint, limit, offset int) ([]*referral.RecruiterBonusRecord, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.RecruiterBonusRecordModel{}).Where("referrer_id = ?", referrerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bonus records: %w", err)
	}

	var modelList []*models.RecruiterBonusRecordModel
	query = query.Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list bonus records by referrer: %w", err)
	}

	records := make([]*referral.RecruiterBonusRecord, 0, len(modelList))
	for _, m := range modelList {
		records = append(records, mappers.BonusRecordToEntity(m))
	}
	return records, total, nil
}
