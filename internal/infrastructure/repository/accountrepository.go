package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/estatehub/internal/domain/user"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/models"
	"github.com/orris-inc/estatehub/internal/shared/db"
)

type AccountRepositoryImpl struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) user.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

func (r *AccountRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.Account, error) {
	var model models.AccountModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return mappers.AccountToEntity(&model), nil
}

func (r *AccountRepositoryImpl) ListActiveIDsByRole(ctx context.Context, role user.Role) ([]uint, error) {
	var ids []uint
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AccountModel{}).
		Where("role = ? AND status = ?", string(role), string(user.StatusActive)).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts by role: %w", err)
	}
	return ids, nil
}
