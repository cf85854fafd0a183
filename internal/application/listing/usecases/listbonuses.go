package usecases

import (
	"context"

	"github.com/orris-inc/estatehub/internal/application/listing/dto"
	"github.com/orris-inc/estatehub/internal/domain/referral"
	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/logger"
	"github.com/orris-inc/estatehub/internal/shared/utils"
)

// ListRecruiterBonusesUseCase pages through the bonuses earned by a referrer.
type ListRecruiterBonusesUseCase struct {
	bonuses referral.BonusRecordRepository
	logger  logger.Interface
}

func NewListRecruiterBonusesUseCase(bonuses referral.BonusRecordRepository, logger logger.Interface) *ListRecruiterBonusesUseCase {
	return &ListRecruiterBonusesUseCase{bonuses: bonuses, logger: logger}
}

func (uc *ListRecruiterBonusesUseCase) Execute(ctx context.Context, referrerID uint, p utils.Pagination) (*utils.ListResponse, error) {
	records, total, err := uc.bonuses.ListByReferrer(ctx, referrerID, p.PageSize, p.Offset())
	if err != nil {
		uc.logger.Errorw("failed to list recruiter bonuses", "referrer_id", referrerID, "error", err)
		return nil, errors.NewInternalError("failed to list recruiter bonuses").Wrap(err)
	}
	return &utils.ListResponse{
		Items:      dto.ToBonusRecordResponses(records),
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: utils.TotalPages(total, p.PageSize),
	}, nil
}
