package usecases

import (
	"context"

	"github.com/orris-inc/estatehub/internal/application/listing/dto"
	"github.com/orris-inc/estatehub/internal/domain/listing"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

type GetListingUseCase struct {
	repo   listing.Repository
	logger logger.Interface
}

func NewGetListingUseCase(repo listing.Repository, logger logger.Interface) *GetListingUseCase {
	return &GetListingUseCase{repo: repo, logger: logger}
}

func (uc *GetListingUseCase) Execute(ctx context.Context, sid string) (*dto.ListingResponse, error) {
	l, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		return nil, translateListingError(err)
	}
	return dto.ToListingResponse(l), nil
}
