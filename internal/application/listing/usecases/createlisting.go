package usecases

import (
	"context"
	stderrors "errors"

	"github.com/orris-inc/estatehub/internal/application/listing/dto"
	"github.com/orris-inc/estatehub/internal/domain/listing"
	"github.com/orris-inc/estatehub/internal/infrastructure/metrics"
	"github.com/orris-inc/estatehub/internal/shared/db"
	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

type CreateListingCommand struct {
	Title       string
	Price       float64
	ListingType string
	CreatorID   uint
	AgentID     uint
	PromoterID  *uint
	AgentPct    float64
	PromoterPct float64
	CompanyPct  float64
}

// CreateListingUseCase validates the commission split, allocates a listing number
// and stores the listing in one transaction. An invalid split is rejected before
// a number is drawn.
type CreateListingUseCase struct {
	repo      listing.Repository
	allocator listing.NumberAllocator
	tx        db.Runner
	logger    logger.Interface
}

func NewCreateListingUseCase(
	repo listing.Repository,
	allocator listing.NumberAllocator,
	tx db.Runner,
	logger logger.Interface,
) *CreateListingUseCase {
	return &CreateListingUseCase{
		repo:      repo,
		allocator: allocator,
		tx:        tx,
		logger:    logger,
	}
}

func (uc *CreateListingUseCase) Execute(ctx context.Context, cmd CreateListingCommand) (*dto.ListingResponse, error) {
	if cmd.CreatorID == 0 {
		return nil, errors.NewValidationError("creator is required")
	}
	listingType := listing.ListingType(cmd.ListingType)
	if !listingType.IsValid() {
		return nil, errors.NewValidationError("listing_type must be sale or rent")
	}

	split, err := listing.ComputeSplit(listing.SplitInput{
		AgentPct:    cmd.AgentPct,
		PromoterPct: cmd.PromoterPct,
		CompanyPct:  cmd.CompanyPct,
		HasPromoter: cmd.PromoterID != nil,
	})
	if err != nil {
		reason := ReasonInvalidCommissionSplit
		if stderrors.Is(err, listing.ErrInvalidCommissionRange) {
			reason = ReasonInvalidCommissionRange
		}
		metrics.CommissionRejections.WithLabelValues(reason).Inc()
		uc.logger.Infow("commission split rejected",
			"creator_id", cmd.CreatorID,
			"agent_pct", cmd.AgentPct,
			"promoter_pct", cmd.PromoterPct,
			"company_pct", cmd.CompanyPct,
			"error", err,
		)
		return nil, translateListingError(err)
	}

	params := listing.CreateParams{
		Title:       cmd.Title,
		Price:       cmd.Price,
		ListingType: listingType,
		CreatorID:   cmd.CreatorID,
		AgentID:     cmd.AgentID,
		PromoterID:  cmd.PromoterID,
	}

	var created *listing.Listing
	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		number, err := uc.allocator.Next(ctx)
		if err != nil {
			return err
		}

		l, err := listing.NewListing(params, number, split)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.repo.Create(ctx, l); err != nil {
			return err
		}
		created = l
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create listing", "creator_id", cmd.CreatorID, "error", err)
		return nil, translateListingError(err)
	}

	metrics.ListingNumbersAllocated.Inc()
	uc.logger.Infow("listing created",
		"listing_sid", created.SID(),
		"listing_number", created.ListingNumber(),
		"agent_id", created.AgentID(),
		"has_promoter", created.HasPromoter(),
	)
	return dto.ToListingResponse(created), nil
}
