package usecases

import (
	"context"

	"github.com/orris-inc/estatehub/internal/application/inquiry/dto"
	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/domain/listing"
	"github.com/orris-inc/estatehub/internal/shared/biztime"
	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

type CreateInquiryCommand struct {
	ListingSID string
	BuyerName  string
	BuyerEmail string
	Message    string
}

// CreateInquiryUseCase opens an inquiry on an active listing and assigns it to the
// listing's agent. The SLA clock starts at creation.
type CreateInquiryUseCase struct {
	inquiries inquiry.Repository
	listings  listing.Repository
	clock     biztime.Clock
	logger    logger.Interface
}

func NewCreateInquiryUseCase(inquiries inquiry.Repository, listings listing.Repository, logger logger.Interface) *CreateInquiryUseCase {
	return &CreateInquiryUseCase{
		inquiries: inquiries,
		listings:  listings,
		clock:     biztime.NowUTC,
		logger:    logger,
	}
}

func (uc *CreateInquiryUseCase) Execute(ctx context.Context, cmd CreateInquiryCommand) (*dto.InquiryResponse, error) {
	l, err := uc.listings.GetBySID(ctx, cmd.ListingSID)
	if err != nil {
		return nil, translateInquiryError(err)
	}
	if l.Status() != listing.StatusActive {
		return nil, errors.NewConflictError("listing is not accepting inquiries").WithReason("listing_not_active")
	}

	i, err := inquiry.NewInquiry(inquiry.CreateParams{
		ListingID:       l.ID(),
		ListingNumber:   l.ListingNumber(),
		AssignedAgentID: l.AgentID(),
		BuyerName:       cmd.BuyerName,
		BuyerEmail:      cmd.BuyerEmail,
		Message:         cmd.Message,
	}, uc.clock())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.inquiries.Create(ctx, i); err != nil {
		uc.logger.Errorw("failed to create inquiry", "listing_sid", l.SID(), "error", err)
		return nil, translateInquiryError(err)
	}

	uc.logger.Infow("inquiry created",
		"inquiry_sid", i.SID(),
		"listing_number", l.ListingNumber(),
		"agent_id", i.AssignedAgentID(),
	)
	return dto.ToInquiryResponse(i), nil
}
