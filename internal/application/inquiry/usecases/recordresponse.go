package usecases

import (
	"context"

	"github.com/orris-inc/estatehub/internal/application/inquiry/dto"
	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/shared/biztime"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// RecordFirstResponseUseCase stamps the first agent response. Later calls return
// the inquiry unchanged.
type RecordFirstResponseUseCase struct {
	inquiries inquiry.Repository
	clock     biztime.Clock
	logger    logger.Interface
}

func NewRecordFirstResponseUseCase(inquiries inquiry.Repository, logger logger.Interface) *RecordFirstResponseUseCase {
	return &RecordFirstResponseUseCase{
		inquiries: inquiries,
		clock:     biztime.NowUTC,
		logger:    logger,
	}
}

func (uc *RecordFirstResponseUseCase) Execute(ctx context.Context, cmd InquiryCommand) (*dto.InquiryResponse, error) {
	sid := cmd.InquirySID
	i, err := uc.inquiries.GetBySID(ctx, sid)
	if err != nil {
		return nil, translateInquiryError(err)
	}
	if err := authorizeInquiryCaller(i, cmd.Caller); err != nil {
		uc.logger.Warnw("first response rejected for caller", "inquiry_sid", sid, "caller_id", cmd.Caller.ID)
		return nil, err
	}

	now := uc.clock()
	changed, err := i.RecordFirstResponse(now)
	if err != nil {
		return nil, translateInquiryError(err)
	}
	if !changed {
		return dto.ToInquiryResponse(i), nil
	}

	written, err := uc.inquiries.SetFirstResponse(ctx, i.ID(), now)
	if err != nil {
		uc.logger.Errorw("failed to record first response", "inquiry_sid", sid, "error", err)
		return nil, translateInquiryError(err)
	}
	if !written {
		// a concurrent request won; report what is stored
		if i, err = uc.inquiries.GetByID(ctx, i.ID()); err != nil {
			return nil, translateInquiryError(err)
		}
		return dto.ToInquiryResponse(i), nil
	}

	uc.logger.Infow("first agent response recorded",
		"inquiry_sid", sid,
		"agent_id", i.AssignedAgentID(),
		"recorded_by", cmd.Caller.ID,
		"waited", now.Sub(i.CreatedAt()).String(),
	)
	return dto.ToInquiryResponse(i), nil
}
