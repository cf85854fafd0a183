package usecases

import (
	"context"

	"github.com/orris-inc/estatehub/internal/application/inquiry/dto"
	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/shared/biztime"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

type ArchiveInquiryUseCase struct {
	inquiries inquiry.Repository
	clock     biztime.Clock
	logger    logger.Interface
}

func NewArchiveInquiryUseCase(inquiries inquiry.Repository, logger logger.Interface) *ArchiveInquiryUseCase {
	return &ArchiveInquiryUseCase{
		inquiries: inquiries,
		clock:     biztime.NowUTC,
		logger:    logger,
	}
}

func (uc *ArchiveInquiryUseCase) Execute(ctx context.Context, cmd InquiryCommand) (*dto.InquiryResponse, error) {
	sid := cmd.InquirySID
	i, err := uc.inquiries.GetBySID(ctx, sid)
	if err != nil {
		return nil, translateInquiryError(err)
	}
	if err := authorizeInquiryCaller(i, cmd.Caller); err != nil {
		uc.logger.Warnw("archive rejected for caller", "inquiry_sid", sid, "caller_id", cmd.Caller.ID)
		return nil, err
	}

	now := uc.clock()
	if !i.Archive(now) {
		return dto.ToInquiryResponse(i), nil
	}
	if err := uc.inquiries.Archive(ctx, i.ID(), now); err != nil {
		uc.logger.Errorw("failed to archive inquiry", "inquiry_sid", sid, "error", err)
		return nil, translateInquiryError(err)
	}

	uc.logger.Infow("inquiry archived", "inquiry_sid", sid, "archived_by", cmd.Caller.ID)
	return dto.ToInquiryResponse(i), nil
}
