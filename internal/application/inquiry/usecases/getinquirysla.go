package usecases

import (
	"context"

	"github.com/orris-inc/estatehub/internal/application/inquiry/dto"
	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/shared/biztime"
	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// GetInquirySLAUseCase classifies an inquiry on read. It runs the same emit-once
// evaluation as the sweep, so reading never produces a second notification.
type GetInquirySLAUseCase struct {
	inquiries inquiry.Repository
	evaluator *EvaluateInquiryUseCase
	policy    PolicyReader
	clock     biztime.Clock
	logger    logger.Interface
}

func NewGetInquirySLAUseCase(
	inquiries inquiry.Repository,
	evaluator *EvaluateInquiryUseCase,
	policy PolicyReader,
	logger logger.Interface,
) *GetInquirySLAUseCase {
	return &GetInquirySLAUseCase{
		inquiries: inquiries,
		evaluator: evaluator,
		policy:    policy,
		clock:     biztime.NowUTC,
		logger:    logger,
	}
}

func (uc *GetInquirySLAUseCase) Execute(ctx context.Context, sid string) (*dto.SLAResponse, error) {
	p, err := uc.policy.Policy(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to read settings").Wrap(err)
	}

	i, err := uc.inquiries.GetBySID(ctx, sid)
	if err != nil {
		return nil, translateInquiryError(err)
	}

	if _, err := uc.evaluator.Evaluate(ctx, i.ID(), p.SLA); err != nil {
		uc.logger.Warnw("SLA evaluation on read failed", "inquiry_sid", sid, "error", err)
	} else if i, err = uc.inquiries.GetByID(ctx, i.ID()); err != nil {
		return nil, translateInquiryError(err)
	}

	return dto.ToSLAResponse(i, p.SLA, uc.clock()), nil
}
