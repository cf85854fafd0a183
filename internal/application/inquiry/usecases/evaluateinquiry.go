package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/domain/shared/events"
	"github.com/orris-inc/estatehub/internal/infrastructure/metrics"
	"github.com/orris-inc/estatehub/internal/shared/biztime"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// EvaluateInquiryUseCase emits the SLA breach and stale events an inquiry owes.
// Each threshold is claimed through a compare-and-set on last_notified_state, so
// an event is emitted only by the evaluator whose update won, however many sweeps
// or readers look at the inquiry.
type EvaluateInquiryUseCase struct {
	inquiries  inquiry.Repository
	locker     InquiryLocker
	dispatcher events.Publisher
	clock      biztime.Clock
	logger     logger.Interface
}

func NewEvaluateInquiryUseCase(
	inquiries inquiry.Repository,
	locker InquiryLocker,
	dispatcher events.Publisher,
	logger logger.Interface,
) *EvaluateInquiryUseCase {
	return &EvaluateInquiryUseCase{
		inquiries:  inquiries,
		locker:     locker,
		dispatcher: dispatcher,
		clock:      biztime.NowUTC,
		logger:     logger,
	}
}

// Evaluate checks one inquiry under policy and returns how many events it emitted.
// An inquiry locked by another evaluator is skipped.
func (uc *EvaluateInquiryUseCase) Evaluate(ctx context.Context, inquiryID uint, policy inquiry.SLAPolicy) (int, error) {
	release, ok, err := uc.locker.TryAcquire(ctx, inquiryID)
	if err != nil {
		return 0, fmt.Errorf("failed to lock inquiry %d: %w", inquiryID, err)
	}
	if !ok {
		uc.logger.Debugw("inquiry is being evaluated elsewhere, skipping", "inquiry_id", inquiryID)
		return 0, nil
	}
	defer release()

	i, err := uc.inquiries.GetByID(ctx, inquiryID)
	if err != nil {
		return 0, err
	}

	now := uc.clock()
	emitted := 0
	for _, state := range i.DueNotifications(now, policy) {
		won, err := uc.inquiries.AdvanceNotifiedState(ctx, i.ID(), i.LastNotifiedState(), state)
		if err != nil {
			return emitted, err
		}
		if !won {
			uc.logger.Debugw("notified state already advanced", "inquiry_id", inquiryID, "state", state)
			return emitted, nil
		}
		i.AdvanceNotified(state)
		emitted++

		metrics.SLANotificationsEmitted.WithLabelValues(string(state)).Inc()
		event := inquiry.NewThresholdEvent(i, state, policy, now)
		uc.logger.Infow("inquiry crossed SLA threshold",
			"inquiry_sid", i.SID(),
			"agent_id", i.AssignedAgentID(),
			"state", state,
			"waited", now.Sub(i.CreatedAt()).String(),
		)
		if err := uc.dispatcher.Dispatch(ctx, event); err != nil {
			uc.logger.Errorw("SLA notification failed, notified state kept",
				"inquiry_sid", i.SID(),
				"state", state,
				"event_id", event.GetEventID(),
				"error", err,
			)
		}
	}
	return emitted, nil
}
