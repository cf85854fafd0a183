package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/orris-inc/estatehub/internal/application/listing/dto"
	settingUsecases "github.com/orris-inc/estatehub/internal/application/setting/usecases"
	"github.com/orris-inc/estatehub/internal/domain/listing"
	"github.com/orris-inc/estatehub/internal/domain/referral"
	"github.com/orris-inc/estatehub/internal/domain/shared/events"
	"github.com/orris-inc/estatehub/internal/domain/user"
	"github.com/orris-inc/estatehub/internal/infrastructure/metrics"
	"github.com/orris-inc/estatehub/internal/shared/biztime"
	"github.com/orris-inc/estatehub/internal/shared/db"
	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

type TransitionStatusCommand struct {
	ListingSID string
	Status     string
	Caller     user.Actor
}

// ParseQualifyingStatuses converts configured status names. Only terminal statuses
// may qualify a listing for the recruiter bonus.
func ParseQualifyingStatuses(names []string) ([]listing.Status, error) {
	out := make([]listing.Status, 0, len(names))
	for _, n := range names {
		s, err := listing.NewStatus(n)
		if err != nil {
			return nil, err
		}
		if !s.IsTerminal() {
			return nil, fmt.Errorf("status %s is not terminal and cannot qualify for a bonus", s)
		}
		out = append(out, s)
	}
	return out, nil
}

// TransitionListingStatusUseCase moves a listing through its lifecycle and runs the
// recruiter bonus trigger on a real move into a qualifying status. The status
// change, bonus record and bonus_issued flag commit together; the qualified event
// is dispatched after commit, only by the caller whose update flipped the flag.
// Only the listing's creator, its agent or an admin may change its status.
type TransitionListingStatusUseCase struct {
	listings   listing.Repository
	accounts   user.AccountRepository
	bonuses    referral.BonusRecordRepository
	tx         db.Runner
	policy     PolicyReader
	dispatcher events.Publisher
	qualifying []listing.Status
	clock      biztime.Clock
	logger     logger.Interface
}

func NewTransitionListingStatusUseCase(
	listings listing.Repository,
	accounts user.AccountRepository,
	bonuses referral.BonusRecordRepository,
	tx db.Runner,
	policy PolicyReader,
	dispatcher events.Publisher,
	qualifying []listing.Status,
	logger logger.Interface,
) *TransitionListingStatusUseCase {
	return &TransitionListingStatusUseCase{
		listings:   listings,
		accounts:   accounts,
		bonuses:    bonuses,
		tx:         tx,
		policy:     policy,
		dispatcher: dispatcher,
		qualifying: qualifying,
		clock:      biztime.NowUTC,
		logger:     logger,
	}
}

func (uc *TransitionListingStatusUseCase) Execute(ctx context.Context, cmd TransitionStatusCommand) (*dto.TransitionResponse, error) {
	target, err := listing.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	policy, err := uc.policy.Policy(ctx)
	if err != nil {
		uc.logger.Errorw("failed to read settings for status transition", "listing_sid", cmd.ListingSID, "error", err)
		return nil, errors.NewInternalError("failed to read settings").Wrap(err)
	}

	now := uc.clock()
	var (
		result  *listing.Listing
		changed bool
		event   *listing.RecruiterBonusQualifiedEvent
	)
	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		l, err := uc.listings.GetBySID(ctx, cmd.ListingSID)
		if err != nil {
			return err
		}
		if !cmd.Caller.IsAdmin() && !l.IsManagedBy(cmd.Caller.ID) {
			return errors.NewForbiddenError("only the listing creator, its agent or an admin can change its status")
		}

		expectedVersion := l.Version()
		changed, err = l.TransitionTo(target, now)
		if err != nil {
			return err
		}
		result = l
		if !changed {
			return nil
		}
		if err := uc.listings.UpdateStatus(ctx, l, expectedVersion); err != nil {
			return err
		}

		event, err = uc.issueBonus(ctx, l, policy, now)
		return err
	})
	if err != nil {
		uc.logger.Warnw("listing status transition failed",
			"listing_sid", cmd.ListingSID,
			"target_status", target,
			"caller_id", cmd.Caller.ID,
			"error", err,
		)
		return nil, translateListingError(err)
	}

	if changed {
		uc.logger.Infow("listing status changed",
			"listing_sid", result.SID(),
			"listing_number", result.ListingNumber(),
			"status", result.Status(),
		)
	}

	if event != nil {
		metrics.RecruiterBonusesIssued.Inc()
		if err := uc.dispatcher.Dispatch(ctx, *event); err != nil {
			uc.logger.Errorw("recruiter bonus notification failed, bonus record kept",
				"listing_sid", result.SID(),
				"referrer_id", event.ReferrerID,
				"event_id", event.EventID,
				"error", err,
			)
		}
	}

	return &dto.TransitionResponse{
		Listing:        dto.ToListingResponse(result),
		Changed:        changed,
		BonusQualified: event != nil,
	}, nil
}

// issueBonus records the recruiter bonus for l if it qualifies and was not issued
// yet. It returns the event to dispatch, or nil.
func (uc *TransitionListingStatusUseCase) issueBonus(
	ctx context.Context,
	l *listing.Listing,
	policy settingUsecases.Policy,
	now time.Time,
) (*listing.RecruiterBonusQualifiedEvent, error) {
	if !policy.BonusEnabled || !l.HasPromoter() || l.BonusIssued() || !uc.qualifies(l.Status()) {
		return nil, nil
	}

	if _, err := listing.ComputeSplit(l.Split().Input()); err != nil {
		return nil, fmt.Errorf("stored commission split for listing %s no longer validates: %w", l.SID(), err)
	}

	promoterID := *l.PromoterID()
	promoter, err := uc.accounts.GetByID(ctx, promoterID)
	if stderrors.Is(err, user.ErrAccountNotFound) {
		uc.logger.Warnw("promoter account not found, skipping recruiter bonus",
			"listing_sid", l.SID(),
			"promoter_id", promoterID,
		)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load promoter %d: %w", promoterID, err)
	}

	referrer := promoter.ReferredByID()
	if referrer == nil || *referrer == promoterID {
		return nil, nil
	}

	record, err := referral.NewRecruiterBonusRecord(l.ID(), *referrer, promoterID, policy.BonusAmount, l.Status().String(), now)
	if err != nil {
		return nil, err
	}
	if err := uc.bonuses.Create(ctx, record); err != nil {
		if stderrors.Is(err, referral.ErrBonusAlreadyRecorded) {
			// the transaction that inserted the record owns the bonus_issued flip
			uc.logger.Infow("recruiter bonus already recorded for listing",
				"listing_sid", l.SID(),
				"referrer_id", *referrer,
			)
			return nil, nil
		}
		return nil, err
	}

	flipped, err := uc.listings.MarkBonusIssued(ctx, l.ID())
	if err != nil {
		return nil, err
	}
	if !flipped {
		return nil, nil
	}
	l.MarkBonusIssued()

	uc.logger.Infow("recruiter bonus qualified",
		"listing_sid", l.SID(),
		"promoter_id", promoterID,
		"referrer_id", *referrer,
		"amount", record.Amount(),
		"bonus_sid", record.SID(),
	)

	event := listing.NewRecruiterBonusQualifiedEvent(l, *referrer, record.SID(), record.Amount(), now)
	return &event, nil
}

func (uc *TransitionListingStatusUseCase) qualifies(s listing.Status) bool {
	for _, q := range uc.qualifying {
		if q == s {
			return true
		}
	}
	return false
}
