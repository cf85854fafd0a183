package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/domain/listing"
	"github.com/orris-inc/estatehub/internal/domain/notification"
	vo "github.com/orris-inc/estatehub/internal/domain/notification/valueobjects"
	"github.com/orris-inc/estatehub/internal/domain/shared/events"
	"github.com/orris-inc/estatehub/internal/domain/user"
	"github.com/orris-inc/estatehub/internal/infrastructure/metrics"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

var (
	ErrRecipientNotFound = errors.New("notification recipient not found")
	ErrUnsupportedEvent  = errors.New("unsupported event type")
)

const (
	defaultBaseBackoff = 100 * time.Millisecond
	defaultMaxBackoff  = 5 * time.Second
)

// DispatchFailure reports a notification that was not persisted for one recipient.
type DispatchFailure struct {
	EventID     string
	EventType   string
	RecipientID uint
	Attempts    int
	Err         error
}

func (f *DispatchFailure) Error() string {
	if f.RecipientID == 0 {
		return fmt.Sprintf("dispatch %s (%s) failed after %d attempt(s): %v", f.EventType, f.EventID, f.Attempts, f.Err)
	}
	return fmt.Sprintf("dispatch %s (%s) to user %d failed after %d attempt(s): %v",
		f.EventType, f.EventID, f.RecipientID, f.Attempts, f.Err)
}

func (f *DispatchFailure) Unwrap() error { return f.Err }

// Deliverer pushes a persisted notification to an external channel.
type Deliverer interface {
	Deliver(ctx context.Context, n *notification.Notification) error
}

type DispatcherConfig struct {
	MaxRetries  uint64
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

type outgoing struct {
	recipientID uint
	kind        vo.NotificationType
	content     notification.Content
}

// Dispatcher turns domain events into notification records for their recipients.
// Repository write errors are retried with capped exponential backoff; a missing
// recipient is permanent.
type Dispatcher struct {
	repo      notification.NotificationRepository
	accounts  user.AccountRepository
	deliverer Deliverer
	cfg       DispatcherConfig
	logger    logger.Interface
}

func NewDispatcher(
	repo notification.NotificationRepository,
	accounts user.AccountRepository,
	cfg DispatcherConfig,
	logger logger.Interface,
) *Dispatcher {
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = defaultBaseBackoff
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = defaultMaxBackoff
	}
	if cfg.MaxBackoff < cfg.BaseBackoff {
		cfg.MaxBackoff = cfg.BaseBackoff
	}
	return &Dispatcher{
		repo:     repo,
		accounts: accounts,
		cfg:      cfg,
		logger:   logger,
	}
}

// SetDeliverer attaches the optional external delivery channel.
func (d *Dispatcher) SetDeliverer(deliverer Deliverer) {
	d.deliverer = deliverer
}

// Dispatch persists one notification per recipient of event. It returns a
// *DispatchFailure, or several joined, for recipients that did not get a record.
func (d *Dispatcher) Dispatch(ctx context.Context, event events.DomainEvent) error {
	if event == nil {
		return fmt.Errorf("%w: nil event", ErrUnsupportedEvent)
	}

	messages, failure := d.resolve(ctx, event)
	if failure != nil {
		d.recordFailure(event, failure)
		return failure
	}

	var failures []error
	for _, msg := range messages {
		if err := d.write(ctx, event, msg); err != nil {
			failures = append(failures, err)
		}
	}

	switch len(failures) {
	case 0:
		return nil
	case 1:
		return failures[0]
	default:
		return errors.Join(failures...)
	}
}

func (d *Dispatcher) resolve(ctx context.Context, event events.DomainEvent) ([]outgoing, *DispatchFailure) {
	switch e := event.(type) {
	case listing.RecruiterBonusQualifiedEvent:
		return d.resolveBonus(ctx, e)
	case *listing.RecruiterBonusQualifiedEvent:
		return d.resolveBonus(ctx, *e)
	case inquiry.SLABreachEvent:
		return d.resolveBreach(ctx, e)
	case *inquiry.SLABreachEvent:
		return d.resolveBreach(ctx, *e)
	case inquiry.StaleEvent:
		return d.resolveStale(ctx, e)
	case *inquiry.StaleEvent:
		return d.resolveStale(ctx, *e)
	default:
		return nil, &DispatchFailure{
			EventID:   event.GetEventID(),
			EventType: event.GetEventType(),
			Err:       fmt.Errorf("%w: %T", ErrUnsupportedEvent, event),
		}
	}
}

func (d *Dispatcher) resolveBonus(ctx context.Context, e listing.RecruiterBonusQualifiedEvent) ([]outgoing, *DispatchFailure) {
	if failure := d.requireActive(ctx, e, e.ReferrerID); failure != nil {
		return nil, failure
	}
	return []outgoing{{
		recipientID: e.ReferrerID,
		kind:        vo.NotificationTypeRecruiterBonus,
		content: notification.Content{
			Title: "Recruiter bonus earned",
			Message: fmt.Sprintf("Listing #%d closed as %s. You earned a recruiter bonus of %.2f.",
				e.ListingNumber, e.ClosingStatus, e.Amount),
			Link:        "/listings/" + e.ListingSID,
			RelatedType: vo.NotificationTypeRecruiterBonus.RelatedType(),
			RelatedID:   e.ListingID,
			Payload: map[string]any{
				"listing_number":   e.ListingNumber,
				"closing_status":   e.ClosingStatus.String(),
				"promoter_id":      e.PromoterID,
				"bonus_record_sid": e.BonusRecordSID,
				"amount":           e.Amount,
			},
		},
	}}, nil
}

func (d *Dispatcher) resolveBreach(ctx context.Context, e inquiry.SLABreachEvent) ([]outgoing, *DispatchFailure) {
	if failure := d.requireActive(ctx, e, e.AgentID); failure != nil {
		return nil, failure
	}
	return []outgoing{{
		recipientID: e.AgentID,
		kind:        vo.NotificationTypeSLABreach,
		content: notification.Content{
			Title: "Inquiry response overdue",
			Message: fmt.Sprintf("An inquiry on listing #%d has waited more than %d hours for a first response.",
				e.ListingNumber, e.SLAHours),
			Link:        "/inquiries/" + e.InquirySID,
			RelatedType: vo.NotificationTypeSLABreach.RelatedType(),
			RelatedID:   e.InquiryID,
			Payload: map[string]any{
				"listing_number": e.ListingNumber,
				"sla_hours":      e.SLAHours,
			},
		},
	}}, nil
}

func (d *Dispatcher) resolveStale(ctx context.Context, e inquiry.StaleEvent) ([]outgoing, *DispatchFailure) {
	var admins []uint
	attempts, err := d.withRetry(ctx, func(ctx context.Context) error {
		var err error
		admins, err = d.accounts.ListActiveIDsByRole(ctx, user.RoleAdmin)
		return err
	})
	if err != nil {
		return nil, &DispatchFailure{EventID: e.GetEventID(), EventType: e.GetEventType(), Attempts: attempts, Err: err}
	}
	if len(admins) == 0 {
		return nil, &DispatchFailure{
			EventID:   e.GetEventID(),
			EventType: e.GetEventType(),
			Attempts:  attempts,
			Err:       fmt.Errorf("%w: no active admin", ErrRecipientNotFound),
		}
	}

	out := make([]outgoing, 0, len(admins))
	for _, adminID := range admins {
		out = append(out, outgoing{
			recipientID: adminID,
			kind:        vo.NotificationTypeInquiryStale,
			content: notification.Content{
				Title: "Stale inquiry",
				Message: fmt.Sprintf("An inquiry on listing #%d assigned to agent %d has been unanswered for more than %d days.",
					e.ListingNumber, e.AgentID, e.ThresholdDays),
				Link:        "/inquiries/" + e.InquirySID,
				RelatedType: vo.NotificationTypeInquiryStale.RelatedType(),
				RelatedID:   e.InquiryID,
				Payload: map[string]any{
					"listing_number": e.ListingNumber,
					"agent_id":       e.AgentID,
					"threshold_days": e.ThresholdDays,
				},
			},
		})
	}
	return out, nil
}

// requireActive treats an inactive account the same as a missing one.
func (d *Dispatcher) requireActive(ctx context.Context, event events.DomainEvent, userID uint) *DispatchFailure {
	var account *user.Account
	attempts, err := d.withRetry(ctx, func(ctx context.Context) error {
		var err error
		account, err = d.accounts.GetByID(ctx, userID)
		if errors.Is(err, user.ErrAccountNotFound) {
			return fmt.Errorf("%w: user %d", ErrRecipientNotFound, userID)
		}
		return err
	})
	if err == nil && !account.IsActive() {
		err = fmt.Errorf("%w: user %d is inactive", ErrRecipientNotFound, userID)
	}
	if err != nil {
		return &DispatchFailure{
			EventID:     event.GetEventID(),
			EventType:   event.GetEventType(),
			RecipientID: userID,
			Attempts:    attempts,
			Err:         err,
		}
	}
	return nil
}

func (d *Dispatcher) write(ctx context.Context, event events.DomainEvent, msg outgoing) error {
	n, err := notification.NewNotification(msg.recipientID, msg.kind, event.GetEventID(), msg.content)
	if err != nil {
		failure := &DispatchFailure{
			EventID:     event.GetEventID(),
			EventType:   event.GetEventType(),
			RecipientID: msg.recipientID,
			Err:         err,
		}
		d.recordFailure(event, failure)
		return failure
	}

	attempts, err := d.withRetry(ctx, func(ctx context.Context) error {
		return d.repo.Create(ctx, n)
	})
	if err != nil {
		failure := &DispatchFailure{
			EventID:     event.GetEventID(),
			EventType:   event.GetEventType(),
			RecipientID: msg.recipientID,
			Attempts:    attempts,
			Err:         err,
		}
		d.recordFailure(event, failure)
		return failure
	}

	metrics.DispatchOutcomes.WithLabelValues(event.GetEventType(), metrics.OutcomeDelivered).Inc()
	d.logger.Infow("notification dispatched",
		"event_id", event.GetEventID(),
		"event_type", event.GetEventType(),
		"user_id", msg.recipientID,
		"notification_id", n.ID(),
		"attempts", attempts,
	)

	if d.deliverer != nil {
		if err := d.deliverer.Deliver(ctx, n); err != nil {
			d.logger.Warnw("external notification delivery failed",
				"event_id", event.GetEventID(),
				"user_id", msg.recipientID,
				"error", err,
			)
		}
	}
	return nil
}

// withRetry runs fn until it succeeds, returns a permanent error, or the retry
// budget runs out. Recipient-not-found is permanent; anything else is retried.
func (d *Dispatcher) withRetry(ctx context.Context, fn func(ctx context.Context) error) (int, error) {
	backoff := retry.WithMaxRetries(d.cfg.MaxRetries,
		retry.WithCappedDuration(d.cfg.MaxBackoff, retry.NewExponential(d.cfg.BaseBackoff)))

	attempts := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		err := fn(ctx)
		if err == nil || errors.Is(err, ErrRecipientNotFound) {
			return err
		}
		return retry.RetryableError(err)
	})
	return attempts, err
}

func (d *Dispatcher) recordFailure(event events.DomainEvent, failure *DispatchFailure) {
	outcome := metrics.OutcomeFailed
	if errors.Is(failure, ErrRecipientNotFound) {
		outcome = metrics.OutcomeSkipped
	}
	metrics.DispatchOutcomes.WithLabelValues(event.GetEventType(), outcome).Inc()
	d.logger.Errorw("notification dispatch failed",
		"event_id", failure.EventID,
		"event_type", failure.EventType,
		"user_id", failure.RecipientID,
		"attempts", failure.Attempts,
		"error", failure.Err,
	)
}
