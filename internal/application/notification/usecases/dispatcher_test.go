package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/domain/listing"
	"github.com/orris-inc/estatehub/internal/domain/notification"
	vo "github.com/orris-inc/estatehub/internal/domain/notification/valueobjects"
	"github.com/orris-inc/estatehub/internal/domain/shared/events"
	"github.com/orris-inc/estatehub/internal/domain/user"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

const (
	agentID    uint = 11
	referrerID uint = 12
	adminOne   uint = 1
	adminTwo   uint = 2
)

var errDatabaseDown = errors.New("database is down")

func testAccounts() *mockAccountRepository {
	return &mockAccountRepository{accounts: map[uint]*user.Account{
		adminOne:   user.ReconstructAccount(adminOne, user.RoleAdmin, user.StatusActive, nil),
		adminTwo:   user.ReconstructAccount(adminTwo, user.RoleAdmin, user.StatusActive, nil),
		3:          user.ReconstructAccount(3, user.RoleAdmin, user.StatusInactive, nil),
		agentID:    user.ReconstructAccount(agentID, user.RoleAgent, user.StatusActive, nil),
		referrerID: user.ReconstructAccount(referrerID, user.RolePromoter, user.StatusActive, nil),
		20:         user.ReconstructAccount(20, user.RolePromoter, user.StatusInactive, nil),
	}}
}

func testDispatcher(repo *memoryNotificationRepository, accounts *mockAccountRepository) *Dispatcher {
	return NewDispatcher(repo, accounts, DispatcherConfig{
		MaxRetries:  2,
		BaseBackoff: time.Millisecond,
		MaxBackoff:  2 * time.Millisecond,
	}, logger.NewDiscardLogger())
}

func bonusEvent(referrer uint) listing.RecruiterBonusQualifiedEvent {
	return listing.RecruiterBonusQualifiedEvent{
		BaseEvent:      events.NewBaseEvent("lst_abc", listing.EventTypeRecruiterBonusQualified, testNow),
		ListingID:      4,
		ListingSID:     "lst_abc",
		ListingNumber:  240230,
		ClosingStatus:  listing.StatusSold,
		PromoterID:     9,
		ReferrerID:     referrer,
		BonusRecordSID: "bns_xyz",
		Amount:         500,
	}
}

func breachEvent() inquiry.SLABreachEvent {
	return inquiry.SLABreachEvent{
		BaseEvent:     events.NewBaseEvent("inq_abc", inquiry.EventTypeSLABreach, testNow),
		InquiryID:     6,
		InquirySID:    "inq_abc",
		ListingID:     4,
		ListingNumber: 240230,
		AgentID:       agentID,
		SLAHours:      24,
	}
}

func staleEvent() inquiry.StaleEvent {
	return inquiry.StaleEvent{
		BaseEvent:     events.NewBaseEvent("inq_abc", inquiry.EventTypeStale, testNow),
		InquiryID:     6,
		InquirySID:    "inq_abc",
		ListingID:     4,
		ListingNumber: 240230,
		AgentID:       agentID,
		ThresholdDays: 7,
	}
}

type unknownEvent struct {
	events.BaseEvent
}

func TestDispatcher_Recipients(t *testing.T) {
	tests := []struct {
		name       string
		event      events.DomainEvent
		recipients []uint
		kind       vo.NotificationType
		related    string
	}{
		{
			name:       "recruiter bonus goes to referrer",
			event:      bonusEvent(referrerID),
			recipients: []uint{referrerID},
			kind:       vo.NotificationTypeRecruiterBonus,
			related:    "listing",
		},
		{
			name:       "pointer event is accepted",
			event:      func() events.DomainEvent { e := bonusEvent(referrerID); return &e }(),
			recipients: []uint{referrerID},
			kind:       vo.NotificationTypeRecruiterBonus,
			related:    "listing",
		},
		{
			name:       "sla breach goes to assigned agent",
			event:      breachEvent(),
			recipients: []uint{agentID},
			kind:       vo.NotificationTypeSLABreach,
			related:    "inquiry",
		},
		{
			name:       "stale inquiry fans out to active admins",
			event:      staleEvent(),
			recipients: []uint{adminOne, adminTwo},
			kind:       vo.NotificationTypeInquiryStale,
			related:    "inquiry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryNotificationRepository{}
			d := testDispatcher(repo, testAccounts())

			require.NoError(t, d.Dispatch(context.Background(), tt.event))

			assert.Equal(t, tt.recipients, repo.recipients())
			for _, n := range repo.rows {
				assert.Equal(t, tt.kind, n.Type())
				assert.Equal(t, tt.related, n.RelatedType())
				assert.Equal(t, tt.event.GetEventID(), n.EventID())
				assert.NotEmpty(t, n.Title())
				assert.Contains(t, n.Message(), "240230")
				assert.False(t, n.IsRead())
			}
		})
	}
}

func TestDispatcher_RecipientNotFoundIsPermanent(t *testing.T) {
	tests := []struct {
		name     string
		accounts *mockAccountRepository
		event    events.DomainEvent
	}{
		{name: "missing referrer", accounts: testAccounts(), event: bonusEvent(99)},
		{name: "inactive referrer", accounts: testAccounts(), event: bonusEvent(20)},
		{
			name:     "no active admin",
			accounts: &mockAccountRepository{accounts: map[uint]*user.Account{}},
			event:    staleEvent(),
		},
		{
			name:     "missing agent",
			accounts: &mockAccountRepository{accounts: map[uint]*user.Account{}},
			event:    breachEvent(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryNotificationRepository{}
			d := testDispatcher(repo, tt.accounts)

			err := d.Dispatch(context.Background(), tt.event)

			var failure *DispatchFailure
			require.ErrorAs(t, err, &failure)
			assert.ErrorIs(t, err, ErrRecipientNotFound)
			assert.Equal(t, 1, failure.Attempts)
			assert.Equal(t, tt.event.GetEventID(), failure.EventID)
			assert.Zero(t, repo.createCalls())
		})
	}
}

func TestDispatcher_RetriesTransientWriteErrors(t *testing.T) {
	repo := &memoryNotificationRepository{}
	failuresLeft := 2
	repo.CreateFunc = func(ctx context.Context, n *notification.Notification) error {
		if failuresLeft > 0 {
			failuresLeft--
			return errDatabaseDown
		}
		return nil
	}
	d := testDispatcher(repo, testAccounts())

	require.NoError(t, d.Dispatch(context.Background(), breachEvent()))

	assert.Equal(t, 3, repo.createCalls())
	assert.Equal(t, []uint{agentID}, repo.recipients())
}

func TestDispatcher_GivesUpAfterMaxRetries(t *testing.T) {
	repo := &memoryNotificationRepository{}
	repo.CreateFunc = func(ctx context.Context, n *notification.Notification) error {
		return errDatabaseDown
	}
	d := testDispatcher(repo, testAccounts())

	err := d.Dispatch(context.Background(), breachEvent())

	var failure *DispatchFailure
	require.ErrorAs(t, err, &failure)
	assert.ErrorIs(t, err, errDatabaseDown)
	assert.Equal(t, 3, failure.Attempts)
	assert.Equal(t, agentID, failure.RecipientID)
	assert.Equal(t, inquiry.EventTypeSLABreach, failure.EventType)
	assert.Equal(t, 3, repo.createCalls())
}

func TestDispatcher_FanOutReportsOnlyFailedRecipients(t *testing.T) {
	repo := &memoryNotificationRepository{}
	repo.CreateFunc = func(ctx context.Context, n *notification.Notification) error {
		if n.UserID() == adminTwo {
			return errDatabaseDown
		}
		return nil
	}
	d := testDispatcher(repo, testAccounts())

	err := d.Dispatch(context.Background(), staleEvent())

	var failure *DispatchFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, adminTwo, failure.RecipientID)
	assert.Equal(t, []uint{adminOne}, repo.recipients())
}

func TestDispatcher_DuplicateEventKeepsOneRecord(t *testing.T) {
	repo := &memoryNotificationRepository{}
	d := testDispatcher(repo, testAccounts())
	event := bonusEvent(referrerID)

	require.NoError(t, d.Dispatch(context.Background(), event))
	require.NoError(t, d.Dispatch(context.Background(), event))

	assert.Len(t, repo.rows, 1)
}

func TestDispatcher_DelivererFailureIsIgnored(t *testing.T) {
	repo := &memoryNotificationRepository{}
	deliverer := &mockDeliverer{err: errors.New("sns unavailable")}
	d := testDispatcher(repo, testAccounts())
	d.SetDeliverer(deliverer)

	require.NoError(t, d.Dispatch(context.Background(), breachEvent()))

	assert.Len(t, repo.rows, 1)
	require.Len(t, deliverer.delivered, 1)
	assert.Equal(t, agentID, deliverer.delivered[0].UserID())
}

func TestDispatcher_AccountLookupRetried(t *testing.T) {
	accounts := testAccounts()
	calls := 0
	accounts.GetByIDFunc = func(ctx context.Context, id uint) (*user.Account, error) {
		calls++
		if calls == 1 {
			return nil, errDatabaseDown
		}
		return accounts.accounts[id], nil
	}
	repo := &memoryNotificationRepository{}
	d := testDispatcher(repo, accounts)

	require.NoError(t, d.Dispatch(context.Background(), breachEvent()))

	assert.Equal(t, 2, calls)
	assert.Len(t, repo.rows, 1)
}

func TestDispatcher_UnsupportedEvent(t *testing.T) {
	d := testDispatcher(&memoryNotificationRepository{}, testAccounts())

	err := d.Dispatch(context.Background(), unknownEvent{BaseEvent: events.NewBaseEvent("x", "unknown", testNow)})
	assert.ErrorIs(t, err, ErrUnsupportedEvent)

	err = d.Dispatch(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnsupportedEvent)
}

func TestNewDispatcher_NormalizesBackoff(t *testing.T) {
	d := NewDispatcher(&memoryNotificationRepository{}, testAccounts(), DispatcherConfig{MaxBackoff: time.Millisecond}, logger.NewDiscardLogger())

	assert.Equal(t, defaultBaseBackoff, d.cfg.BaseBackoff)
	assert.Equal(t, defaultBaseBackoff, d.cfg.MaxBackoff)
}
