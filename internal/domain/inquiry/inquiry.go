package inquiry

import (
	"fmt"
	"time"

	"github.com/orris-inc/estatehub/internal/shared/id"
)

// Inquiry is a buyer contact on a listing. firstAgentResponseAt is set once and
// never cleared; inquiries are archived, never deleted.
type Inquiry struct {
	id                   uint
	sid                  string
	listingID            uint
	listingNumber        int64
	assignedAgentID      uint
	buyerName            string
	buyerEmail           string
	message              string
	firstAgentResponseAt *time.Time
	lastNotifiedState    NotifiedState
	archivedAt           *time.Time
	createdAt            time.Time
	updatedAt            time.Time
}

type CreateParams struct {
	ListingID       uint
	ListingNumber   int64
	AssignedAgentID uint
	BuyerName       string
	BuyerEmail      string
	Message         string
}

func NewInquiry(params CreateParams, createdAt time.Time) (*Inquiry, error) {
	if params.ListingID == 0 {
		return nil, fmt.Errorf("listing ID is required")
	}
	if params.AssignedAgentID == 0 {
		return nil, fmt.Errorf("assigned agent ID is required")
	}
	if params.BuyerName == "" {
		return nil, fmt.Errorf("buyer name is required")
	}
	if params.BuyerEmail == "" {
		return nil, fmt.Errorf("buyer email is required")
	}

	sid, err := id.NewInquiryID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate inquiry ID: %w", err)
	}

	createdAt = createdAt.UTC()
	return &Inquiry{
		sid:               sid,
		listingID:         params.ListingID,
		listingNumber:     params.ListingNumber,
		assignedAgentID:   params.AssignedAgentID,
		buyerName:         params.BuyerName,
		buyerEmail:        params.BuyerEmail,
		message:           params.Message,
		lastNotifiedState: NotifiedNone,
		createdAt:         createdAt,
		updatedAt:         createdAt,
	}, nil
}

func ReconstructInquiry(
	id uint,
	sid string,
	listingID uint,
	listingNumber int64,
	assignedAgentID uint,
	buyerName, buyerEmail, message string,
	firstAgentResponseAt *time.Time,
	lastNotifiedState NotifiedState,
	archivedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Inquiry {
	if !lastNotifiedState.IsValid() {
		lastNotifiedState = NotifiedNone
	}
	return &Inquiry{
		id:                   id,
		sid:                  sid,
		listingID:            listingID,
		listingNumber:        listingNumber,
		assignedAgentID:      assignedAgentID,
		buyerName:            buyerName,
		buyerEmail:           buyerEmail,
		message:              message,
		firstAgentResponseAt: firstAgentResponseAt,
		lastNotifiedState:    lastNotifiedState,
		archivedAt:           archivedAt,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

func (i *Inquiry) ID() uint                         { return i.id }
func (i *Inquiry) SID() string                      { return i.sid }
func (i *Inquiry) ListingID() uint                  { return i.listingID }
func (i *Inquiry) ListingNumber() int64             { return i.listingNumber }
func (i *Inquiry) AssignedAgentID() uint            { return i.assignedAgentID }
func (i *Inquiry) BuyerName() string                { return i.buyerName }
func (i *Inquiry) BuyerEmail() string               { return i.buyerEmail }
func (i *Inquiry) Message() string                  { return i.message }
func (i *Inquiry) FirstAgentResponseAt() *time.Time { return i.firstAgentResponseAt }
func (i *Inquiry) LastNotifiedState() NotifiedState { return i.lastNotifiedState }
func (i *Inquiry) ArchivedAt() *time.Time           { return i.archivedAt }
func (i *Inquiry) CreatedAt() time.Time             { return i.createdAt }
func (i *Inquiry) UpdatedAt() time.Time             { return i.updatedAt }

func (i *Inquiry) IsArchived() bool { return i.archivedAt != nil }
func (i *Inquiry) IsAnswered() bool { return i.firstAgentResponseAt != nil }

func (i *Inquiry) IsAssignedTo(agentID uint) bool {
	return agentID != 0 && agentID == i.assignedAgentID
}

// SetID sets the inquiry ID (only for persistence layer use)
func (i *Inquiry) SetID(id uint) {
	i.id = id
}

// Classify evaluates the inquiry at now.
func (i *Inquiry) Classify(now time.Time, policy SLAPolicy) SLAState {
	return Classify(i.createdAt, i.firstAgentResponseAt, now, policy)
}

// RecordFirstResponse sets the first agent response time. A later call leaves the
// original timestamp untouched and returns false.
func (i *Inquiry) RecordFirstResponse(at time.Time) (bool, error) {
	if i.firstAgentResponseAt != nil {
		return false, nil
	}
	if i.archivedAt != nil {
		return false, ErrInquiryArchived
	}
	at = at.UTC()
	if at.Before(i.createdAt) {
		return false, ErrResponseBeforeCreation
	}
	i.firstAgentResponseAt = &at
	i.updatedAt = at
	return true, nil
}

// Archive hides the inquiry from sweeps. Archiving twice is a no-op.
func (i *Inquiry) Archive(at time.Time) bool {
	if i.archivedAt != nil {
		return false
	}
	at = at.UTC()
	i.archivedAt = &at
	i.updatedAt = at
	return true
}

// DueNotifications returns the thresholds crossed at now that were not notified yet,
// least severe first. Answered and archived inquiries owe nothing.
func (i *Inquiry) DueNotifications(now time.Time, policy SLAPolicy) []NotifiedState {
	if i.IsAnswered() || i.IsArchived() {
		return nil
	}

	waited := now.Sub(i.createdAt)
	var due []NotifiedState
	if waited > policy.ResponseSLA && i.lastNotifiedState.rank() < NotifiedPendingBreached.rank() {
		due = append(due, NotifiedPendingBreached)
	}
	if waited > policy.StaleAfter && i.lastNotifiedState.rank() < NotifiedStale.rank() {
		due = append(due, NotifiedStale)
	}
	return due
}

// AdvanceNotified moves the in-memory notified state after the store accepted it.
func (i *Inquiry) AdvanceNotified(to NotifiedState) {
	if to.rank() > i.lastNotifiedState.rank() {
		i.lastNotifiedState = to
	}
}
