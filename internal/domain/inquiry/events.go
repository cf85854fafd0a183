package inquiry

import (
	"time"

	"github.com/orris-inc/estatehub/internal/domain/shared/events"
)

const (
	EventTypeSLABreach = "inquiry.sla_breach"
	EventTypeStale     = "inquiry.stale"
)

// SLABreachEvent is raised once when an unanswered inquiry passes the response SLA.
type SLABreachEvent struct {
	events.BaseEvent
	InquiryID     uint   `json:"inquiry_id"`
	InquirySID    string `json:"inquiry_sid"`
	ListingID     uint   `json:"listing_id"`
	ListingNumber int64  `json:"listing_number"`
	AgentID       uint   `json:"agent_id"`
	SLAHours      int64  `json:"sla_hours"`
}

// StaleEvent is raised once when an unanswered inquiry passes the stale threshold.
type StaleEvent struct {
	events.BaseEvent
	InquiryID     uint   `json:"inquiry_id"`
	InquirySID    string `json:"inquiry_sid"`
	ListingID     uint   `json:"listing_id"`
	ListingNumber int64  `json:"listing_number"`
	AgentID       uint   `json:"agent_id"`
	ThresholdDays int64  `json:"threshold_days"`
}

// NewThresholdEvent builds the event owed for crossing state.
func NewThresholdEvent(i *Inquiry, state NotifiedState, policy SLAPolicy, occurredAt time.Time) events.DomainEvent {
	switch state {
	case NotifiedPendingBreached:
		return SLABreachEvent{
			BaseEvent:     events.NewBaseEvent(i.SID(), EventTypeSLABreach, occurredAt),
			InquiryID:     i.ID(),
			InquirySID:    i.SID(),
			ListingID:     i.ListingID(),
			ListingNumber: i.ListingNumber(),
			AgentID:       i.AssignedAgentID(),
			SLAHours:      int64(policy.ResponseSLA / time.Hour),
		}
	case NotifiedStale:
		return StaleEvent{
			BaseEvent:     events.NewBaseEvent(i.SID(), EventTypeStale, occurredAt),
			InquiryID:     i.ID(),
			InquirySID:    i.SID(),
			ListingID:     i.ListingID(),
			ListingNumber: i.ListingNumber(),
			AgentID:       i.AssignedAgentID(),
			ThresholdDays: int64(policy.StaleAfter / (24 * time.Hour)),
		}
	default:
		return nil
	}
}
