package dto

import (
	"time"

	"github.com/orris-inc/estatehub/internal/domain/inquiry"
)

type CreateInquiryRequest struct {
	ListingSID string `json:"listing_id" binding:"required,sid=lst"`
	BuyerName  string `json:"buyer_name" binding:"required,max=100"`
	BuyerEmail string `json:"buyer_email" binding:"required,email"`
	Message    string `json:"message" binding:"max=2000"`
}

type InquiryResponse struct {
	SID                  string     `json:"id"`
	ListingID            uint       `json:"listing_id"`
	ListingNumber        int64      `json:"listing_number"`
	AssignedAgentID      uint       `json:"assigned_agent_id"`
	BuyerName            string     `json:"buyer_name"`
	BuyerEmail           string     `json:"buyer_email"`
	Message              string     `json:"message,omitempty"`
	FirstAgentResponseAt *time.Time `json:"first_agent_response_at,omitempty"`
	ArchivedAt           *time.Time `json:"archived_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// SLAResponse is the classification of one inquiry at EvaluatedAt.
type SLAResponse struct {
	InquirySID        string     `json:"inquiry_id"`
	State             string     `json:"state"`
	LastNotifiedState string     `json:"last_notified_state"`
	ResponseDueAt     time.Time  `json:"response_due_at"`
	StaleAt           time.Time  `json:"stale_at"`
	FirstResponseAt   *time.Time `json:"first_response_at,omitempty"`
	EvaluatedAt       time.Time  `json:"evaluated_at"`
}

// AgentComplianceResponse counts an agent's open inquiries per SLA state.
type AgentComplianceResponse struct {
	AgentID          uint   `json:"agent_id"`
	Status           string `json:"status"`
	Total            int    `json:"total"`
	OnTime           int    `json:"on_time"`
	Breached         int    `json:"breached"`
	PendingWithinSLA int    `json:"pending_within_sla"`
	PendingBreached  int    `json:"pending_breached"`
	Stale            int    `json:"stale"`
}

const (
	ComplianceCompliant = "compliant"
	ComplianceBreaching = "breaching"
)

func ToInquiryResponse(i *inquiry.Inquiry) *InquiryResponse {
	return &InquiryResponse{
		SID:                  i.SID(),
		ListingID:            i.ListingID(),
		ListingNumber:        i.ListingNumber(),
		AssignedAgentID:      i.AssignedAgentID(),
		BuyerName:            i.BuyerName(),
		BuyerEmail:           i.BuyerEmail(),
		Message:              i.Message(),
		FirstAgentResponseAt: i.FirstAgentResponseAt(),
		ArchivedAt:           i.ArchivedAt(),
		CreatedAt:            i.CreatedAt(),
	}
}

func ToSLAResponse(i *inquiry.Inquiry, policy inquiry.SLAPolicy, now time.Time) *SLAResponse {
	return &SLAResponse{
		InquirySID:        i.SID(),
		State:             string(i.Classify(now, policy)),
		LastNotifiedState: string(i.LastNotifiedState()),
		ResponseDueAt:     i.CreatedAt().Add(policy.ResponseSLA),
		StaleAt:           i.CreatedAt().Add(policy.StaleAfter),
		FirstResponseAt:   i.FirstAgentResponseAt(),
		EvaluatedAt:       now,
	}
}
