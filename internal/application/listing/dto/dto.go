package dto

import (
	"time"

	"github.com/orris-inc/estatehub/internal/domain/listing"
	"github.com/orris-inc/estatehub/internal/domain/referral"
)

type CreateListingRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	ListingType string   `json:"listing_type" binding:"required,oneof=sale rent"`
	AgentID     uint     `json:"agent_id" binding:"required"`
	PromoterID  *uint    `json:"promoter_id"`
	AgentPct    *float64 `json:"agent_pct" binding:"required"`
	PromoterPct float64  `json:"promoter_pct"`
	CompanyPct  *float64 `json:"company_pct" binding:"required"`
}

type TransitionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending active inactive sold rented"`
}

type CommissionResponse struct {
	AgentPct    float64 `json:"agent_pct"`
	PromoterPct float64 `json:"promoter_pct"`
	CompanyPct  float64 `json:"company_pct"`
}

type ListingResponse struct {
	SID           string             `json:"id"`
	ListingNumber int64              `json:"listing_number"`
	Title         string             `json:"title"`
	Price         float64            `json:"price"`
	ListingType   string             `json:"listing_type"`
	Status        string             `json:"status"`
	CreatorID     uint               `json:"creator_id"`
	AgentID       uint               `json:"agent_id"`
	PromoterID    *uint              `json:"promoter_id,omitempty"`
	Commission    CommissionResponse `json:"commission"`
	BonusIssued   bool               `json:"bonus_issued"`
	ClosedAt      *time.Time         `json:"closed_at,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// TransitionResponse reports the listing after a status request. Changed is false
// when the listing already had the requested status.
type TransitionResponse struct {
	Listing        *ListingResponse `json:"listing"`
	Changed        bool             `json:"changed"`
	BonusQualified bool             `json:"bonus_qualified"`
}

type BonusRecordResponse struct {
	SID              string    `json:"id"`
	ListingID        uint      `json:"listing_id"`
	ReferredID       uint      `json:"referred_id"`
	Amount           float64   `json:"amount"`
	QualifyingStatus string    `json:"qualifying_status"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToListingResponse(l *listing.Listing) *ListingResponse {
	split := l.Split()
	return &ListingResponse{
		SID:           l.SID(),
		ListingNumber: l.ListingNumber(),
		Title:         l.Title(),
		Price:         l.Price(),
		ListingType:   string(l.ListingType()),
		Status:        l.Status().String(),
		CreatorID:     l.CreatorID(),
		AgentID:       l.AgentID(),
		PromoterID:    l.PromoterID(),
		Commission: CommissionResponse{
			AgentPct:    split.AgentPct(),
			PromoterPct: split.PromoterPct(),
			CompanyPct:  split.CompanyPct(),
		},
		BonusIssued: l.BonusIssued(),
		ClosedAt:    l.ClosedAt(),
		CreatedAt:   l.CreatedAt(),
		UpdatedAt:   l.UpdatedAt(),
	}
}

func ToBonusRecordResponses(records []*referral.RecruiterBonusRecord) []BonusRecordResponse {
	out := make([]BonusRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, BonusRecordResponse{
			SID:              r.SID(),
			ListingID:        r.ListingID(),
			ReferredID:       r.ReferredID(),
			Amount:           r.Amount(),
			QualifyingStatus: r.QualifyingStatus(),
			CreatedAt:        r.CreatedAt(),
		})
	}
	return out
}
