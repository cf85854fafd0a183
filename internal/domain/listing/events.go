package listing

import (
	"time"

	"github.com/orris-inc/estatehub/internal/domain/shared/events"
)

const EventTypeRecruiterBonusQualified = "listing.recruiter_bonus_qualified"

// RecruiterBonusQualifiedEvent is raised once per closed listing whose promoter was
// referred by another user. The referrer receives Amount.
type RecruiterBonusQualifiedEvent struct {
	events.BaseEvent
	ListingID      uint    `json:"listing_id"`
	ListingSID     string  `json:"listing_sid"`
	ListingNumber  int64   `json:"listing_number"`
	ClosingStatus  Status  `json:"closing_status"`
	PromoterID     uint    `json:"promoter_id"`
	ReferrerID     uint    `json:"referrer_id"`
	BonusRecordSID string  `json:"bonus_record_sid"`
	Amount         float64 `json:"amount"`
}

func NewRecruiterBonusQualifiedEvent(
	l *Listing,
	referrerID uint,
	bonusRecordSID string,
	amount float64,
	occurredAt time.Time,
) RecruiterBonusQualifiedEvent {
	var promoterID uint
	if p := l.PromoterID(); p != nil {
		promoterID = *p
	}
	return RecruiterBonusQualifiedEvent{
		BaseEvent:      events.NewBaseEvent(l.SID(), EventTypeRecruiterBonusQualified, occurredAt),
		ListingID:      l.ID(),
		ListingSID:     l.SID(),
		ListingNumber:  l.ListingNumber(),
		ClosingStatus:  l.Status(),
		PromoterID:     promoterID,
		ReferrerID:     referrerID,
		BonusRecordSID: bonusRecordSID,
		Amount:         amount,
	}
}
