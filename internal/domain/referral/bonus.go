// Package referral models recruiter bonuses: one immutable record per closed
// listing and paid referrer.
package referral

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/orris-inc/estatehub/internal/shared/id"
)

// ErrBonusAlreadyRecorded is returned when a record for the listing and referrer exists.
var ErrBonusAlreadyRecorded = errors.New("recruiter bonus already recorded")

// RecruiterBonusRecord links a referrer to the referred promoter's closed listing.
type RecruiterBonusRecord struct {
	id               uint
	sid              string
	listingID        uint
	referrerID       uint
	referredID       uint
	amount           float64
	qualifyingStatus string
	createdAt        time.Time
}

func NewRecruiterBonusRecord(listingID, referrerID, referredID uint, amount float64, qualifyingStatus string, createdAt time.Time) (*RecruiterBonusRecord, error) {
	if listingID == 0 || referrerID == 0 || referredID == 0 {
		return nil, fmt.Errorf("listing, referrer and referred IDs are required")
	}
	if referrerID == referredID {
		return nil, fmt.Errorf("a user cannot refer themselves")
	}
	if amount < 0 {
		return nil, fmt.Errorf("bonus amount cannot be negative")
	}

	sid, err := id.NewBonusID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate bonus ID: %w", err)
	}

	return &RecruiterBonusRecord{
		sid:              sid,
		listingID:        listingID,
		referrerID:       referrerID,
		referredID:       referredID,
		amount:           amount,
		qualifyingStatus: qualifyingStatus,
		createdAt:        createdAt.UTC(),
	}, nil
}

func ReconstructRecruiterBonusRecord(id uint, sid string, listingID, referrerID, referredID uint, amount float64, qualifyingStatus string, createdAt time.Time) *RecruiterBonusRecord {
	return &RecruiterBonusRecord{
		id:               id,
		sid:              sid,
		listingID:        listingID,
		referrerID:       referrerID,
		referredID:       referredID,
		amount:           amount,
		qualifyingStatus: qualifyingStatus,
		createdAt:        createdAt,
	}
}

func (r *RecruiterBonusRecord) ID() uint                 { return r.id }
func (r *RecruiterBonusRecord) SID() string              { return r.sid }
func (r *RecruiterBonusRecord) ListingID() uint          { return r.listingID }
func (r *RecruiterBonusRecord) ReferrerID() uint         { return r.referrerID }
func (r *RecruiterBonusRecord) ReferredID() uint         { return r.referredID }
func (r *RecruiterBonusRecord) Amount() float64          { return r.amount }
func (r *RecruiterBonusRecord) QualifyingStatus() string { return r.qualifyingStatus }
func (r *RecruiterBonusRecord) CreatedAt() time.Time     { return r.createdAt }

// SetID sets the record ID (only for persistence layer use)
func (r *RecruiterBonusRecord) SetID(id uint) {
	r.id = id
}

type BonusRecordRepository interface {
	// Create returns ErrBonusAlreadyRecorded on a duplicate (listing, referrer) pair
	Create(ctx context.Context, r *RecruiterBonusRecord) error
	ListByListing(ctx context.Context, listingID uint) ([]*RecruiterBonusRecord, error)
	ListByReferrer(ctx context.Context, referrerID uint, limit, offset int) ([]*RecruiterBonusRecord, int64, error)
}
