package listing

import (
	"fmt"
	"time"

	"github.com/orris-inc/estatehub/internal/shared/biztime"
	"github.com/orris-inc/estatehub/internal/shared/id"
)

const maxTitleLength = 200

// Listing is a property offered on the marketplace. listingNumber is the
// human-facing sequential number and never changes once assigned.
type Listing struct {
	id            uint
	sid           string
	listingNumber int64
	title         string
	price         float64
	listingType   ListingType
	status        Status
	creatorID     uint
	agentID       uint
	promoterID    *uint
	split         ValidatedSplit
	bonusIssued   bool
	version       int
	closedAt      *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// CreateParams holds the caller-supplied fields of a new listing.
type CreateParams struct {
	Title       string
	Price       float64
	ListingType ListingType
	CreatorID   uint
	AgentID     uint
	PromoterID  *uint
}

// NewListing creates a pending listing. split must have been computed with
// HasPromoter matching params.PromoterID.
func NewListing(params CreateParams, listingNumber int64, split ValidatedSplit) (*Listing, error) {
	if params.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(params.Title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if params.Price <= 0 {
		return nil, fmt.Errorf("price must be positive")
	}
	if !params.ListingType.IsValid() {
		return nil, fmt.Errorf("invalid listing type: %s", params.ListingType)
	}
	if params.CreatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if params.AgentID == 0 {
		return nil, fmt.Errorf("agent ID is required")
	}
	if params.PromoterID != nil && *params.PromoterID == 0 {
		return nil, fmt.Errorf("promoter ID cannot be zero")
	}
	if split.HasPromoter() != (params.PromoterID != nil) {
		return nil, fmt.Errorf("commission split promoter flag does not match listing promoter")
	}
	if listingNumber < DefaultNumberFloor {
		return nil, fmt.Errorf("listing number %d is below floor %d", listingNumber, DefaultNumberFloor)
	}

	sid, err := id.NewListingID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate listing ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Listing{
		sid:           sid,
		listingNumber: listingNumber,
		title:         params.Title,
		price:         params.Price,
		listingType:   params.ListingType,
		status:        StatusPending,
		creatorID:     params.CreatorID,
		agentID:       params.AgentID,
		promoterID:    params.PromoterID,
		split:         split,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructListing rebuilds a listing from persistence.
func ReconstructListing(
	id uint,
	sid string,
	listingNumber int64,
	title string,
	price float64,
	listingType ListingType,
	status Status,
	creatorID, agentID uint,
	promoterID *uint,
	split ValidatedSplit,
	bonusIssued bool,
	version int,
	closedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:            id,
		sid:           sid,
		listingNumber: listingNumber,
		title:         title,
		price:         price,
		listingType:   listingType,
		status:        status,
		creatorID:     creatorID,
		agentID:       agentID,
		promoterID:    promoterID,
		split:         split,
		bonusIssued:   bonusIssued,
		version:       version,
		closedAt:      closedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (l *Listing) ID() uint                 { return l.id }
func (l *Listing) SID() string              { return l.sid }
func (l *Listing) ListingNumber() int64     { return l.listingNumber }
func (l *Listing) Title() string            { return l.title }
func (l *Listing) Price() float64           { return l.price }
func (l *Listing) ListingType() ListingType { return l.listingType }
func (l *Listing) Status() Status           { return l.status }
func (l *Listing) CreatorID() uint          { return l.creatorID }
func (l *Listing) AgentID() uint            { return l.agentID }
func (l *Listing) PromoterID() *uint        { return l.promoterID }

// IsManagedBy reports whether userID is the listing's creator or agent.
func (l *Listing) IsManagedBy(userID uint) bool {
	return userID != 0 && (userID == l.creatorID || userID == l.agentID)
}
func (l *Listing) Split() ValidatedSplit    { return l.split }
func (l *Listing) BonusIssued() bool        { return l.bonusIssued }
func (l *Listing) Version() int             { return l.version }
func (l *Listing) ClosedAt() *time.Time     { return l.closedAt }
func (l *Listing) CreatedAt() time.Time     { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time     { return l.updatedAt }

// HasPromoter reports whether a promoter is attached.
func (l *Listing) HasPromoter() bool {
	return l.promoterID != nil
}

// SetID sets the listing ID (only for persistence layer use)
func (l *Listing) SetID(id uint) {
	l.id = id
}

// TransitionTo moves the listing to status to. It returns false without error when
// the listing is already in that status. Sale listings close as sold and rentals
// as rented.
func (l *Listing) TransitionTo(to Status, at time.Time) (bool, error) {
	if !to.IsValid() {
		return false, fmt.Errorf("%w: unknown status %s", ErrInvalidStatusTransition, to)
	}
	if l.status == to {
		return false, nil
	}
	if !l.status.CanTransitionTo(to) {
		return false, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, l.status, to)
	}
	if to.IsTerminal() && to != l.listingType.closingStatus() {
		return false, fmt.Errorf("%w: a %s listing cannot close as %s", ErrInvalidStatusTransition, l.listingType, to)
	}

	l.status = to
	l.updatedAt = at.UTC()
	if to.IsTerminal() {
		closed := at.UTC()
		l.closedAt = &closed
	}
	l.version++
	return true, nil
}

// MarkBonusIssued records that the recruiter bonus for this listing was issued.
func (l *Listing) MarkBonusIssued() {
	l.bonusIssued = true
}
