package listing

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func newTestListing(t *testing.T, listingType ListingType, promoterID *uint) *Listing {
	t.Helper()
	in := SplitInput{AgentPct: 60, CompanyPct: 40}
	if promoterID != nil {
		in = SplitInput{AgentPct: 50, PromoterPct: 10, CompanyPct: 40, HasPromoter: true}
	}
	split, err := ComputeSplit(in)
	require.NoError(t, err)

	l, err := NewListing(CreateParams{
		Title:       "Two bedroom flat",
		Price:       350000,
		ListingType: listingType,
		CreatorID:   1,
		AgentID:     2,
		PromoterID:  promoterID,
	}, DefaultNumberFloor, split)
	require.NoError(t, err)
	return l
}

func TestNewListing(t *testing.T) {
	l := newTestListing(t, ListingTypeSale, uintPtr(5))

	assert.True(t, strings.HasPrefix(l.SID(), "lst_"))
	assert.Equal(t, DefaultNumberFloor, l.ListingNumber())
	assert.Equal(t, StatusPending, l.Status())
	assert.True(t, l.HasPromoter())
	assert.False(t, l.BonusIssued())
	assert.Equal(t, 1, l.Version())
}

func TestNewListing_Validation(t *testing.T) {
	split, err := ComputeSplit(SplitInput{AgentPct: 60, CompanyPct: 40})
	require.NoError(t, err)
	valid := CreateParams{Title: "Plot", Price: 10, ListingType: ListingTypeSale, CreatorID: 1, AgentID: 2}

	tests := []struct {
		name   string
		mutate func(p *CreateParams)
		number int64
	}{
		{name: "missing title", mutate: func(p *CreateParams) { p.Title = "" }},
		{name: "zero price", mutate: func(p *CreateParams) { p.Price = 0 }},
		{name: "bad type", mutate: func(p *CreateParams) { p.ListingType = "lease" }},
		{name: "missing agent", mutate: func(p *CreateParams) { p.AgentID = 0 }},
		{name: "promoter without promoter split", mutate: func(p *CreateParams) { p.PromoterID = uintPtr(3) }},
		{name: "number below floor", number: DefaultNumberFloor - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			if tt.mutate != nil {
				tt.mutate(&p)
			}
			number := tt.number
			if number == 0 {
				number = DefaultNumberFloor
			}
			_, err := NewListing(p, number, split)
			assert.Error(t, err)
		})
	}
}

func TestListing_TransitionTo(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		listingType ListingType
		path        []Status
		to          Status
		wantChanged bool
		wantErr     bool
	}{
		{name: "pending to active", listingType: ListingTypeSale, to: StatusActive, wantChanged: true},
		{name: "pending to sold rejected", listingType: ListingTypeSale, to: StatusSold, wantErr: true},
		{name: "active to sold", listingType: ListingTypeSale, path: []Status{StatusActive}, to: StatusSold, wantChanged: true},
		{name: "active to rented", listingType: ListingTypeRent, path: []Status{StatusActive}, to: StatusRented, wantChanged: true},
		{name: "sale cannot be rented", listingType: ListingTypeSale, path: []Status{StatusActive}, to: StatusRented, wantErr: true},
		{name: "sold is terminal", listingType: ListingTypeSale, path: []Status{StatusActive, StatusSold}, to: StatusActive, wantErr: true},
		{name: "repeat terminal is a no-op", listingType: ListingTypeSale, path: []Status{StatusActive, StatusSold}, to: StatusSold},
		{name: "unknown status", listingType: ListingTypeSale, to: "archived", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestListing(t, tt.listingType, nil)
			for _, s := range tt.path {
				_, err := l.TransitionTo(s, at)
				require.NoError(t, err)
			}
			version := l.Version()

			changed, err := l.TransitionTo(tt.to, at)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidStatusTransition))
				assert.Equal(t, version, l.Version())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.to, l.Status())
			if tt.to.IsTerminal() {
				require.NotNil(t, l.ClosedAt())
				assert.Equal(t, at, *l.ClosedAt())
			}
		})
	}
}
