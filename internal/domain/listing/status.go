package listing

import "fmt"

// Status is the lifecycle state of a listing.
type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusSold     Status = "sold"
	StatusRented   Status = "rented"
)

var allowedTransitions = map[Status][]Status{
	StatusPending:  {StatusActive, StatusInactive},
	StatusActive:   {StatusInactive, StatusSold, StatusRented},
	StatusInactive: {StatusActive},
}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive, StatusSold, StatusRented:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusSold || s == StatusRented
}

// CanTransitionTo reports whether s -> to is a legal move.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range allowedTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid listing status: %s", s)
	}
	return st, nil
}

// ListingType says whether a listing is offered for sale or for rent.
type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

func (t ListingType) IsValid() bool {
	return t == ListingTypeSale || t == ListingTypeRent
}

// closingStatus is the terminal status a listing of this type closes with.
func (t ListingType) closingStatus() Status {
	if t == ListingTypeRent {
		return StatusRented
	}
	return StatusSold
}
