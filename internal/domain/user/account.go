// Package user holds the read-only view of platform accounts the rule engine needs:
// roles for recipient resolution and the referral link for recruiter bonuses.
// Account lifecycle is managed elsewhere.
package user

import (
	"context"
	"errors"
)

var ErrAccountNotFound = errors.New("account not found")

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAgent    Role = "agent"
	RolePromoter Role = "promoter"
	RoleMember   Role = "member"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Account struct {
	id           uint
	role         Role
	status       Status
	referredByID *uint
}

func ReconstructAccount(id uint, role Role, status Status, referredByID *uint) *Account {
	return &Account{id: id, role: role, status: status, referredByID: referredByID}
}

func (a *Account) ID() uint            { return a.id }
func (a *Account) Role() Role          { return a.role }
func (a *Account) Status() Status      { return a.status }
func (a *Account) ReferredByID() *uint { return a.referredByID }
func (a *Account) IsActive() bool      { return a.status == StatusActive }

// Actor is the caller of a command, as resolved by the identity middleware.
type Actor struct {
	ID   uint
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

type AccountRepository interface {
	GetByID(ctx context.Context, id uint) (*Account, error)
	ListActiveIDsByRole(ctx context.Context, role Role) ([]uint, error)
}
