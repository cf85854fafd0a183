package usecases

import (
	"context"
	"sync"
	"time"

	settingUsecases "github.com/orris-inc/estatehub/internal/application/setting/usecases"
	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/domain/listing"
	"github.com/orris-inc/estatehub/internal/domain/referral"
	"github.com/orris-inc/estatehub/internal/domain/shared/events"
	"github.com/orris-inc/estatehub/internal/domain/user"
)

// memoryListingRepository keeps listings in a map and enforces the version and
// bonus_issued guards the SQL repository applies.
type memoryListingRepository struct {
	mu       sync.Mutex
	nextID   uint
	listings map[string]*listing.Listing
	creates  int

	CreateFunc func(ctx context.Context, l *listing.Listing) error
}

func newMemoryListingRepository() *memoryListingRepository {
	return &memoryListingRepository{listings: make(map[string]*listing.Listing)}
}

func (m *memoryListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, l)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	l.SetID(m.nextID)
	m.listings[l.SID()] = clone(l)
	m.creates++
	return nil
}

func (m *memoryListingRepository) GetByID(ctx context.Context, id uint) (*listing.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.listings {
		if l.ID() == id {
			return clone(l), nil
		}
	}
	return nil, listing.ErrListingNotFound
}

func (m *memoryListingRepository) GetBySID(ctx context.Context, sid string) (*listing.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.listings[sid]
	if !ok {
		return nil, listing.ErrListingNotFound
	}
	return clone(l), nil
}

func (m *memoryListingRepository) UpdateStatus(ctx context.Context, l *listing.Listing, expectedVersion int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.listings[l.SID()]
	if !ok {
		return listing.ErrListingNotFound
	}
	if stored.Version() != expectedVersion {
		return listing.ErrConcurrentModification
	}
	updated := clone(l)
	if stored.BonusIssued() {
		updated.MarkBonusIssued()
	}
	m.listings[l.SID()] = updated
	return nil
}

func (m *memoryListingRepository) MarkBonusIssued(ctx context.Context, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for sid, l := range m.listings {
		if l.ID() != id {
			continue
		}
		if l.BonusIssued() {
			return false, nil
		}
		updated := clone(l)
		updated.MarkBonusIssued()
		m.listings[sid] = updated
		return true, nil
	}
	return false, nil
}

func (m *memoryListingRepository) put(l *listing.Listing) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	l.SetID(m.nextID)
	m.listings[l.SID()] = clone(l)
}

func clone(l *listing.Listing) *listing.Listing {
	return listing.ReconstructListing(
		l.ID(), l.SID(), l.ListingNumber(), l.Title(), l.Price(), l.ListingType(), l.Status(),
		l.CreatorID(), l.AgentID(), l.PromoterID(), l.Split(), l.BonusIssued(), l.Version(),
		l.ClosedAt(), l.CreatedAt(), l.UpdatedAt(),
	)
}

type mockAllocator struct {
	NextFunc func(ctx context.Context) (int64, error)

	mu    sync.Mutex
	calls int
}

func (m *mockAllocator) Next(ctx context.Context) (int64, error) {
	m.mu.Lock()
	m.calls++
	calls := m.calls
	m.mu.Unlock()
	if m.NextFunc != nil {
		return m.NextFunc(ctx)
	}
	return listing.DefaultNumberFloor + int64(calls) - 1, nil
}

type mockTxRunner struct {
	mu    sync.Mutex
	calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return fn(ctx)
}

type mockAccountRepository struct {
	accounts map[uint]*user.Account
}

func (m *mockAccountRepository) GetByID(ctx context.Context, id uint) (*user.Account, error) {
	a, ok := m.accounts[id]
	if !ok {
		return nil, user.ErrAccountNotFound
	}
	return a, nil
}

func (m *mockAccountRepository) ListActiveIDsByRole(ctx context.Context, role user.Role) ([]uint, error) {
	var ids []uint
	for id, a := range m.accounts {
		if a.Role() == role && a.IsActive() {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// memoryBonusRepository enforces the (listing, referrer) uniqueness.
type memoryBonusRepository struct {
	mu      sync.Mutex
	records []*referral.RecruiterBonusRecord
}

func (m *memoryBonusRepository) Create(ctx context.Context, r *referral.RecruiterBonusRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.records {
		if existing.ListingID() == r.ListingID() && existing.ReferrerID() == r.ReferrerID() {
			return referral.ErrBonusAlreadyRecorded
		}
	}
	r.SetID(uint(len(m.records) + 1))
	m.records = append(m.records, r)
	return nil
}

func (m *memoryBonusRepository) ListByListing(ctx context.Context, listingID uint) ([]*referral.RecruiterBonusRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*referral.RecruiterBonusRecord
	for _, r := range m.records {
		if r.ListingID() == listingID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryBonusRepository) ListByReferrer(ctx context.Context, referrerID uint, limit, offset int) ([]*referral.RecruiterBonusRecord, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*referral.RecruiterBonusRecord
	for _, r := range m.records {
		if r.ReferrerID() == referrerID {
			out = append(out, r)
		}
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

type mockPolicyReader struct {
	policy settingUsecases.Policy
	err    error
}

func (m *mockPolicyReader) Policy(ctx context.Context) (settingUsecases.Policy, error) {
	return m.policy, m.err
}

func bonusPolicy(enabled bool, amount float64) *mockPolicyReader {
	return &mockPolicyReader{policy: settingUsecases.Policy{
		BonusEnabled: enabled,
		BonusAmount:  amount,
		SLA:          inquiry.NewSLAPolicy(24, 7),
	}}
}

type mockPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
	err    error
}

func (m *mockPublisher) Dispatch(ctx context.Context, event events.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return m.err
}

var testNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
