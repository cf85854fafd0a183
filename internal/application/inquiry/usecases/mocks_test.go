package usecases

import (
	"context"
	"sort"
	"sync"
	"time"

	settingUsecases "github.com/orris-inc/estatehub/internal/application/setting/usecases"
	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/domain/listing"
	"github.com/orris-inc/estatehub/internal/domain/shared/events"
)

// memoryInquiryRepository mirrors the conditional updates of the SQL repository.
type memoryInquiryRepository struct {
	mu        sync.Mutex
	nextID    uint
	inquiries map[uint]*inquiry.Inquiry

	AdvanceNotifiedStateFunc func(ctx context.Context, id uint, from, to inquiry.NotifiedState) (bool, error)
}

func newMemoryInquiryRepository() *memoryInquiryRepository {
	return &memoryInquiryRepository{inquiries: make(map[uint]*inquiry.Inquiry)}
}

func cloneInquiry(i *inquiry.Inquiry) *inquiry.Inquiry {
	return inquiry.ReconstructInquiry(
		i.ID(), i.SID(), i.ListingID(), i.ListingNumber(), i.AssignedAgentID(),
		i.BuyerName(), i.BuyerEmail(), i.Message(),
		i.FirstAgentResponseAt(), i.LastNotifiedState(), i.ArchivedAt(),
		i.CreatedAt(), i.UpdatedAt(),
	)
}

func (m *memoryInquiryRepository) Create(ctx context.Context, i *inquiry.Inquiry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	i.SetID(m.nextID)
	m.inquiries[i.ID()] = cloneInquiry(i)
	return nil
}

func (m *memoryInquiryRepository) GetByID(ctx context.Context, id uint) (*inquiry.Inquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.inquiries[id]
	if !ok {
		return nil, inquiry.ErrInquiryNotFound
	}
	return cloneInquiry(i), nil
}

func (m *memoryInquiryRepository) GetBySID(ctx context.Context, sid string) (*inquiry.Inquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, i := range m.inquiries {
		if i.SID() == sid {
			return cloneInquiry(i), nil
		}
	}
	return nil, inquiry.ErrInquiryNotFound
}

func (m *memoryInquiryRepository) SetFirstResponse(ctx context.Context, id uint, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.inquiries[id]
	if !ok || i.IsAnswered() || i.IsArchived() {
		return false, nil
	}
	if _, err := i.RecordFirstResponse(at); err != nil {
		return false, err
	}
	return true, nil
}

func (m *memoryInquiryRepository) Archive(ctx context.Context, id uint, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i, ok := m.inquiries[id]; ok {
		i.Archive(at)
	}
	return nil
}

func (m *memoryInquiryRepository) AdvanceNotifiedState(ctx context.Context, id uint, from, to inquiry.NotifiedState) (bool, error) {
	if m.AdvanceNotifiedStateFunc != nil {
		return m.AdvanceNotifiedStateFunc(ctx, id, from, to)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.inquiries[id]
	if !ok || i.LastNotifiedState() != from {
		return false, nil
	}
	i.AdvanceNotified(to)
	return true, nil
}

func (m *memoryInquiryRepository) sorted() []*inquiry.Inquiry {
	out := make([]*inquiry.Inquiry, 0, len(m.inquiries))
	for _, i := range m.inquiries {
		out = append(out, i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID() < out[b].ID() })
	return out
}

func (m *memoryInquiryRepository) ListOpen(ctx context.Context, afterID uint, limit int) ([]*inquiry.Inquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*inquiry.Inquiry
	for _, i := range m.sorted() {
		if i.ID() <= afterID || i.IsAnswered() || i.IsArchived() || i.LastNotifiedState() == inquiry.NotifiedStale {
			continue
		}
		out = append(out, cloneInquiry(i))
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memoryInquiryRepository) ListActive(ctx context.Context, agentID uint) ([]*inquiry.Inquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*inquiry.Inquiry
	for _, i := range m.sorted() {
		if i.IsArchived() || (agentID != 0 && i.AssignedAgentID() != agentID) {
			continue
		}
		out = append(out, cloneInquiry(i))
	}
	return out, nil
}

// seed stores an inquiry created at createdAt, optionally answered after answerAfter.
func (m *memoryInquiryRepository) seed(agentID uint, createdAt time.Time, answerAfter time.Duration) *inquiry.Inquiry {
	i, err := inquiry.NewInquiry(inquiry.CreateParams{
		ListingID:       1,
		ListingNumber:   240226,
		AssignedAgentID: agentID,
		BuyerName:       "Dana Buyer",
		BuyerEmail:      "dana@example.com",
	}, createdAt)
	if err != nil {
		panic(err)
	}
	if answerAfter > 0 {
		if _, err := i.RecordFirstResponse(createdAt.Add(answerAfter)); err != nil {
			panic(err)
		}
	}
	_ = m.Create(context.Background(), i)
	return i
}

type mockListingRepository struct {
	GetBySIDFunc func(ctx context.Context, sid string) (*listing.Listing, error)
}

func (m *mockListingRepository) Create(ctx context.Context, l *listing.Listing) error { return nil }

func (m *mockListingRepository) GetByID(ctx context.Context, id uint) (*listing.Listing, error) {
	return nil, listing.ErrListingNotFound
}

func (m *mockListingRepository) GetBySID(ctx context.Context, sid string) (*listing.Listing, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, listing.ErrListingNotFound
}

func (m *mockListingRepository) UpdateStatus(ctx context.Context, l *listing.Listing, expectedVersion int) error {
	return nil
}

func (m *mockListingRepository) MarkBonusIssued(ctx context.Context, id uint) (bool, error) {
	return false, nil
}

// mockLocker is a per-inquiry try-lock; held lists inquiries locked by someone else.
type mockLocker struct {
	mu     sync.Mutex
	locked map[uint]bool
	held   map[uint]bool
	err    error
}

func newMockLocker() *mockLocker {
	return &mockLocker{locked: make(map[uint]bool), held: make(map[uint]bool)}
}

func (m *mockLocker) TryAcquire(ctx context.Context, inquiryID uint) (func(), bool, error) {
	if m.err != nil {
		return nil, false, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.held[inquiryID] || m.locked[inquiryID] {
		return nil, false, nil
	}
	m.locked[inquiryID] = true
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.locked, inquiryID)
	}, true, nil
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

func (m *mockPublisher) countType(eventType string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.events {
		if e.GetEventType() == eventType {
			n++
		}
	}
	return n
}

type mockPolicyReader struct {
	policy settingUsecases.Policy
	err    error
}

func (m *mockPolicyReader) Policy(ctx context.Context) (settingUsecases.Policy, error) {
	return m.policy, m.err
}

func slaPolicy(hours, days int64) *mockPolicyReader {
	return &mockPolicyReader{policy: settingUsecases.Policy{SLA: inquiry.NewSLAPolicy(hours, days)}}
}

var testNow = time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
