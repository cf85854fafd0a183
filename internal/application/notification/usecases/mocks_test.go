package usecases

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/orris-inc/estatehub/internal/domain/notification"
	"github.com/orris-inc/estatehub/internal/domain/user"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// memoryNotificationRepository keeps one row per (event, recipient) like the SQL
// unique index. CreateFunc, when set, runs before the insert and can fail it.
type memoryNotificationRepository struct {
	mu      sync.Mutex
	rows    []*notification.Notification
	creates int

	CreateFunc        func(ctx context.Context, n *notification.Notification) error
	ListFunc          func(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error)
	MarkAsReadFunc    func(ctx context.Context, id, userID uint) error
	MarkAllAsReadFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *memoryNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	m.mu.Lock()
	m.creates++
	m.mu.Unlock()

	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, n); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.rows {
		if existing.EventID() == n.EventID() && existing.UserID() == n.UserID() {
			return n.SetID(existing.ID())
		}
	}
	if err := n.SetID(uint(len(m.rows) + 1)); err != nil {
		return err
	}
	m.rows = append(m.rows, n)
	return nil
}

func (m *memoryNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.rows {
		if n.ID() == id {
			return n, nil
		}
	}
	return nil, notification.ErrNotificationNotFound
}

func (m *memoryNotificationRepository) List(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched []*notification.Notification
	for _, n := range m.rows {
		if n.UserID() == filter.UserID && (!filter.UnreadOnly || !n.IsRead()) {
			matched = append(matched, n)
		}
	}
	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func (m *memoryNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, n := range m.rows {
		if n.UserID() == userID && !n.IsRead() {
			count++
		}
	}
	return count, nil
}

func (m *memoryNotificationRepository) MarkAsRead(ctx context.Context, id, userID uint) error {
	if m.MarkAsReadFunc != nil {
		return m.MarkAsReadFunc(ctx, id, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.rows {
		if n.ID() == id && n.UserID() == userID {
			n.MarkAsRead()
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

func (m *memoryNotificationRepository) MarkAllAsRead(ctx context.Context, userID uint) (int64, error) {
	if m.MarkAllAsReadFunc != nil {
		return m.MarkAllAsReadFunc(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var updated int64
	for _, n := range m.rows {
		if n.UserID() == userID && !n.IsRead() {
			n.MarkAsRead()
			updated++
		}
	}
	return updated, nil
}

func (m *memoryNotificationRepository) CountByRelated(ctx context.Context, notificationType string, relatedType string, relatedID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, n := range m.rows {
		if n.Type().String() == notificationType && n.RelatedType() == relatedType && n.RelatedID() == relatedID {
			count++
		}
	}
	return count, nil
}

func (m *memoryNotificationRepository) recipients() []uint {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]uint, 0, len(m.rows))
	for _, n := range m.rows {
		ids = append(ids, n.UserID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (m *memoryNotificationRepository) createCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creates
}

type mockAccountRepository struct {
	accounts map[uint]*user.Account

	GetByIDFunc             func(ctx context.Context, id uint) (*user.Account, error)
	ListActiveIDsByRoleFunc func(ctx context.Context, role user.Role) ([]uint, error)
}

func (m *mockAccountRepository) GetByID(ctx context.Context, id uint) (*user.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	a, ok := m.accounts[id]
	if !ok {
		return nil, user.ErrAccountNotFound
	}
	return a, nil
}

func (m *mockAccountRepository) ListActiveIDsByRole(ctx context.Context, role user.Role) ([]uint, error) {
	if m.ListActiveIDsByRoleFunc != nil {
		return m.ListActiveIDsByRoleFunc(ctx, role)
	}
	var ids []uint
	for id, a := range m.accounts {
		if a.Role() == role && a.IsActive() {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

type mockDeliverer struct {
	mu        sync.Mutex
	delivered []*notification.Notification
	err       error
}

func (m *mockDeliverer) Deliver(ctx context.Context, n *notification.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delivered = append(m.delivered, n)
	return m.err
}
