package usecases

import (
	"context"
	"maps"
	"sync"

	"github.com/orris-inc/estatehub/internal/domain/setting"
)

type mockSettingRepository struct {
	GetByKeyFunc       func(ctx context.Context, key string) (*setting.SystemSetting, error)
	GetAllFunc         func(ctx context.Context) ([]*setting.SystemSetting, error)
	UpsertFunc         func(ctx context.Context, s *setting.SystemSetting) error
	CreateIfAbsentFunc func(ctx context.Context, s *setting.SystemSetting) (bool, error)
}

func (m *mockSettingRepository) GetByKey(ctx context.Context, key string) (*setting.SystemSetting, error) {
	if m.GetByKeyFunc != nil {
		return m.GetByKeyFunc(ctx, key)
	}
	return nil, setting.ErrSettingNotFound
}

func (m *mockSettingRepository) GetAll(ctx context.Context) ([]*setting.SystemSetting, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockSettingRepository) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, s)
	}
	return nil
}

func (m *mockSettingRepository) CreateIfAbsent(ctx context.Context, s *setting.SystemSetting) (bool, error) {
	if m.CreateIfAbsentFunc != nil {
		return m.CreateIfAbsentFunc(ctx, s)
	}
	return true, nil
}

// newMemorySettingRepository wires the mock to a map keyed by setting key and
// counts GetByKey and GetAll calls.
func newMemorySettingRepository() (*mockSettingRepository, map[string]*setting.SystemSetting, *int) {
	var mu sync.Mutex
	rows := make(map[string]*setting.SystemSetting)
	reads := 0
	repo := &mockSettingRepository{
		GetByKeyFunc: func(ctx context.Context, key string) (*setting.SystemSetting, error) {
			mu.Lock()
			defer mu.Unlock()
			reads++
			row, ok := rows[key]
			if !ok {
				return nil, setting.ErrSettingNotFound
			}
			return row, nil
		},
		GetAllFunc: func(ctx context.Context) ([]*setting.SystemSetting, error) {
			mu.Lock()
			defer mu.Unlock()
			reads++
			all := make([]*setting.SystemSetting, 0, len(rows))
			for _, row := range rows {
				all = append(all, row)
			}
			return all, nil
		},
		UpsertFunc: func(ctx context.Context, s *setting.SystemSetting) error {
			mu.Lock()
			defer mu.Unlock()
			rows[s.Key()] = s
			return nil
		},
		CreateIfAbsentFunc: func(ctx context.Context, s *setting.SystemSetting) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := rows[s.Key()]; ok {
				return false, nil
			}
			rows[s.Key()] = s
			return true, nil
		},
	}
	return repo, rows, &reads
}

type mockChangePublisher struct {
	published [][]string
	err       error
}

func (m *mockChangePublisher) PublishChanged(ctx context.Context, keys []string) error {
	m.published = append(m.published, keys)
	return m.err
}

// mapTxRunner restores rows when fn fails, the way a rolled back transaction
// would. A nil rows map only counts calls.
type mapTxRunner struct {
	rows  map[string]*setting.SystemSetting
	calls int
}

func (r *mapTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls++
	if r.rows == nil {
		return fn(ctx)
	}
	snapshot := maps.Clone(r.rows)
	if err := fn(ctx); err != nil {
		clear(r.rows)
		maps.Copy(r.rows, snapshot)
		return err
	}
	return nil
}
