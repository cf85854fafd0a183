package usecases

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/domain/setting"
	"github.com/orris-inc/estatehub/internal/shared/biztime"
	"github.com/orris-inc/estatehub/internal/shared/db"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// ChangePublisher tells other instances which keys changed.
type ChangePublisher interface {
	PublishChanged(ctx context.Context, keys []string) error
}

// Policy is the engine-relevant settings snapshot taken at the start of an operation.
type Policy struct {
	BonusEnabled bool
	BonusAmount  float64
	SLA          inquiry.SLAPolicy
}

// EffectiveSetting pairs a schema entry with the value currently in force.
type EffectiveSetting struct {
	Definition setting.Definition
	Value      setting.Value
}

type cachedValue struct {
	value     setting.Value
	expiresAt time.Time
}

// generation identifies a cache state for one key. Invalidate moves it forward,
// so a load that started before an invalidation never writes its result back.
type generation struct {
	epoch uint64
	key   uint64
}

// SettingsStore resolves typed settings with a short-lived local cache. A Set
// drops the local copy and, when a publisher is attached, the copies held by
// other instances.
type SettingsStore struct {
	repo      setting.Repository
	tx        db.Runner
	publisher ChangePublisher
	ttl       time.Duration
	clock     biztime.Clock
	logger    logger.Interface

	mu    sync.RWMutex
	cache map[string]cachedValue
	epoch uint64
	gens  map[string]uint64
}

func NewSettingsStore(repo setting.Repository, tx db.Runner, ttl time.Duration, logger logger.Interface) *SettingsStore {
	return &SettingsStore{
		repo:   repo,
		tx:     tx,
		ttl:    ttl,
		clock:  biztime.NowUTC,
		logger: logger,
		cache:  make(map[string]cachedValue),
		gens:   make(map[string]uint64),
	}
}

// SetPublisher attaches the cross-instance invalidation channel.
func (s *SettingsStore) SetPublisher(p ChangePublisher) {
	s.publisher = p
}

// Get returns the typed value for key, or its default when no usable row exists.
func (s *SettingsStore) Get(ctx context.Context, key string) (setting.Value, error) {
	def, ok := setting.Lookup(key)
	if !ok {
		return setting.Value{}, fmt.Errorf("%w: %s", setting.ErrUnknownSettingKey, key)
	}

	v, gen, ok := s.cached(key)
	if ok {
		return v, nil
	}

	v, err := s.load(ctx, def)
	if err != nil {
		return setting.Value{}, err
	}
	s.store(key, v, gen)
	return v, nil
}

func (s *SettingsStore) load(ctx context.Context, def setting.Definition) (setting.Value, error) {
	row, err := s.repo.GetByKey(ctx, def.Key)
	if errors.Is(err, setting.ErrSettingNotFound) {
		return def.DefaultValue(), nil
	}
	if err != nil {
		return setting.Value{}, fmt.Errorf("failed to load setting %s: %w", def.Key, err)
	}
	return s.typed(def, row), nil
}

// typed falls back to the default when row is nil or no longer matches the schema.
func (s *SettingsStore) typed(def setting.Definition, row *setting.SystemSetting) setting.Value {
	if row == nil {
		return def.DefaultValue()
	}
	v, err := row.Typed()
	if err != nil {
		s.logger.Warnw("stored setting does not match schema, using default",
			"key", def.Key,
			"stored_value", row.RawValue(),
			"default", def.Default,
			"error", err,
		)
		return def.DefaultValue()
	}
	return v
}

// Set validates raw under the key's schema and persists it.
func (s *SettingsStore) Set(ctx context.Context, key, raw string, updatedBy uint) (setting.Value, error) {
	values, err := s.SetMany(ctx, map[string]string{key: raw}, updatedBy)
	if err != nil {
		return setting.Value{}, err
	}
	return values[0], nil
}

// SetMany validates every pair before writing any of them, then writes them in
// one transaction. Values are returned in key order.
func (s *SettingsStore) SetMany(ctx context.Context, changes map[string]string, updatedBy uint) ([]setting.Value, error) {
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	values := make([]setting.Value, 0, len(keys))
	for _, key := range keys {
		def, ok := setting.Lookup(key)
		if !ok {
			return nil, fmt.Errorf("%w: %s", setting.ErrUnknownSettingKey, key)
		}
		v, err := def.Parse(changes[key])
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, v := range values {
			if err := s.persist(ctx, v, updatedBy); err != nil {
				return err
			}
		}
		return nil
	})
	s.Invalidate(keys)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("settings updated", "keys", keys, "updated_by", updatedBy)

	if s.publisher != nil {
		if err := s.publisher.PublishChanged(ctx, keys); err != nil {
			s.logger.Warnw("failed to publish settings change", "keys", keys, "error", err)
		}
	}
	return values, nil
}

func (s *SettingsStore) persist(ctx context.Context, v setting.Value, updatedBy uint) error {
	row, err := s.repo.GetByKey(ctx, v.Key())
	switch {
	case errors.Is(err, setting.ErrSettingNotFound):
		row, err = setting.NewSystemSetting(v, updatedBy)
		if err != nil {
			return err
		}
	case err != nil:
		return fmt.Errorf("failed to load setting %s: %w", v.Key(), err)
	default:
		if err := row.Update(v, updatedBy); err != nil {
			return err
		}
	}

	if err := s.repo.Upsert(ctx, row); err != nil {
		return fmt.Errorf("failed to save setting %s: %w", v.Key(), err)
	}
	return nil
}

// Invalidate drops cached values for keys, or every value when keys is empty.
func (s *SettingsStore) Invalidate(keys []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(keys) == 0 {
		s.epoch++
		clear(s.cache)
		return
	}
	for _, k := range keys {
		s.gens[k]++
		delete(s.cache, k)
	}
}

// List returns every schema key with its effective value. Keys missing from the
// cache are resolved with one read of the whole table.
func (s *SettingsStore) List(ctx context.Context) ([]EffectiveSetting, error) {
	defs := setting.Definitions()
	out := make([]EffectiveSetting, 0, len(defs))

	var rows map[string]*setting.SystemSetting
	for _, def := range defs {
		v, gen, ok := s.cached(def.Key)
		if !ok {
			if rows == nil {
				all, err := s.repo.GetAll(ctx)
				if err != nil {
					return nil, fmt.Errorf("failed to load settings: %w", err)
				}
				rows = make(map[string]*setting.SystemSetting, len(all))
				for _, row := range all {
					rows[row.Key()] = row
				}
			}
			v = s.typed(def, rows[def.Key])
			s.store(def.Key, v, gen)
		}
		out = append(out, EffectiveSetting{Definition: def, Value: v})
	}
	return out, nil
}

// Policy reads the four engine settings.
func (s *SettingsStore) Policy(ctx context.Context) (Policy, error) {
	enabled, err := s.Get(ctx, setting.KeyRecruiterBonusEnabled)
	if err != nil {
		return Policy{}, err
	}
	amount, err := s.Get(ctx, setting.KeyRecruiterBonusAmount)
	if err != nil {
		return Policy{}, err
	}
	slaHours, err := s.Get(ctx, setting.KeyAgentResponseSLAHours)
	if err != nil {
		return Policy{}, err
	}
	staleDays, err := s.Get(ctx, setting.KeyStaleInquiryThresholdDays)
	if err != nil {
		return Policy{}, err
	}

	return Policy{
		BonusEnabled: enabled.Bool(),
		BonusAmount:  amount.Decimal(),
		SLA:          inquiry.NewSLAPolicy(slaHours.Int(), staleDays.Int()),
	}, nil
}

// SeedDefaults writes the default for every key that has no row yet and returns
// how many rows it created.
func (s *SettingsStore) SeedDefaults(ctx context.Context) (int, error) {
	created := 0
	for _, def := range setting.Definitions() {
		row, err := setting.NewSystemSetting(def.DefaultValue(), 0)
		if err != nil {
			return created, err
		}
		inserted, err := s.repo.CreateIfAbsent(ctx, row)
		if err != nil {
			return created, fmt.Errorf("failed to seed setting %s: %w", def.Key, err)
		}
		if inserted {
			created++
		}
	}
	if created > 0 {
		s.logger.Infow("seeded default settings", "count", created)
	}
	return created, nil
}

// cached returns the live cached value for key, or the generation a subsequent
// store must still match.
func (s *SettingsStore) cached(key string) (setting.Value, generation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gen := generation{epoch: s.epoch, key: s.gens[key]}
	if s.ttl <= 0 {
		return setting.Value{}, gen, false
	}
	c, ok := s.cache[key]
	if !ok || !s.clock().Before(c.expiresAt) {
		return setting.Value{}, gen, false
	}
	return c.value, gen, true
}

// store caches v unless key was invalidated since gen was read.
func (s *SettingsStore) store(key string, v setting.Value, gen generation) {
	if s.ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != gen.epoch || s.gens[key] != gen.key {
		return
	}
	s.cache[key] = cachedValue{value: v, expiresAt: s.clock().Add(s.ttl)}
}
