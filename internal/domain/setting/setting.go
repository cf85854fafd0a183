package setting

import (
	"fmt"
	"time"

	"github.com/orris-inc/estatehub/internal/shared/biztime"
)

// SystemSetting is a persisted key/value row. The value is kept in its canonical
// string form and typed on read through the key's Definition.
type SystemSetting struct {
	id          uint
	key         string
	value       string
	valueType   ValueType
	description string
	updatedBy   uint
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSystemSetting creates a setting for a schema key holding value.
func NewSystemSetting(value Value, updatedBy uint) (*SystemSetting, error) {
	def, ok := Lookup(value.Key())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSettingKey, value.Key())
	}

	now := biztime.NowUTC()
	return &SystemSetting{
		key:         def.Key,
		value:       value.String(),
		valueType:   def.Type,
		description: def.Description,
		updatedBy:   updatedBy,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructSystemSetting reconstructs a SystemSetting from persistence layer
func ReconstructSystemSetting(
	id uint,
	key string,
	value string,
	valueType ValueType,
	description string,
	updatedBy uint,
	version int,
	createdAt, updatedAt time.Time,
) *SystemSetting {
	return &SystemSetting{
		id:          id,
		key:         key,
		value:       value,
		valueType:   valueType,
		description: description,
		updatedBy:   updatedBy,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *SystemSetting) ID() uint             { return s.id }
func (s *SystemSetting) Key() string          { return s.key }
func (s *SystemSetting) RawValue() string     { return s.value }
func (s *SystemSetting) ValueType() ValueType { return s.valueType }
func (s *SystemSetting) Description() string  { return s.description }
func (s *SystemSetting) UpdatedBy() uint      { return s.updatedBy }
func (s *SystemSetting) Version() int         { return s.version }
func (s *SystemSetting) CreatedAt() time.Time { return s.createdAt }
func (s *SystemSetting) UpdatedAt() time.Time { return s.updatedAt }

// SetID sets the setting ID (only for persistence layer use)
func (s *SystemSetting) SetID(id uint) {
	s.id = id
}

// Typed parses the stored value under the current schema. A row written before a
// schema change may no longer parse; callers fall back to the default then.
func (s *SystemSetting) Typed() (Value, error) {
	def, ok := Lookup(s.key)
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrUnknownSettingKey, s.key)
	}
	return def.Parse(s.value)
}

// Update replaces the value with an already validated one.
func (s *SystemSetting) Update(value Value, updatedBy uint) error {
	if value.Key() != s.key {
		return fmt.Errorf("value for %s applied to setting %s", value.Key(), s.key)
	}
	s.value = value.String()
	s.valueType = value.Type()
	s.updatedBy = updatedBy
	s.version++
	s.updatedAt = biztime.NowUTC()
	return nil
}
