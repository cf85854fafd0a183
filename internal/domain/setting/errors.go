package setting

import (
	"errors"
	"fmt"
)

var (
	// ErrSettingNotFound is returned when no row exists for a key
	ErrSettingNotFound = errors.New("setting not found")

	// ErrUnknownSettingKey is returned for keys outside the schema
	ErrUnknownSettingKey = errors.New("unknown setting key")

	// ErrInvalidSettingValue is returned when a value does not parse under the key's type
	// or falls outside its allowed range
	ErrInvalidSettingValue = errors.New("invalid setting value")
)

// InvalidValueError describes why a raw value was rejected for a key.
type InvalidValueError struct {
	Key    string
	Value  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for setting %s: %s", e.Value, e.Key, e.Reason)
}

// Is reports a match with ErrInvalidSettingValue.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidSettingValue
}
