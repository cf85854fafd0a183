package setting

import "strconv"

// Value is a setting value already parsed under its key's schema type. Only the
// accessor matching Type returns a meaningful result.
type Value struct {
	key        string
	valueType  ValueType
	boolVal    bool
	intVal     int64
	decimalVal float64
	isDefault  bool
}

func (v Value) Key() string      { return v.key }
func (v Value) Type() ValueType  { return v.valueType }
func (v Value) Bool() bool       { return v.boolVal }
func (v Value) Int() int64       { return v.intVal }
func (v Value) Decimal() float64 { return v.decimalVal }

// IsDefault reports whether the value came from the schema default rather than storage.
func (v Value) IsDefault() bool { return v.isDefault }

// Any returns the value as bool, int64 or float64.
func (v Value) Any() any {
	switch v.valueType {
	case ValueTypeBool:
		return v.boolVal
	case ValueTypeInt:
		return v.intVal
	case ValueTypeDecimal:
		return v.decimalVal
	default:
		return nil
	}
}

// String returns the canonical stored form.
func (v Value) String() string {
	switch v.valueType {
	case ValueTypeBool:
		return strconv.FormatBool(v.boolVal)
	case ValueTypeInt:
		return strconv.FormatInt(v.intVal, 10)
	case ValueTypeDecimal:
		return strconv.FormatFloat(v.decimalVal, 'f', 2, 64)
	default:
		return ""
	}
}
