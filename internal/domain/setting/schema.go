package setting

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ValueType defines the type a setting value is parsed as
type ValueType string

const (
	ValueTypeBool    ValueType = "bool"
	ValueTypeInt     ValueType = "int"
	ValueTypeDecimal ValueType = "decimal"
)

// Setting keys known to the engine.
const (
	KeyRecruiterBonusEnabled     = "recruiter_bonus_enabled"
	KeyRecruiterBonusAmount      = "recruiter_bonus_amount"
	KeyAgentResponseSLAHours     = "agent_response_sla_hours"
	KeyStaleInquiryThresholdDays = "stale_inquiry_threshold_days"
)

// Definition is the schema entry for one key: its type, its hard-coded default and
// the inclusive numeric range accepted for int and decimal values.
type Definition struct {
	Key         string
	Type        ValueType
	Default     string
	Description string
	Min         float64
	Max         float64
}

var definitions = []Definition{
	{
		Key:         KeyRecruiterBonusEnabled,
		Type:        ValueTypeBool,
		Default:     "false",
		Description: "Issue a recruiter bonus when a promoted listing closes",
	},
	{
		Key:         KeyRecruiterBonusAmount,
		Type:        ValueTypeDecimal,
		Default:     "500.00",
		Description: "Recruiter bonus amount paid to the referrer",
		Min:         0,
		Max:         1_000_000_000,
	},
	{
		Key:         KeyAgentResponseSLAHours,
		Type:        ValueTypeInt,
		Default:     "24",
		Description: "Hours an agent has to send the first response to an inquiry",
		Min:         1,
		Max:         24 * 365,
	},
	{
		Key:         KeyStaleInquiryThresholdDays,
		Type:        ValueTypeInt,
		Default:     "7",
		Description: "Days without an agent response after which an inquiry is stale",
		Min:         1,
		Max:         3650,
	},
}

var definitionsByKey = func() map[string]Definition {
	m := make(map[string]Definition, len(definitions))
	for _, d := range definitions {
		m[d.Key] = d
	}
	return m
}()

// decimalPattern allows at most two fractional digits.
var decimalPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]{1,2})?$`)

// Definitions returns the schema in seeding order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup returns the schema entry for key.
func Lookup(key string) (Definition, bool) {
	d, ok := definitionsByKey[key]
	return d, ok
}

// Parse validates raw against the definition and returns the typed value.
func (d Definition) Parse(raw string) (Value, error) {
	s := strings.TrimSpace(raw)
	v := Value{key: d.Key, valueType: d.Type}

	switch d.Type {
	case ValueTypeBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Value{}, d.invalid(raw, "expected true or false")
		}
		v.boolVal = b

	case ValueTypeInt:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, d.invalid(raw, "expected an integer")
		}
		if float64(n) < d.Min || float64(n) > d.Max {
			return Value{}, d.invalid(raw, "out of range ["+formatBound(d.Min)+", "+formatBound(d.Max)+"]")
		}
		v.intVal = n

	case ValueTypeDecimal:
		if !decimalPattern.MatchString(s) {
			return Value{}, d.invalid(raw, "expected a decimal with at most two fractional digits")
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, d.invalid(raw, "expected a finite decimal")
		}
		if f < d.Min || f > d.Max {
			return Value{}, d.invalid(raw, "out of range ["+formatBound(d.Min)+", "+formatBound(d.Max)+"]")
		}
		v.decimalVal = f

	default:
		return Value{}, d.invalid(raw, "unsupported value type "+string(d.Type))
	}

	return v, nil
}

// DefaultValue returns the parsed hard-coded default.
func (d Definition) DefaultValue() Value {
	v, err := d.Parse(d.Default)
	if err != nil {
		panic("setting: invalid default for " + d.Key + ": " + err.Error())
	}
	v.isDefault = true
	return v
}

func (d Definition) invalid(raw, reason string) error {
	return &InvalidValueError{Key: d.Key, Value: raw, Reason: reason}
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
