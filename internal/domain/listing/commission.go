package listing

import (
	"errors"
	"fmt"
	"math"
)

// SplitEpsilon is the tolerance applied when checking that percentages sum to 100.
const SplitEpsilon = 0.0001

var (
	ErrInvalidCommissionSplit = errors.New("invalid commission split")
	ErrInvalidCommissionRange = errors.New("invalid commission range")
)

// InvalidCommissionSplitError carries the sum that failed the 100% check.
type InvalidCommissionSplitError struct {
	Sum         float64
	HasPromoter bool
	Reason      string
}

func (e *InvalidCommissionSplitError) Error() string {
	return fmt.Sprintf("invalid commission split: %s (sum=%.4f)", e.Reason, e.Sum)
}

func (e *InvalidCommissionSplitError) Is(target error) bool {
	return target == ErrInvalidCommissionSplit
}

// InvalidCommissionRangeError names the component outside [0, 100].
type InvalidCommissionRangeError struct {
	Field string
	Value float64
}

func (e *InvalidCommissionRangeError) Error() string {
	return fmt.Sprintf("invalid commission range: %s=%v must be within [0, 100]", e.Field, e.Value)
}

func (e *InvalidCommissionRangeError) Is(target error) bool {
	return target == ErrInvalidCommissionRange
}

// SplitInput is the raw commission request for a listing.
type SplitInput struct {
	AgentPct    float64
	PromoterPct float64
	CompanyPct  float64
	HasPromoter bool
}

// ValidatedSplit is a commission split that passed ComputeSplit. Components are
// rounded to two decimals and the company share absorbs the rounding remainder, so
// the stored components always sum to exactly 100.
type ValidatedSplit struct {
	agentPct    float64
	promoterPct float64
	companyPct  float64
	hasPromoter bool
}

func (s ValidatedSplit) AgentPct() float64    { return s.agentPct }
func (s ValidatedSplit) PromoterPct() float64 { return s.promoterPct }
func (s ValidatedSplit) CompanyPct() float64  { return s.companyPct }
func (s ValidatedSplit) HasPromoter() bool    { return s.hasPromoter }

// Input returns the split in request form, for re-validation.
func (s ValidatedSplit) Input() SplitInput {
	return SplitInput{
		AgentPct:    s.agentPct,
		PromoterPct: s.promoterPct,
		CompanyPct:  s.companyPct,
		HasPromoter: s.hasPromoter,
	}
}

// ComputeSplit validates in and returns the normalized split.
//
// Range is checked before the sum, so an input with both defects reports
// ErrInvalidCommissionRange.
func ComputeSplit(in SplitInput) (ValidatedSplit, error) {
	for _, c := range []struct {
		field string
		value float64
	}{
		{"agent_pct", in.AgentPct},
		{"promoter_pct", in.PromoterPct},
		{"company_pct", in.CompanyPct},
	} {
		if math.IsNaN(c.value) || c.value < 0 || c.value > 100 {
			return ValidatedSplit{}, &InvalidCommissionRangeError{Field: c.field, Value: c.value}
		}
	}

	if !in.HasPromoter && in.PromoterPct != 0 {
		return ValidatedSplit{}, &InvalidCommissionSplitError{
			Sum:    in.AgentPct + in.PromoterPct + in.CompanyPct,
			Reason: "promoter_pct must be 0 when no promoter is attached",
		}
	}

	sum := in.AgentPct + in.PromoterPct + in.CompanyPct
	if math.Abs(sum-100) > SplitEpsilon {
		reason := "agent_pct + company_pct must equal 100"
		if in.HasPromoter {
			reason = "agent_pct + promoter_pct + company_pct must equal 100"
		}
		return ValidatedSplit{}, &InvalidCommissionSplitError{Sum: sum, HasPromoter: in.HasPromoter, Reason: reason}
	}

	agent := round2(in.AgentPct)
	promoter := round2(in.PromoterPct)
	company := round2(100 - agent - promoter)
	if company < 0 {
		company = 0
	}

	return ValidatedSplit{
		agentPct:    agent,
		promoterPct: promoter,
		companyPct:  company,
		hasPromoter: in.HasPromoter,
	}, nil
}

// ReconstructSplit rebuilds a split from persisted columns without validation.
func ReconstructSplit(agentPct, promoterPct, companyPct float64, hasPromoter bool) ValidatedSplit {
	return ValidatedSplit{
		agentPct:    agentPct,
		promoterPct: promoterPct,
		companyPct:  companyPct,
		hasPromoter: hasPromoter,
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
