package inquiry

import "time"

// SLAState is the response-time classification of an inquiry.
type SLAState string

const (
	SLAStateOnTime           SLAState = "on_time"
	SLAStateBreached         SLAState = "breached"
	SLAStatePendingWithinSLA SLAState = "pending_within_sla"
	SLAStatePendingBreached  SLAState = "pending_breached"
	SLAStateStale            SLAState = "stale"
)

// IsViolation reports whether the state counts against the assigned agent.
func (s SLAState) IsViolation() bool {
	return s == SLAStateBreached || s == SLAStatePendingBreached || s == SLAStateStale
}

// SLAPolicy holds the two independent thresholds used for classification.
type SLAPolicy struct {
	ResponseSLA time.Duration
	StaleAfter  time.Duration
}

// NewSLAPolicy builds a policy from the hour and day settings.
func NewSLAPolicy(slaHours, staleDays int64) SLAPolicy {
	return SLAPolicy{
		ResponseSLA: time.Duration(slaHours) * time.Hour,
		StaleAfter:  time.Duration(staleDays) * 24 * time.Hour,
	}
}

// Classify evaluates an inquiry at now. Elapsed time equal to a threshold is still
// within it. An unanswered inquiry past StaleAfter is Stale whether or not it is
// also past the response SLA.
func Classify(createdAt time.Time, firstResponseAt *time.Time, now time.Time, policy SLAPolicy) SLAState {
	if firstResponseAt != nil {
		if firstResponseAt.Sub(createdAt) <= policy.ResponseSLA {
			return SLAStateOnTime
		}
		return SLAStateBreached
	}

	waited := now.Sub(createdAt)
	switch {
	case waited > policy.StaleAfter:
		return SLAStateStale
	case waited > policy.ResponseSLA:
		return SLAStatePendingBreached
	default:
		return SLAStatePendingWithinSLA
	}
}

// NotifiedState records the most severe threshold already notified for an inquiry.
type NotifiedState string

const (
	NotifiedNone            NotifiedState = "none"
	NotifiedPendingBreached NotifiedState = "pending_breached"
	NotifiedStale           NotifiedState = "stale"
)

func (s NotifiedState) rank() int {
	switch s {
	case NotifiedPendingBreached:
		return 1
	case NotifiedStale:
		return 2
	default:
		return 0
	}
}

func (s NotifiedState) IsValid() bool {
	return s == NotifiedNone || s == NotifiedPendingBreached || s == NotifiedStale
}
