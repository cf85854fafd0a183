package valueobjects

import "fmt"

type NotificationType string

const (
	NotificationTypeRecruiterBonus NotificationType = "recruiter_bonus"
	NotificationTypeSLABreach      NotificationType = "sla_breach"
	NotificationTypeInquiryStale   NotificationType = "inquiry_stale"
)

// relatedTypes maps each notification type to the kind of entity it links to.
var relatedTypes = map[NotificationType]string{
	NotificationTypeRecruiterBonus: "listing",
	NotificationTypeSLABreach:      "inquiry",
	NotificationTypeInquiryStale:   "inquiry",
}

func NewNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	_, ok := relatedTypes[t]
	return ok
}

// RelatedType is "listing" or "inquiry", or empty for an unknown type.
func (t NotificationType) RelatedType() string { return relatedTypes[t] }
