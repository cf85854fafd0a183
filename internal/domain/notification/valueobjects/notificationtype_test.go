package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotificationType(t *testing.T) {
	for _, s := range []string{"recruiter_bonus", "sla_breach", "inquiry_stale"} {
		nt, err := NewNotificationType(s)
		require.NoError(t, err)
		assert.Equal(t, s, nt.String())
	}

	_, err := NewNotificationType("system")
	assert.Error(t, err)
}

func TestNotificationType_RelatedType(t *testing.T) {
	assert.Equal(t, "listing", NotificationTypeRecruiterBonus.RelatedType())
	assert.Equal(t, "inquiry", NotificationTypeSLABreach.RelatedType())
	assert.Equal(t, "inquiry", NotificationTypeInquiryStale.RelatedType())
	assert.Empty(t, NotificationType("system").RelatedType())
}
