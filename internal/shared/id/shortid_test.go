package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWithPrefix(t *testing.T) {
	sid, err := NewListingID()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sid, "lst_"))
	assert.Len(t, sid, len("lst_")+DefaultLength)
	assert.NoError(t, ValidatePrefix(sid, PrefixListing))
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		v, err := Generate(0)
		require.NoError(t, err)
		_, dup := seen[v]
		require.False(t, dup, "duplicate id %s", v)
		seen[v] = struct{}{}
	}
}

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		prefix  string
		wantErr bool
	}{
		{"valid", "inq_abc123XYZ", PrefixInquiry, false},
		{"wrong prefix", "lst_abc123", PrefixInquiry, true},
		{"missing separator", "inqabc", PrefixInquiry, true},
		{"empty short id", "inq_", PrefixInquiry, true},
		{"bad character", "inq_abc-123", PrefixInquiry, true},
		{"empty", "", PrefixInquiry, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrefix(tt.input, tt.prefix)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func FuzzValidatePrefix(f *testing.F) {
	for _, seed := range []string{"lst_xK9mP2vL3nQ", "lst_", "_", "", "lst__x", "ntf_中文"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		if ValidatePrefix(input, PrefixListing) != nil {
			return
		}
		_, rest, ok := strings.Cut(input, "_")
		if !ok || rest == "" {
			t.Fatalf("accepted malformed id %q", input)
		}
	})
}
