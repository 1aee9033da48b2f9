package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{72*time.Hour + 30*time.Minute + 15*time.Second, "3d 0h 30m 15s"},
		{2*time.Hour + 5*time.Second, "2h 0m 5s"},
		{90 * time.Second, "1m 30s"},
		{0, "0s"},
		{-45 * time.Second, "45s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in))
	}
}

func TestFormatExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "unknown", FormatExpiry(time.Time{}, now))
	assert.Equal(t, "expired 5m 0s ago", FormatExpiry(now.Add(-5*time.Minute), now))
	assert.Contains(t, FormatExpiry(now.Add(time.Hour), now), "(in 1h 0m 0s)")
}
