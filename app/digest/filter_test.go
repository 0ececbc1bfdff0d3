package digest

import (
	"testing"
	"time"
)

func TestMatchesToday(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	sameDay := time.Date(2025, 3, 14, 0, 5, 0, 0, time.UTC)
	previousDay := time.Date(2025, 3, 13, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2025, 3, 15, 0, 0, 1, 0, time.UTC)
	monthEarlier := time.Date(2025, 2, 14, 12, 0, 0, 0, time.UTC)
	yearEarlier := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		published *time.Time
		todayOnly bool
		expected  bool
	}{
		{"filter off always matches", &previousDay, false, true},
		{"filter off matches nil timestamp", nil, false, true},
		{"nil timestamp never matches", nil, true, false},
		{"same UTC day matches regardless of hour", &sameDay, true, true},
		{"previous day excluded", &previousDay, true, false},
		{"next day excluded", &nextDay, true, false},
		{"same day different month excluded", &monthEarlier, true, false},
		{"same date different year excluded", &yearEarlier, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesToday(tt.published, tt.todayOnly, now); got != tt.expected {
				t.Errorf("Expected %v, got: %v", tt.expected, got)
			}
		})
	}
}
