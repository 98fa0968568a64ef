package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"ISO date", "2024-01-10", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), false},
		{"RFC3339", "2024-01-10T08:30:00Z", time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC), false},
		{"date with time", "2024-01-10 08:30", time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC), false},
		{"relative weeks", "2 weeks ago", now.Add(-14 * 24 * time.Hour), false},
		{"relative months", "1 month ago", now.AddDate(0, -1, 0), false},
		{"empty", "", time.Time{}, true},
		{"placeholder dash", "-", time.Time{}, true},
		{"garbage", "someday", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseAnimationDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"go duration", "30s", 30 * time.Second, false},
		{"go duration minutes", "2m", 2 * time.Minute, false},
		{"human seconds", "45 seconds", 45 * time.Second, false},
		{"human minutes", "2 minutes", 2 * time.Minute, false},
		{"human days", "3 days", 72 * time.Hour, false},
		{"zero", "0s", 0, true},
		{"negative", "-10s", 0, true},
		{"garbage", "soon", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnimationDuration(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(start, start))
	assert.Equal(t, 9, DaysBetween(start, start.AddDate(0, 0, 9)))
	assert.Equal(t, -3, DaysBetween(start, start.AddDate(0, 0, -3)))
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "slab-01", TruncatePath("slab-01", 20))
	assert.Equal(t, "...vel-2/slab-01", TruncatePath("site/tower/level-2/slab-01", 16))
	assert.Equal(t, "-01", TruncatePath("slab-01", 3))
}
