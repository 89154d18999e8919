package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestProgressPercent(t *testing.T) {
	start := mustDate(t, "2025-01-01")
	end := mustDate(t, "2025-01-11")

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"before start", mustDate(t, "2024-12-01"), 0},
		{"at start", start, 0},
		{"midway", mustDate(t, "2025-01-06"), 50},
		{"partial day floors", mustDate(t, "2025-01-06").Add(23 * time.Hour), 50},
		{"one day in", mustDate(t, "2025-01-02"), 10},
		{"at end", end, 100},
		{"after end", mustDate(t, "2026-01-01"), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressPercent(start, end, tt.now))
		})
	}
}

func TestProgressPercentRoundsHalfUp(t *testing.T) {
	start := mustDate(t, "2025-01-01")
	end := mustDate(t, "2025-01-09") // 8 days

	assert.Equal(t, 13, ProgressPercent(start, end, mustDate(t, "2025-01-02")))
	assert.Equal(t, 38, ProgressPercent(start, end, mustDate(t, "2025-01-04")))
}

func TestProgressPercentZeroLengthInterval(t *testing.T) {
	d := mustDate(t, "2025-03-15")

	for _, now := range []time.Time{d.Add(-time.Hour), d, d.Add(time.Hour), d.AddDate(1, 0, 0)} {
		got := ProgressPercent(d, d, now)
		assert.Contains(t, []int{0, 100}, got)
	}
	assert.Equal(t, 0, ProgressPercent(d, d, d))
	assert.Equal(t, 100, ProgressPercent(d, d, d.Add(time.Second)))
}

func TestProgressPercentSubDayInterval(t *testing.T) {
	start := mustDate(t, "2025-03-15")
	end := start.Add(6 * time.Hour)

	assert.Equal(t, 0, ProgressPercent(start, end, start.Add(time.Hour)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, d.Location())
	assert.Equal(t, 28, d.Day())

	_, err = ParseDate("28/02/2025")
	assert.True(t, errors.Is(err, ErrInvalidDate))
}

func TestDateIntervalBounds(t *testing.T) {
	start, end, err := DateInterval{StartDate: "2025-01-01", EndDate: "2025-06-30"}.Bounds()
	require.NoError(t, err)
	assert.True(t, start.Before(end))

	_, _, err = DateInterval{StartDate: "2025-01-01", EndDate: "soon"}.Bounds()
	assert.ErrorIs(t, err, ErrInvalidDate)
}
