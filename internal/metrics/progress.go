package metrics

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar date format used by the institution API.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// ErrInvalidDate is returned by ParseDate for values that are not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// Clock returns the current instant. Callers inject it to pin "now".
type Clock func() time.Time

// DateInterval is an academic period or a course's active window.
type DateInterval struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ParseDate reads a calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidDate, s, err)
	}
	return t, nil
}

// Bounds parses both ends of the interval.
func (d DateInterval) Bounds() (start, end time.Time, err error) {
	if start, err = ParseDate(d.StartDate); err != nil {
		return
	}
	end, err = ParseDate(d.EndDate)
	return
}

// daysBetween counts whole days from a to b, flooring partial days.
func daysBetween(a, b time.Time) int {
	d := b.Sub(a)
	n := int(d / day)
	if d%day < 0 {
		n--
	}
	return n
}

// ProgressPercent reports how far now has advanced through [start, end].
// Anything at or before start is 0 and anything at or after end is 100, so a
// zero-length interval never reaches the division.
func ProgressPercent(start, end, now time.Time) int {
	if !now.After(start) {
		return 0
	}
	if !now.Before(end) {
		return 100
	}
	total := daysBetween(start, end)
	elapsed := daysBetween(start, now)
	if total <= 0 {
		// start and end fall within the same day
		return 0
	}
	return clamp(roundHalfUp(float64(elapsed)/float64(total)*100), 0, 100)
}
