package metrics

import (
	"math"

	"github.com/spf13/cast"
)

// ActivityType is the kind of instruction an hour record logs.
type ActivityType string

const (
	Lecture           ActivityType = "lecture"
	Tutorial          ActivityType = "tutorial"
	Practical         ActivityType = "practical"
	PracticalTutorial ActivityType = "practical_tutorial"
)

// HourRecord is a logged block of instructional time against a taught course.
// HoursCompleted keeps whatever the API sent: a number, a numeric string, or
// garbage.
type HourRecord struct {
	ActivityType   ActivityType `json:"activity_type,omitempty"`
	HoursCompleted any          `json:"hours_completed"`
}

// Hours coerces the completed hours to a number. Values that cannot be
// coerced, and non-finite results, count as zero.
func (r HourRecord) Hours() float64 {
	v, err := cast.ToFloat64E(r.HoursCompleted)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// CumulativeHours sums the completed hours of a course.
func CumulativeHours(records []HourRecord) float64 {
	total := 0.0
	for _, r := range records {
		total += r.Hours()
	}
	return total
}

// HoursByActivity sums completed hours per activity type. Records without a
// type are grouped under the empty key.
func HoursByActivity(records []HourRecord) map[ActivityType]float64 {
	out := make(map[ActivityType]float64)
	for _, r := range records {
		out[r.ActivityType] += r.Hours()
	}
	return out
}

// HoursCompletion is the share of planned hours already given, clamped to
// [0,100]. A course without planned hours reports 0.
func HoursCompletion(records []HourRecord, planned float64) int {
	if planned <= 0 || math.IsNaN(planned) {
		return 0
	}
	p := roundHalfUp(CumulativeHours(records) / planned * 100)
	return clamp(p, 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
