package metrics

import "math"

// AttendanceStatus is the presence state of one student for one session.
type AttendanceStatus string

const (
	Present   AttendanceStatus = "present"
	Absent    AttendanceStatus = "absent"
	Justified AttendanceStatus = "justified"
)

// AttendanceRecord is one (student, session) presence entry.
type AttendanceRecord struct {
	Student int64            `json:"student,omitempty"`
	Status  AttendanceStatus `json:"status"`
	Note    *string          `json:"note,omitempty"`
}

// AttendanceSession groups the records taken on one date.
type AttendanceSession struct {
	Date    string             `json:"date"`
	Records []AttendanceRecord `json:"student_attendance_status"`
}

// CountBy counts the items whose selected field equals value.
func CountBy[T any, V comparable](items []T, selector func(T) V, value V) int {
	n := 0
	for _, it := range items {
		if selector(it) == value {
			n++
		}
	}
	return n
}

// Percent returns part/total*100 rounded to the nearest integer, or 0 when
// total is not positive.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return roundHalfUp(float64(part) / float64(total) * 100)
}

func attendanceStatus(r AttendanceRecord) AttendanceStatus { return r.Status }

// CountByStatus returns how many records carry status.
func CountByStatus(records []AttendanceRecord, status AttendanceStatus) int {
	return CountBy(records, attendanceStatus, status)
}

// PercentageByStatus returns the rounded share of records carrying status.
func PercentageByStatus(records []AttendanceRecord, status AttendanceStatus) int {
	return Percent(CountByStatus(records, status), len(records))
}

func PresentCount(records []AttendanceRecord) int   { return CountByStatus(records, Present) }
func AbsentCount(records []AttendanceRecord) int    { return CountByStatus(records, Absent) }
func JustifiedCount(records []AttendanceRecord) int { return CountByStatus(records, Justified) }

func PresentPercentage(records []AttendanceRecord) int {
	return PercentageByStatus(records, Present)
}

func AbsentPercentage(records []AttendanceRecord) int {
	return PercentageByStatus(records, Absent)
}

func JustifiedPercentage(records []AttendanceRecord) int {
	return PercentageByStatus(records, Justified)
}

// AttendanceSummary holds the counts and percentages of a record set.
type AttendanceSummary struct {
	Total               int `json:"total"`
	Present             int `json:"present"`
	Absent              int `json:"absent"`
	Justified           int `json:"justified"`
	PresentPercentage   int `json:"present_percentage"`
	AbsentPercentage    int `json:"absent_percentage"`
	JustifiedPercentage int `json:"justified_percentage"`
}

// Summarize counts every status in a single pass. Records with a status
// outside the three known values count toward Total only.
func Summarize(records []AttendanceRecord) AttendanceSummary {
	s := AttendanceSummary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case Present:
			s.Present++
		case Absent:
			s.Absent++
		case Justified:
			s.Justified++
		}
	}
	s.PresentPercentage = Percent(s.Present, s.Total)
	s.AbsentPercentage = Percent(s.Absent, s.Total)
	s.JustifiedPercentage = Percent(s.Justified, s.Total)
	return s
}

// Health classifies an attendance rate for progress-bar coloring.
type Health string

const (
	HealthGood     Health = "good"
	HealthWarning  Health = "warning"
	HealthCritical Health = "critical"
)

// Thresholds are the lower bounds (inclusive) of the good and warning bands.
type Thresholds struct {
	Good    int `json:"good"`
	Warning int `json:"warning"`
}

// DefaultThresholds pending product-owner confirmation.
var DefaultThresholds = Thresholds{Good: 75, Warning: 50}

// Classify maps a present percentage to a health band.
func (t Thresholds) Classify(presentPercent int) Health {
	switch {
	case presentPercent >= t.Good:
		return HealthGood
	case presentPercent >= t.Warning:
		return HealthWarning
	default:
		return HealthCritical
	}
}

// DefaultSessionItems builds the initial records of a new session: every
// enrolled student starts present.
func DefaultSessionItems(students []int64) []AttendanceRecord {
	items := make([]AttendanceRecord, 0, len(students))
	for _, id := range students {
		items = append(items, AttendanceRecord{Student: id, Status: Present})
	}
	return items
}

// roundHalfUp matches the rounding of percentages shown in the portal,
// where .5 always rounds toward +Inf.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
