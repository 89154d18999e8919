package portal

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentportal/internal/metrics"
)

func TestCourseSummary(t *testing.T) {
	svc := setupService(t)

	in := CourseInput{
		DateInterval:     metrics.DateInterval{StartDate: "2025-01-01", EndDate: "2025-01-11"},
		Status:           "progress",
		TheoreticalHours: 30,
		PracticalHours:   10,
		Attendances: []metrics.AttendanceSession{
			{Date: "2025-01-02", Records: att(metrics.Present, metrics.Present, metrics.Absent, metrics.Justified)},
			{Date: "2025-01-03", Records: att(metrics.Present, metrics.Present, metrics.Present, metrics.Present)},
		},
		Hours: []metrics.HourRecord{
			{ActivityType: metrics.Lecture, HoursCompleted: 4},
			{ActivityType: metrics.Practical, HoursCompleted: "not a number"},
			{ActivityType: metrics.Lecture, HoursCompleted: "6"},
		},
		Grades: []metrics.GradeEntry{{Score: 8, Max: 10}, {Score: 12, Max: 20}},
	}

	out := svc.CourseSummary(in)

	assert.Equal(t, metrics.Entry{Label: "En cours", Color: "blue"}, out.Status)
	require.NotNil(t, out.Progress)
	assert.Equal(t, 50, *out.Progress)

	require.Len(t, out.Sessions, 2)
	assert.Equal(t, "2025-01-02", out.Sessions[0].Date)
	assert.Equal(t, 50, out.Sessions[0].PresentPercentage)
	assert.Equal(t, 100, out.Sessions[1].PresentPercentage)
	assert.Equal(t, metrics.HealthGood, out.Sessions[1].Health)

	assert.Equal(t, 8, out.Attendance.Total)
	assert.Equal(t, 6, out.Attendance.Present)
	assert.Equal(t, 75, out.Attendance.PresentPercentage)
	assert.Equal(t, metrics.HealthGood, out.Attendance.Health)

	assert.Equal(t, 10.0, out.Hours.Cumulative)
	assert.Equal(t, 25, out.HoursCompletion)
	assert.Equal(t, 67, out.Grades.Percent)
}

func TestCourseSummaryEmpty(t *testing.T) {
	svc := setupService(t)

	out := svc.CourseSummary(CourseInput{})

	assert.Equal(t, "Inconnu", out.Status.Label)
	assert.Nil(t, out.Progress)
	assert.Empty(t, out.Sessions)
	assert.Equal(t, 0, out.Attendance.PresentPercentage)
	assert.Equal(t, 0.0, out.Hours.Cumulative)
	assert.Equal(t, 0, out.HoursCompletion)
	assert.Equal(t, 0, out.Grades.Percent)
}

func TestDashboard(t *testing.T) {
	svc := setupService(t)
	five, seven := 5, 7

	out := svc.Dashboard(DashboardInput{
		Year: YearInput{
			DateInterval: metrics.DateInterval{StartDate: "2024-10-01", EndDate: "2025-07-31"},
			Name:         "2024-2025",
			Status:       "progress",
		},
		Enrollment: EnrollmentInput{Status: "enabled", EnrollmentFees: "unpaid"},
		PeriodEnrollments: []metrics.StatusRecord{
			{ID: 1, Status: "validated"},
			{ID: 2, Status: "pending"},
		},
		CourseEnrollments: []metrics.StatusRecord{
			{ID: 10, Status: "validated"},
			{ID: 11, Status: "validated"},
			{ID: 12, Status: "rejected"},
			{ID: 13, Status: "archived"},
		},
		Programs: []metrics.ProgramCredit{{CreditCount: &five}, {CreditCount: &seven}, {}},
	})

	assert.Equal(t, "2024-2025", out.Year.Name)
	assert.Equal(t, "En cours", out.Year.Status.Label)
	require.NotNil(t, out.Year.Progress)
	// 97 of 303 days
	assert.Equal(t, 32, *out.Year.Progress)

	assert.Equal(t, "Actif", out.Enrollment.Label)
	assert.Equal(t, metrics.Entry{Label: "Non payé", Color: "error"}, out.Fees)

	assert.Equal(t, map[string]int{"pending": 1, "validated": 1, "rejected": 0}, out.PeriodEnrollments)
	assert.Equal(t, map[string]int{"pending": 0, "validated": 2, "rejected": 1, "unknown": 1}, out.CourseEnrollments)
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.unknown.WithLabelValues("enrollmentStatus")))

	assert.Equal(t, 12, out.Credits)
}
