package portal

import (
	"go.uber.org/zap"

	"studentportal/internal/metrics"
)

// YearInput is the academic year the dashboard is scoped to.
type YearInput struct {
	metrics.DateInterval
	Name   string `json:"name"`
	Status string `json:"status"`
}

// EnrollmentInput is the student's year enrollment.
type EnrollmentInput struct {
	Status         string `json:"status"`
	EnrollmentFees string `json:"enrollment_fees"`
}

// DashboardInput gathers the records the student dashboard shows.
type DashboardInput struct {
	Year              YearInput               `json:"year"`
	Enrollment        EnrollmentInput         `json:"enrollment"`
	PeriodEnrollments []metrics.StatusRecord  `json:"period_enrollments"`
	CourseEnrollments []metrics.StatusRecord  `json:"course_enrollments"`
	Programs          []metrics.ProgramCredit `json:"programs"`
}

// YearReport is the year card of the dashboard.
type YearReport struct {
	Name     string        `json:"name"`
	Status   metrics.Entry `json:"status"`
	Progress *int          `json:"progress"`
}

// Dashboard is the derived content of the student dashboard.
type Dashboard struct {
	Year              YearReport     `json:"year"`
	Enrollment        metrics.Entry  `json:"enrollment"`
	Fees              metrics.Entry  `json:"fees"`
	PeriodEnrollments map[string]int `json:"period_enrollments"`
	CourseEnrollments map[string]int `json:"course_enrollments"`
	Credits           int            `json:"credits"`
}

// Dashboard derives the dashboard cards.
func (s *Service) Dashboard(in DashboardInput) Dashboard {
	out := Dashboard{
		Year: YearReport{
			Name:     in.Year.Name,
			Status:   s.Label(metrics.AcademicStatus, in.Year.Status),
			Progress: s.progressOrNil(in.Year.DateInterval),
		},
		Enrollment:        s.Label(metrics.ActiveStatus, in.Enrollment.Status),
		Fees:              s.Label(metrics.FeeStatus, in.Enrollment.EnrollmentFees),
		PeriodEnrollments: s.countByCode(metrics.EnrollmentStatus, in.PeriodEnrollments),
		CourseEnrollments: s.countByCode(metrics.EnrollmentStatus, in.CourseEnrollments),
		Credits:           metrics.TotalCredits(in.Programs),
	}

	s.log.Debug("dashboard computed",
		zap.String("year", in.Year.Name),
		zap.Int("period_enrollments", len(in.PeriodEnrollments)),
		zap.Int("course_enrollments", len(in.CourseEnrollments)),
	)
	return out
}
