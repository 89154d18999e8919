package portal

import (
	"go.uber.org/zap"

	"studentportal/internal/metrics"
)

// CourseInput is a taught course snapshot as the portal front end holds it.
type CourseInput struct {
	metrics.DateInterval
	Status           string                      `json:"status"`
	TheoreticalHours float64                     `json:"theoretical_hours"`
	PracticalHours   float64                     `json:"practical_hours"`
	Attendances      []metrics.AttendanceSession `json:"attendances"`
	Hours            []metrics.HourRecord        `json:"hours"`
	Grades           []metrics.GradeEntry        `json:"grades"`
}

// SessionReport is the attendance of one dated session.
type SessionReport struct {
	Date string `json:"date"`
	AttendanceReport
}

// GradeReport totals a student's evaluations.
type GradeReport struct {
	metrics.GradeTotal
	Percent int `json:"percent"`
}

// CourseSummary is everything the course page derives from its records.
type CourseSummary struct {
	Status          metrics.Entry    `json:"status"`
	Progress        *int             `json:"progress"`
	Sessions        []SessionReport  `json:"sessions"`
	Attendance      AttendanceReport `json:"attendance"`
	Hours           HoursReport      `json:"hours"`
	HoursCompletion int              `json:"hours_completion"`
	Grades          GradeReport      `json:"grades"`
}

// CourseSummary derives the course page figures. Session order is kept as
// given; overall attendance pools the records of every session.
func (s *Service) CourseSummary(in CourseInput) CourseSummary {
	sessions := make([]SessionReport, 0, len(in.Attendances))
	var all []metrics.AttendanceRecord
	for _, sess := range in.Attendances {
		sessions = append(sessions, SessionReport{
			Date:             sess.Date,
			AttendanceReport: s.Attendance(sess.Records),
		})
		all = append(all, sess.Records...)
	}

	grades := metrics.GradeTotals(in.Grades)
	out := CourseSummary{
		Status:          s.Label(metrics.AcademicStatus, in.Status),
		Progress:        s.progressOrNil(in.DateInterval),
		Sessions:        sessions,
		Attendance:      s.Attendance(all),
		Hours:           s.Hours(in.Hours),
		HoursCompletion: metrics.HoursCompletion(in.Hours, in.TheoreticalHours+in.PracticalHours),
		Grades:          GradeReport{GradeTotal: grades, Percent: grades.Percent()},
	}

	s.log.Debug("course summary computed",
		zap.Int("sessions", len(sessions)),
		zap.Int("attendance_records", out.Attendance.Total),
		zap.Float64("hours", out.Hours.Cumulative),
	)
	return out
}
