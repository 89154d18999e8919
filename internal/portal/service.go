package portal

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"studentportal/internal/metrics"
)

// Options configures a Service. Zero values fall back to defaults.
type Options struct {
	Locale     metrics.Locale
	Thresholds metrics.Thresholds
	Clock      metrics.Clock
}

// Service turns record snapshots supplied by the caller into the derived
// values the portal displays. It holds no record state.
type Service struct {
	labeler    metrics.Labeler
	thresholds metrics.Thresholds
	now        metrics.Clock
	log        *zap.Logger
	unknown    *prometheus.CounterVec
}

// NewService creates a service and registers its collectors with reg.
func NewService(opts Options, log *zap.Logger, reg prometheus.Registerer) *Service {
	if opts.Thresholds == (metrics.Thresholds{}) {
		opts.Thresholds = metrics.DefaultThresholds
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	unknown := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "unknown_status_total",
		Help:      "Status codes outside their closed enumeration, by domain.",
	}, []string{"domain"})
	reg.MustRegister(unknown)

	return &Service{
		labeler:    metrics.Labeler{Locale: opts.Locale},
		thresholds: opts.Thresholds,
		now:        opts.Clock,
		log:        log,
		unknown:    unknown,
	}
}

// Thresholds returns the attendance health bands in use.
func (s *Service) Thresholds() metrics.Thresholds { return s.thresholds }

// Label describes a status code, counting codes the tables do not know.
func (s *Service) Label(domain metrics.Domain, code string) metrics.Entry {
	e, ok := s.labeler.Describe(domain, code)
	if !ok {
		domainLabel := string(domain)
		if !metrics.KnownDomain(domain) {
			domainLabel = "other"
		}
		s.unknown.WithLabelValues(domainLabel).Inc()
		s.log.Debug("unrecognised status code",
			zap.String("domain", string(domain)),
			zap.String("code", code),
		)
	}
	return e
}

// AttendanceReport is the display form of one record set.
type AttendanceReport struct {
	metrics.AttendanceSummary
	Health metrics.Health `json:"health"`
}

// Attendance summarises records and classifies the present rate.
func (s *Service) Attendance(records []metrics.AttendanceRecord) AttendanceReport {
	sum := metrics.Summarize(records)
	for _, r := range records {
		if r.Status != metrics.Present && r.Status != metrics.Absent && r.Status != metrics.Justified {
			s.Label(metrics.AttendanceDomain, string(r.Status))
		}
	}
	return AttendanceReport{
		AttendanceSummary: sum,
		Health:            s.thresholds.Classify(sum.PresentPercentage),
	}
}

// HoursReport totals the hour records of one course.
type HoursReport struct {
	Cumulative float64                          `json:"cumulative"`
	ByActivity map[metrics.ActivityType]float64 `json:"by_activity"`
}

// Hours sums completed hours, overall and per activity type.
func (s *Service) Hours(records []metrics.HourRecord) HoursReport {
	return HoursReport{
		Cumulative: metrics.CumulativeHours(records),
		ByActivity: metrics.HoursByActivity(records),
	}
}

// Progress parses the interval and measures it against the service clock.
func (s *Service) Progress(interval metrics.DateInterval) (int, error) {
	start, end, err := interval.Bounds()
	if err != nil {
		return 0, err
	}
	return metrics.ProgressPercent(start, end, s.now()), nil
}

// progressOrNil is Progress for embedded intervals, where bad dates are a
// data-shape problem and simply leave the value out.
func (s *Service) progressOrNil(interval metrics.DateInterval) *int {
	if interval.StartDate == "" || interval.EndDate == "" {
		return nil
	}
	p, err := s.Progress(interval)
	if err != nil {
		s.log.Debug("skipping progress", zap.Error(err))
		return nil
	}
	return &p
}

// FilterResult is a status-filtered record set.
type FilterResult struct {
	Status metrics.Entry          `json:"status"`
	Count  int                    `json:"count"`
	Items  []metrics.StatusRecord `json:"items"`
}

// Filter keeps the records carrying status, in input order.
func (s *Service) Filter(domain metrics.Domain, records []metrics.StatusRecord, status string) FilterResult {
	items := metrics.FilterByStatus(records, metrics.StatusRecord.GetStatus, status)
	return FilterResult{
		Status: s.Label(domain, status),
		Count:  len(items),
		Items:  items,
	}
}

// countByCode counts records for every known code of domain. Records with
// any other code are grouped under "unknown".
func (s *Service) countByCode(domain metrics.Domain, records []metrics.StatusRecord) map[string]int {
	counts := make(map[string]int)
	matched := 0
	for _, code := range s.labeler.Codes(domain) {
		n := metrics.CountWithStatus(records, metrics.StatusRecord.GetStatus, code)
		counts[code] = n
		matched += n
	}
	if rest := len(records) - matched; rest > 0 {
		counts["unknown"] = rest
		for _, r := range records {
			if _, ok := s.labeler.Describe(domain, r.Status); !ok {
				s.Label(domain, r.Status)
			}
		}
	}
	return counts
}
