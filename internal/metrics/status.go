package metrics

import "fmt"

// Domain names one closed status enumeration.
type Domain string

const (
	ApplicationStatus Domain = "applicationStatus"
	AcademicStatus    Domain = "academicStatus" // year, period and course
	EnrollmentStatus  Domain = "enrollmentStatus"
	ActiveStatus      Domain = "activeStatus"
	FeeStatus         Domain = "feeStatus"
	AttendanceDomain  Domain = "attendanceStatus"
	PeriodType        Domain = "periodType"
	ActivityDomain    Domain = "activityType"
	MaritalStatus     Domain = "maritalStatus"
)

// DefaultColor is the neutral tag color for anything unrecognised.
const DefaultColor = "default"

// Locale selects a label catalog.
type Locale string

const (
	French  Locale = "fr"
	English Locale = "en"
)

// DefaultLocale matches the institution's portal language.
const DefaultLocale = French

// Entry is the display form of one status code.
type Entry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type catalog struct {
	fallback string
	domains  map[Domain]map[string]Entry
}

var catalogs = map[Locale]catalog{
	French: {
		fallback: "Inconnu",
		domains: map[Domain]map[string]Entry{
			ApplicationStatus: {
				"pending":    {"En attente", "warning"},
				"validated":  {"Validée", "success"},
				"rejected":   {"Rejetée", "error"},
				"reoriented": {"Réorientée", "info"},
			},
			AcademicStatus: {
				"pending":   {"En attente", "orange"},
				"progress":  {"En cours", "blue"},
				"finished":  {"Terminé", "green"},
				"suspended": {"Suspendu", "red"},
			},
			EnrollmentStatus: {
				"pending":   {"En attente", "warning"},
				"validated": {"Validé", "success"},
				"rejected":  {"Rejeté", "error"},
			},
			ActiveStatus: {
				"enabled":  {"Actif", "success"},
				"disabled": {"Désactivé", DefaultColor},
			},
			FeeStatus: {
				"paid":   {"Payé", "success"},
				"unpaid": {"Non payé", "error"},
			},
			AttendanceDomain: {
				"present":   {"Présent", "green"},
				"absent":    {"Absent", "red"},
				"justified": {"Absence justifiée", "warning"},
			},
			PeriodType: {
				"semester":       {"Semestre", DefaultColor},
				"block_semester": {"Bloc de semestre", DefaultColor},
				"quarter":        {"Trimestre", DefaultColor},
				"term":           {"Période", DefaultColor},
			},
			ActivityDomain: {
				"lecture":            {"Cours magistral (CM)", "blue"},
				"tutorial":           {"Travaux dirigés (TD)", "blue"},
				"practical":          {"Travaux pratiques (TP)", "blue"},
				"practical_tutorial": {"Travaux pratiques et dirigés", "blue"},
			},
			MaritalStatus: {
				"single":   {"Célibataire", DefaultColor},
				"married":  {"Marié(e)", DefaultColor},
				"divorced": {"Divorcé(e)", DefaultColor},
				"widowed":  {"Veuf(ve)", DefaultColor},
			},
		},
	},
	English: {
		fallback: "Unknown",
		domains: map[Domain]map[string]Entry{
			ApplicationStatus: {
				"pending":    {"Pending", "warning"},
				"validated":  {"Validated", "success"},
				"rejected":   {"Rejected", "error"},
				"reoriented": {"Reoriented", "info"},
			},
			AcademicStatus: {
				"pending":   {"Pending", "orange"},
				"progress":  {"In progress", "blue"},
				"finished":  {"Finished", "green"},
				"suspended": {"Suspended", "red"},
			},
			EnrollmentStatus: {
				"pending":   {"Pending", "warning"},
				"validated": {"Validated", "success"},
				"rejected":  {"Rejected", "error"},
			},
			ActiveStatus: {
				"enabled":  {"Enabled", "success"},
				"disabled": {"Disabled", DefaultColor},
			},
			FeeStatus: {
				"paid":   {"Paid", "success"},
				"unpaid": {"Unpaid", "error"},
			},
			AttendanceDomain: {
				"present":   {"Present", "green"},
				"absent":    {"Absent", "red"},
				"justified": {"Justified absence", "warning"},
			},
			PeriodType: {
				"semester":       {"Semester", DefaultColor},
				"block_semester": {"Semester block", DefaultColor},
				"quarter":        {"Quarter", DefaultColor},
				"term":           {"Term", DefaultColor},
			},
			ActivityDomain: {
				"lecture":            {"Lecture", "blue"},
				"tutorial":           {"Tutorial", "blue"},
				"practical":          {"Practical", "blue"},
				"practical_tutorial": {"Practical and tutorial", "blue"},
			},
			MaritalStatus: {
				"single":   {"Single", DefaultColor},
				"married":  {"Married", DefaultColor},
				"divorced": {"Divorced", DefaultColor},
				"widowed":  {"Widowed", DefaultColor},
			},
		},
	},
}

// ParseLocale accepts the locales a catalog exists for.
func ParseLocale(s string) (Locale, error) {
	l := Locale(s)
	if _, ok := catalogs[l]; !ok {
		return "", fmt.Errorf("unsupported locale %q", s)
	}
	return l, nil
}

// Labeler resolves status codes against one locale's catalog. The zero value
// uses DefaultLocale.
type Labeler struct {
	Locale Locale
}

func (l Labeler) catalog() catalog {
	if c, ok := catalogs[l.Locale]; ok {
		return c
	}
	return catalogs[DefaultLocale]
}

// Fallback is the label shown for unrecognised codes.
func (l Labeler) Fallback() string { return l.catalog().fallback }

// Describe looks up a code and reports whether it was recognised. Unknown
// domains and codes yield the fallback entry.
func (l Labeler) Describe(domain Domain, code string) (Entry, bool) {
	c := l.catalog()
	if e, ok := c.domains[domain][code]; ok {
		return e, true
	}
	return Entry{Label: c.fallback, Color: DefaultColor}, false
}

// LabelFor returns the display label of a code.
func (l Labeler) LabelFor(domain Domain, code string) string {
	e, _ := l.Describe(domain, code)
	return e.Label
}

// ColorFor returns the tag color of a code.
func (l Labeler) ColorFor(domain Domain, code string) string {
	e, _ := l.Describe(domain, code)
	return e.Color
}

// Codes lists the known codes of a domain in no particular order.
func (l Labeler) Codes(domain Domain) []string {
	m := l.catalog().domains[domain]
	out := make([]string, 0, len(m))
	for code := range m {
		out = append(out, code)
	}
	return out
}

// KnownDomain reports whether a domain has a table.
func KnownDomain(d Domain) bool {
	_, ok := catalogs[DefaultLocale].domains[d]
	return ok
}

// LabelFor uses the default locale.
func LabelFor(domain Domain, code string) string { return Labeler{}.LabelFor(domain, code) }

// ColorFor uses the default locale.
func ColorFor(domain Domain, code string) string { return Labeler{}.ColorFor(domain, code) }

// FilterByStatus returns the items whose selected status equals status, in
// input order. The result is never nil.
func FilterByStatus[T any, S comparable](items []T, selector func(T) S, status S) []T {
	out := make([]T, 0)
	for _, it := range items {
		if selector(it) == status {
			out = append(out, it)
		}
	}
	return out
}

// CountWithStatus is len(FilterByStatus(...)) without the allocation.
func CountWithStatus[T any, S comparable](items []T, selector func(T) S, status S) int {
	return CountBy(items, selector, status)
}

// StatusRecord is the minimal status-bearing record the host exchanges.
type StatusRecord struct {
	ID     int64  `json:"id,omitempty"`
	Status string `json:"status"`
}

// GetStatus is the selector passed to FilterByStatus and CountWithStatus.
func (r StatusRecord) GetStatus() string { return r.Status }
