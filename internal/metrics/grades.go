package metrics

import (
	"fmt"
	"math"
	"unicode/utf16"
)

// GradeEntry is one evaluation of a student in a course.
type GradeEntry struct {
	Label string  `json:"label,omitempty"`
	Score float64 `json:"score"`
	Max   float64 `json:"max"`
}

// GradeTotal is the sum of scores against the sum of maxima.
type GradeTotal struct {
	Score float64 `json:"score"`
	Max   float64 `json:"max"`
}

// Percent is the rounded score share, 0 when nothing is graded.
func (g GradeTotal) Percent() int {
	if g.Max <= 0 {
		return 0
	}
	return clamp(roundHalfUp(g.Score/g.Max*100), 0, 100)
}

// GradeTotals adds up every finite entry.
func GradeTotals(entries []GradeEntry) GradeTotal {
	var t GradeTotal
	for _, e := range entries {
		if !finite(e.Score) || !finite(e.Max) {
			continue
		}
		t.Score += e.Score
		t.Max += e.Max
	}
	return t
}

// ProgramCredit carries the credit count of a program or course.
type ProgramCredit struct {
	CreditCount *int `json:"credit_count"`
}

// TotalCredits sums credit counts; missing counts add nothing.
func TotalCredits(programs []ProgramCredit) int {
	total := 0
	for _, p := range programs {
		if p.CreditCount != nil {
			total += *p.CreditCount
		}
	}
	return total
}

// NameColor derives a stable hsl() color from a name, used for avatars.
func NameColor(name string) string {
	hash := nameHash(name)
	h := normalizeHash(hash, 0, 360)
	s := normalizeHash(hash, 50, 75)
	l := normalizeHash(hash, 25, 60)
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}

// nameHash is the classic djb-style string hash over UTF-16 code units with
// the shift done in 32-bit arithmetic, as browsers compute it.
func nameHash(name string) float64 {
	hash := 0.0
	for _, c := range utf16.Encode([]rune(name)) {
		shifted := float64(toInt32(hash) << 5)
		hash = float64(c) + (shifted - hash)
	}
	return math.Abs(hash)
}

func toInt32(f float64) int32 {
	return int32(uint32(int64(math.Trunc(f))))
}

func normalizeHash(hash float64, lo, hi int) int {
	return int(math.Floor(math.Mod(hash, float64(hi-lo)) + float64(lo)))
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
