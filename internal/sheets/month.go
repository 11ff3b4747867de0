package sheets

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hahaha-network/revsync/internal/model"
)

// The worksheet's month column has accumulated several date formats over
// the years, in both Romanian and English. The parser accepts all of them.
var monthNames = map[string]int{
	// Romanian
	"ianuarie": 1, "ian": 1,
	"februarie": 2,
	"martie":    3,
	"aprilie":   4,
	"mai":       5,
	"iunie":     6, "iun": 6,
	"iulie": 7, "iul": 7,
	"septembrie": 9,
	"octombrie":  10,
	"noiembrie":  11, "noi": 11,
	"decembrie": 12,

	// English
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may":  5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

var (
	isoDateRe   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	slashDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})`)
	yearMonthRe = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	nonWordRe   = regexp.MustCompile(`[^\p{L}\p{N}]+`)
)

// ParseMonthCell parses a month-column cell into its calendar month.
//
// Supported forms:
//   - "2025-01-01" / "2025-01-01 00:00:00"
//   - "01/01/2025" (dd/mm vs mm/dd resolved heuristically)
//   - "Jan 2025" / "Sept 2025" / "Mai 2025" / "Iunie 2025"
//   - "2025-01"
func ParseMonthCell(value string) (model.Month, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return model.Month{}, false
	}

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		return makeMonth(m[1], m[2])
	}

	if m := slashDateRe.FindStringSubmatch(s); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])

		// a > 12 forces dd/mm; b > 12 forces mm/dd; otherwise assume
		// mm/dd, the common Sheets US formatting.
		mm := a
		if a > 12 {
			mm = b
		}
		if mm < 1 || mm > 12 {
			return model.Month{}, false
		}
		return model.Month{Year: year, Month: time.Month(mm)}, true
	}

	// Month name + year, e.g. "Mai 2025" or "sept. 2025".
	parts := strings.Fields(strings.ToLower(s))
	if len(parts) >= 2 {
		if year, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			name := nonWordRe.ReplaceAllString(strings.Join(parts[:len(parts)-1], " "), "")
			if mm, ok := monthNames[name]; ok {
				return model.Month{Year: year, Month: time.Month(mm)}, true
			}
		}
	}

	if m := yearMonthRe.FindStringSubmatch(s); m != nil {
		return makeMonth(m[1], m[2])
	}

	return model.Month{}, false
}

func makeMonth(year, month string) (model.Month, bool) {
	y, _ := strconv.Atoi(year)
	mm, _ := strconv.Atoi(month)
	if mm < 1 || mm > 12 {
		return model.Month{}, false
	}
	return model.Month{Year: y, Month: time.Month(mm)}, true
}
