package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/araddon/dateparse"
)

var monthNumbers = map[string]string{
	"january": "01", "february": "02", "march": "03", "april": "04",
	"may": "05", "june": "06", "july": "07", "august": "08",
	"september": "09", "october": "10", "november": "11", "december": "12",
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

var (
	reDateSplit = regexp.MustCompile(`[-/]`)
	reDigits    = regexp.MustCompile(`\d+`)
	reDayRange  = regexp.MustCompile(`(\d{1,2})\s*-\s*\d{1,2}([,\s])`)
)

// NormalizeDate converts a free-text date to YYYY-MM-DD. A permissive parse
// is attempted first; on failure, DD/MM/YYYY and month-name shapes are
// recognized manually. On total failure the input comes back verbatim so
// the human reviewer still sees what the poster said.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return raw
	}

	// "March 15-16, 2026" style ranges keep only the opening day so the
	// result stays a single calendar date. Numeric dates like 15-03-2026
	// are left alone because the range must end at a comma or space.
	candidate := reDayRange.ReplaceAllString(s, "$1$2")

	if t, err := dateparse.ParseAny(candidate); err == nil {
		return t.Format("2006-01-02")
	}

	// Manual DD/MM/YYYY or DD-MM-YYYY
	if strings.ContainsAny(candidate, "/-") {
		parts := reDateSplit.Split(candidate, -1)
		if len(parts) == 3 {
			day, month, year := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])
			if len(year) == 4 {
				return fmt.Sprintf("%s-%s-%s", year, pad2(month), pad2(day))
			}
		}
	}

	// Manual "March 15, 2026" / "15 March 2026"
	lower := strings.ToLower(candidate)
	for name, num := range monthNumbers {
		if strings.Contains(lower, name) {
			numbers := reDigits.FindAllString(candidate, -1)
			if len(numbers) >= 2 {
				day, year := numbers[0], numbers[len(numbers)-1]
				if len(year) == 4 {
					return fmt.Sprintf("%s-%s-%s", year, num, pad2(day))
				}
			}
			break
		}
	}

	return raw
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
