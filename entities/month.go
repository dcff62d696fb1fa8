package entities

import (
	"strconv"
	"strings"
)

// YearMonth is the parsed form of a "YYYY-MM" grouping key.
type YearMonth struct {
	Year  int
	Month int
}

// ParseYearMonth parses a grouping key. ok is false for anything that is not
// a four digit year, a dash and a month between 01 and 12.
func ParseYearMonth(key string) (ym YearMonth, ok bool) {
	year, month, found := strings.Cut(key, "-")
	if !found || len(year) != 4 || len(month) != 2 || !digits(year) || !digits(month) {
		return YearMonth{}, false
	}
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	if m < 1 || m > 12 {
		return YearMonth{}, false
	}
	return YearMonth{Year: y, Month: m}, true
}

func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// CompareMonthKeys orders grouping keys chronologically. If either key is
// malformed the comparison falls back to plain string order, which for
// well-formed keys gives the same result.
func CompareMonthKeys(a, b string) int {
	ya, okA := ParseYearMonth(a)
	yb, okB := ParseYearMonth(b)
	if !okA || !okB {
		return strings.Compare(a, b)
	}
	if ya.Before(yb) {
		return -1
	}
	if yb.Before(ya) {
		return 1
	}
	return strings.Compare(a, b)
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
