// Package calendar derives a student's current semester and academic
// year from the entry-year token encoded in the roll number.
package calendar

import (
	"regexp"
	"strconv"
	"time"
)

// entryYearPattern matches the 2-digit entry-year token immediately
// following the 2-letter department prefix, e.g. "AB21..." -> 21.
var entryYearPattern = regexp.MustCompile(`^[A-Z]{2}(\d{2})`)

// Derive computes (semester, year) for a roll number at a reference
// time. July onwards counts as the fall/odd session:
//
//	semester = yearDiff*2 + 1   when now.Month() >= July
//	semester = yearDiff*2       otherwise
//
// Both results are clamped to a minimum of 1. A roll number without an
// entry-year token yields (1, 1).
func Derive(rollNo string, now time.Time) (semester, year int) {
	m := entryYearPattern.FindStringSubmatch(rollNo)
	if m == nil {
		return 1, 1
	}

	token, err := strconv.Atoi(m[1])
	if err != nil {
		return 1, 1
	}
	entryYear := 2000 + token

	yearDiff := now.Year() - entryYear
	if now.Month() >= time.July {
		semester = yearDiff*2 + 1
	} else {
		semester = yearDiff * 2
	}
	if semester < 1 {
		semester = 1
	}

	year = yearDiff + 1
	if year < 1 {
		year = 1
	}
	return semester, year
}
