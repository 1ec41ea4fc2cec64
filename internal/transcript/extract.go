package transcript

import (
	"regexp"
	"strings"
)

// A fieldExtractor is one named, labeled-field pattern over the whole
// transcript text. Extractors are independently testable; a failed
// match is reported as an explicit miss, never an error by itself.
type fieldExtractor struct {
	name    string
	pattern *regexp.Regexp
}

// extract runs the pattern and returns the first capture group,
// trimmed, with an explicit found flag.
func (f fieldExtractor) extract(text string) (string, bool) {
	m := f.pattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// The documented transcript field patterns.
var (
	rollNoField = fieldExtractor{
		name:    "rollNo",
		pattern: regexp.MustCompile(`Roll No:\s*([A-Z0-9]+)`),
	}
	nameField = fieldExtractor{
		name:    "name",
		pattern: regexp.MustCompile(`Name:\s*([A-Z][A-Z ]*)`),
	}
	departmentField = fieldExtractor{
		name:    "department",
		pattern: regexp.MustCompile(`Department:\s*([A-Za-z][A-Za-z ]*)`),
	}
	cgpaField = fieldExtractor{
		name:    "cgpa",
		pattern: regexp.MustCompile(`average secured.*?is\s*([\d.]+)`),
	}
)

// courseRowPattern matches one quoted four-field course row, e.g.
//
//	"CS1100","Introduction to Programming","4","B"
//
// Credits and grade may be empty. The course number is a department
// prefix followed by at least three digits, optionally suffixed.
var courseRowPattern = regexp.MustCompile(`"([A-Z]{2}\d{3,}[A-Z]*C?)\s*","(.*?)","(\d+)?","([A-Z]{1,2})?"`)
