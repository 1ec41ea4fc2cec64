// Package recommend implements the elective filtering pipeline: the
// elective universe narrowed by the performance gate, the free-text
// preference and the student's occupied slots, truncated to the first
// five survivors in catalog order.
package recommend

import (
	"strings"

	"github.com/yigit/electa/internal/app/models"
	"github.com/yigit/electa/internal/catalog"
)

// MaxRecommendations bounds the returned list.
const MaxRecommendations = 5

// TechnicalPrefix is the course-number prefix whose weak grades
// trigger the performance gate.
const TechnicalPrefix = "CS"

// WeakGrades are the grades that count as weak technical performance.
var WeakGrades = map[string]bool{
	"C": true,
	"D": true,
	"E": true,
}

// ExemptDepartmentCodes are the departments never subject to the
// performance gate, by mapped department code.
var ExemptDepartmentCodes = map[string]bool{
	"CS": true, // Computer Science
	"AD": true, // AI & DS
}

// TechnicalKeywords mark electives with technical/computing content.
// Matched case-insensitively against course name and description.
var TechnicalKeywords = []string{
	"programming",
	"data",
	"algorithm",
	"software",
	"computing",
	"machine learning",
}

// Engine ranks electives for one student. It is a pure reader over
// the catalog and profile; calling it twice with the same inputs
// returns identical output.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates a recommendation engine over a built catalog.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Recommend returns up to MaxRecommendations electives that pass the
// performance gate, match the preference and fall in free slots, in
// catalog order.
func (e *Engine) Recommend(profile *models.StudentProfile, preference string, occupiedSlots []string) []models.CourseRecord {
	candidates := e.catalog.FilterElectives()

	if gateApplies(profile) {
		candidates = filterTechnical(candidates)
	}

	preference = normalizePreference(preference)
	if preference != "" {
		candidates = filterPreference(candidates, preference)
	}

	candidates = filterSlots(candidates, occupiedSlots)

	if len(candidates) > MaxRecommendations {
		candidates = candidates[:MaxRecommendations]
	}
	return candidates
}

// gateApplies reports whether the performance gate suppresses
// technical electives for this student: at least one weak grade in a
// technical-prefix course, and a department outside the exempted set.
// An empty course history never triggers the gate.
func gateApplies(profile *models.StudentProfile) bool {
	if ExemptDepartmentCodes[profile.DepartmentCode] {
		return false
	}
	for _, taken := range profile.CoursesTaken {
		if strings.HasPrefix(taken.CourseNo, TechnicalPrefix) && WeakGrades[taken.Grade] {
			return true
		}
	}
	return false
}

func filterTechnical(records []models.CourseRecord) []models.CourseRecord {
	out := records[:0:0]
	for _, rec := range records {
		if !containsAnyKeyword(rec.CourseName) && !containsAnyKeyword(rec.Description) {
			out = append(out, rec)
		}
	}
	return out
}

func containsAnyKeyword(field string) bool {
	field = strings.ToLower(field)
	for _, kw := range TechnicalKeywords {
		if strings.Contains(field, kw) {
			return true
		}
	}
	return false
}

// normalizePreference lowercases the preference and maps the "no
// preference" spellings to the empty string.
func normalizePreference(preference string) string {
	preference = strings.ToLower(strings.TrimSpace(preference))
	if preference == "any" {
		return ""
	}
	return preference
}

func filterPreference(records []models.CourseRecord, preference string) []models.CourseRecord {
	out := records[:0:0]
	for _, rec := range records {
		if containsFold(rec.CourseName, preference) ||
			containsFold(rec.CourseType, preference) ||
			containsFold(rec.Description, preference) {
			out = append(out, rec)
		}
	}
	return out
}

func containsFold(field, needle string) bool {
	return strings.Contains(strings.ToLower(field), needle)
}

func filterSlots(records []models.CourseRecord, occupiedSlots []string) []models.CourseRecord {
	occupied := make(map[string]bool, len(occupiedSlots))
	for _, slot := range occupiedSlots {
		occupied[slot] = true
	}

	out := records[:0:0]
	for _, rec := range records {
		if rec.Slot != nil && occupied[*rec.Slot] {
			continue
		}
		out = append(out, rec)
	}
	return out
}
