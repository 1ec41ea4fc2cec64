// Package transcript extracts structured student profiles from the
// text of academic transcripts ("grade cards").
package transcript

import (
	"fmt"
	"strconv"
	"time"

	"github.com/yigit/electa/internal/app/models"
	"github.com/yigit/electa/internal/calendar"
	"github.com/yigit/electa/internal/pkg/apperrors"
)

// Parser turns raw transcript text into a student profile. The zero
// clock means time.Now.
type Parser struct {
	now func() time.Time
}

// NewParser creates a parser using the wall clock for semester
// derivation.
func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// NewParserAt creates a parser with a fixed reference clock.
func NewParserAt(now func() time.Time) *Parser {
	return &Parser{now: now}
}

// Parse extracts a profile from the concatenated text of every page
// of a transcript. Identity fields are required; a miss on any of
// them fails the parse as a whole and nothing is stored. CGPA is
// optional. Course rows are collected in document order without
// deduplication.
func (p *Parser) Parse(text string) (*models.StudentProfile, error) {
	rollNo, ok := rollNoField.extract(text)
	if !ok {
		return nil, apperrors.NewTranscriptFormatError(rollNoField.name)
	}
	name, ok := nameField.extract(text)
	if !ok {
		return nil, apperrors.NewTranscriptFormatError(nameField.name)
	}
	department, ok := departmentField.extract(text)
	if !ok {
		return nil, apperrors.NewTranscriptFormatError(departmentField.name)
	}

	profile := &models.StudentProfile{
		RollNo:         rollNo,
		Name:           name,
		Department:     department,
		DepartmentCode: models.DepartmentCode(department),
		CoursesTaken:   []models.CourseTaken{},
		OccupiedSlots:  []string{},
	}

	if raw, ok := cgpaField.extract(text); ok {
		cgpa, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrTranscriptFormat,
				fmt.Sprintf("malformed cgpa value %q", raw))
		}
		profile.CGPA = &cgpa
	}

	for _, m := range courseRowPattern.FindAllStringSubmatch(text, -1) {
		taken := models.CourseTaken{
			CourseNo: m[1],
			Title:    m[2],
			Credits:  0,
			Grade:    "N/A",
		}
		if m[3] != "" {
			credits, err := strconv.Atoi(m[3])
			if err == nil {
				taken.Credits = credits
			}
		}
		if m[4] != "" {
			taken.Grade = m[4]
		}
		profile.CoursesTaken = append(profile.CoursesTaken, taken)
	}

	profile.Semester, profile.Year = calendar.Derive(profile.RollNo, p.now())

	return profile, nil
}
