package transcript

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/electa/internal/pkg/apperrors"
)

const sampleTranscript = `Roll No: CE21B001
Name: JOHN SMITH
Department: Civil Engineering
The cumulative grade point average secured by the student is 8.25
"CS1100","Intro to Programming","4","C"
"HS2100","Introduction to Philosophy","3","A"
"CE2010","Structural Mechanics","","B"
"CE2020","Fluid Mechanics","4",""
`

func fixedClock() time.Time {
	return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
}

func TestParseSampleTranscript(t *testing.T) {
	parser := NewParserAt(fixedClock)

	profile, err := parser.Parse(sampleTranscript)
	require.NoError(t, err)

	assert.Equal(t, "CE21B001", profile.RollNo)
	assert.Equal(t, "JOHN SMITH", profile.Name)
	assert.Equal(t, "Civil Engineering", profile.Department)
	assert.Equal(t, "CE", profile.DepartmentCode)
	require.NotNil(t, profile.CGPA)
	assert.InDelta(t, 8.25, *profile.CGPA, 1e-9)

	// Derived from CE21 at 2024-03-15
	assert.Equal(t, 6, profile.Semester)
	assert.Equal(t, 4, profile.Year)

	require.Len(t, profile.CoursesTaken, 4)
	first := profile.CoursesTaken[0]
	assert.Equal(t, "CS1100", first.CourseNo)
	assert.Equal(t, "Intro to Programming", first.Title)
	assert.Equal(t, 4, first.Credits)
	assert.Equal(t, "C", first.Grade)

	assert.Equal(t, 0, profile.CoursesTaken[2].Credits, "blank credits default to 0")
	assert.Equal(t, "N/A", profile.CoursesTaken[3].Grade, "blank grade defaults to N/A")
}

func TestParseCGPAIsOptional(t *testing.T) {
	text := "Roll No: AE21B007\nName: JANE DOE\nDepartment: Aerospace Engineering\n"

	profile, err := NewParserAt(fixedClock).Parse(text)
	require.NoError(t, err)
	assert.Nil(t, profile.CGPA)
	assert.Empty(t, profile.CoursesTaken)
	assert.Equal(t, "AE", profile.DepartmentCode)
}

func TestParseUnmappedDepartment(t *testing.T) {
	text := "Roll No: OE21B001\nName: SAM ROE\nDepartment: Ocean Engineering\n"

	profile, err := NewParserAt(fixedClock).Parse(text)
	require.NoError(t, err)
	assert.Equal(t, "XX", profile.DepartmentCode)
}

func TestParseMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing roll number", "Name: JOHN SMITH\nDepartment: Civil Engineering\n"},
		{"missing name", "Roll No: CE21B001\nDepartment: Civil Engineering\n"},
		{"missing department", "Roll No: CE21B001\nName: JOHN SMITH\n"},
		{"empty text", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParserAt(fixedClock).Parse(tt.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrTranscriptFormat)
		})
	}
}

func TestParseKeepsDocumentOrderWithoutDedup(t *testing.T) {
	text := `Roll No: CE21B001
Name: JOHN SMITH
Department: Civil Engineering
"HS2100","Philosophy","3","A"
"HS2100","Philosophy","3","A"
`
	profile, err := NewParserAt(fixedClock).Parse(text)
	require.NoError(t, err)
	require.Len(t, profile.CoursesTaken, 2, "repeated rows are kept")
}

func TestFieldExtractors(t *testing.T) {
	t.Run("roll number stops at whitespace", func(t *testing.T) {
		got, ok := rollNoField.extract("Roll No: CE21B001 extra")
		require.True(t, ok)
		assert.Equal(t, "CE21B001", got)
	})

	t.Run("name stops at the line boundary", func(t *testing.T) {
		got, ok := nameField.extract("Name: JOHN SMITH\nDepartment: Civil Engineering")
		require.True(t, ok)
		assert.Equal(t, "JOHN SMITH", got)
	})

	t.Run("miss is reported explicitly", func(t *testing.T) {
		_, ok := cgpaField.extract("no such phrase here")
		assert.False(t, ok)
	})
}

func TestCourseRowPattern(t *testing.T) {
	tests := []struct {
		name  string
		row   string
		match bool
	}{
		{"plain row", `"CS1100","Intro","4","A"`, true},
		{"suffixed course number", `"CE3010C","Lab","2","B"`, true},
		{"empty credits and grade", `"HS2100","Philosophy","",""`, true},
		{"too few digits", `"CS11","Intro","4","A"`, false},
		{"lowercase prefix", `"cs1100","Intro","4","A"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, courseRowPattern.MatchString(tt.row))
		})
	}
}
