package services

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/electa/internal/app/models"
	"github.com/yigit/electa/internal/catalog"
	"github.com/yigit/electa/internal/pkg/apperrors"
	"github.com/yigit/electa/internal/session"
	"github.com/yigit/electa/internal/transcript"
)

// plainTextExtractor bypasses PDF parsing and treats the uploaded
// bytes as the transcript text directly.
type plainTextExtractor struct{}

func (plainTextExtractor) ExtractText(r io.ReaderAt, size int64) (string, error) {
	buf := make([]byte, size)
	if _, err := r.ReadAt(buf, 0); err != nil && err != io.EOF {
		return "", err
	}
	return string(buf), nil
}

const sampleTranscript = `Roll No: CE21B001
Name: JOHN SMITH
Department: Civil Engineering
The cumulative grade point average secured by the student is 8.25
"CS1100","Intro to Programming","4","C"
"HS2100","Introduction to Philosophy","3","A"
`

func testClock() time.Time {
	return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
}

func serviceCatalog() *catalog.Catalog {
	slotA, slotB, slotG, slotF := "A", "B", "G", "F"
	return catalog.New([]models.CourseRecord{
		// Semester-6 mandatory courses for CE occupy slots A and B
		{CourseNo: "CE3010", CourseName: "Geotechnical Engineering", Department: "CE", Semester: 6, Category: "PMT", Slot: &slotA},
		{CourseNo: "CE3020", CourseName: "Transportation Engineering", Department: "CE", Semester: 6, Category: "PMT", Slot: &slotB},
		{CourseNo: "HS2100", CourseName: "Introduction to Philosophy", Department: "HS", Semester: 3, Category: "H", CourseType: "Humanities Elective", Slot: &slotG},
		{CourseNo: "HS3200", CourseName: "World Literature", Department: "HS", Semester: 5, Category: "H", CourseType: "Humanities Elective", Slot: &slotA},
		{CourseNo: "CS4500", CourseName: "Machine Learning Basics", Department: "CS", Semester: 7, Category: "MNS", CourseType: "Maths and Science Elective", Slot: &slotF},
	})
}

func newTestService(t *testing.T, cat *catalog.Catalog) (*AdvisorService, *session.Store) {
	t.Helper()
	sessions := session.NewStore()
	svc := NewAdvisorService(
		cat,
		sessions,
		transcript.NewParserAt(testClock),
		plainTextExtractor{},
		zerolog.Nop(),
	)
	return svc, sessions
}

func upload(t *testing.T, svc *AdvisorService, text string) (*models.StudentProfile, []string, error) {
	t.Helper()
	r := strings.NewReader(text)
	return svc.InitFromTranscript(context.Background(), r, int64(len(text)))
}

func TestInitFromTranscript(t *testing.T) {
	svc, sessions := newTestService(t, serviceCatalog())

	profile, questions, err := upload(t, svc, sampleTranscript)
	require.NoError(t, err)

	assert.Equal(t, "CE21B001", profile.RollNo)
	assert.Equal(t, 6, profile.Semester)
	assert.ElementsMatch(t, []string{"A", "B"}, profile.OccupiedSlots)
	require.Len(t, questions, 3)

	stored, ok := sessions.Get("CE21B001")
	require.True(t, ok)
	assert.Same(t, profile, stored)
}

func TestInitFromTranscriptInvalidFormat(t *testing.T) {
	svc, sessions := newTestService(t, serviceCatalog())

	_, _, err := upload(t, svc, "this is not a grade card")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTranscriptFormat)
	assert.Equal(t, 0, sessions.Len(), "partial profiles are never stored")
}

func TestInitFromTranscriptCatalogUnavailable(t *testing.T) {
	svc, sessions := newTestService(t, nil)

	_, _, err := upload(t, svc, sampleTranscript)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCatalogUnavailable)
	assert.Equal(t, 0, sessions.Len())
}

func TestRecommendElectives(t *testing.T) {
	svc, _ := newTestService(t, serviceCatalog())

	_, _, err := upload(t, svc, sampleTranscript)
	require.NoError(t, err)

	t.Run("free-slot electives for the session", func(t *testing.T) {
		got, err := svc.RecommendElectives(context.Background(), "CE21B001", "humanities")
		require.NoError(t, err)

		// HS3200 sits in occupied slot A; only HS2100 survives
		require.Len(t, got, 1)
		assert.Equal(t, "HS2100", got[0].CourseNo)
	})

	t.Run("weak coding grade gates technical electives", func(t *testing.T) {
		got, err := svc.RecommendElectives(context.Background(), "CE21B001", "machine learning")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown roll number", func(t *testing.T) {
		_, err := svc.RecommendElectives(context.Background(), "ZZ99X000", "")
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	})

	t.Run("empty roll number", func(t *testing.T) {
		_, err := svc.RecommendElectives(context.Background(), "", "")
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})
}

func TestRecommendElectivesCatalogUnavailable(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.RecommendElectives(context.Background(), "CE21B001", "")
	assert.ErrorIs(t, err, apperrors.ErrCatalogUnavailable)
}
