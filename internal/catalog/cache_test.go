package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/electa/internal/app/models"
	"github.com/yigit/electa/internal/pkg/apperrors"
)

func TestCacheRoundTrip(t *testing.T) {
	slot := "G"
	original := New([]models.CourseRecord{
		{
			CourseNo:      "HS2100",
			CourseName:    "Introduction to Philosophy",
			Department:    "HS",
			Semester:      3,
			Category:      "H",
			CourseType:    "Humanities Elective",
			Slot:          &slot,
			Prerequisites: []string{"HS1100"},
			Description:   "Classic problems of knowledge and ethics",
		},
		{
			CourseNo:   "CS1100",
			CourseName: "Introduction to Programming",
			Department: "CS",
			Semester:   1,
			Category:   "PMT",
			CourseType: "Programme Mandatory",
		},
	})

	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, WriteCache(original, path))

	loaded, err := LoadCache(path)
	require.NoError(t, err)

	require.Equal(t, original.Len(), loaded.Len())
	for _, want := range original.Records() {
		got, ok := loaded.ByCourseNo(want.CourseNo)
		require.True(t, ok, "course %s missing after round trip", want.CourseNo)
		assert.Equal(t, want, got)
	}
}

func TestLoadCacheMissingFile(t *testing.T) {
	_, err := LoadCache(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCatalogSource)
}
