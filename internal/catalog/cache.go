package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yigit/electa/internal/app/models"
	"github.com/yigit/electa/internal/pkg/apperrors"
)

// cacheHeader is the column order of the canonical cache file.
var cacheHeader = []string{
	"CourseNo", "CourseName", "Department", "Semester",
	"Category", "CourseType", "Slot", "Prerequisites", "Description",
}

// WriteCache writes the merged canonical rows to a single CSV file so
// a later start can skip re-merging the sources. Purely an
// optimization; correctness never depends on the cache.
func WriteCache(c *Catalog, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create catalog cache: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(cacheHeader); err != nil {
		return fmt.Errorf("write catalog cache header: %w", err)
	}

	for _, rec := range c.Records() {
		prereqs := models.PrerequisiteSentinel
		if len(rec.Prerequisites) > 0 {
			prereqs = strings.Join(rec.Prerequisites, ";")
		}
		row := []string{
			rec.CourseNo,
			rec.CourseName,
			rec.Department,
			strconv.Itoa(rec.Semester),
			rec.Category,
			rec.CourseType,
			rec.SlotID(),
			prereqs,
			rec.Description,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write catalog cache row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// LoadCache reads a canonical cache file written by WriteCache.
func LoadCache(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrCatalogSource, path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: missing header: %v", apperrors.ErrCatalogSource, path, err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{"CourseNo", "CourseName", "Department", "Semester", "Category"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: %s: missing required column %q",
				apperrors.ErrCatalogSource, path, name)
		}
	}

	cell := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var records []models.CourseRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrCatalogSource, path, err)
		}

		semester, err := strconv.Atoi(cell(row, "Semester"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: bad semester",
				apperrors.ErrCatalogSource, path, line)
		}

		rec := models.CourseRecord{
			CourseNo:      cell(row, "CourseNo"),
			CourseName:    cell(row, "CourseName"),
			Department:    cell(row, "Department"),
			Semester:      semester,
			Category:      cell(row, "Category"),
			CourseType:    cell(row, "CourseType"),
			Prerequisites: parsePrerequisites(cell(row, "Prerequisites")),
			Description:   cell(row, "Description"),
		}
		if slot := cell(row, "Slot"); slot != "" {
			rec.Slot = &slot
		}
		records = append(records, rec)
	}

	return New(records), nil
}
