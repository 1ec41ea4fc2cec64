package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yigit/electa/internal/app/models"
	"github.com/yigit/electa/internal/pkg/apperrors"
)

// Sources names the three tabular inputs of a catalog build.
type Sources struct {
	SemWisePath     string // course number, department, semester, category
	SlotWisePath    string // course number, slot, prerequisites
	CourseTypesPath string // category code, human-readable course type
}

// Source column headers, mapped explicitly to canonical field names.
// The rename is a static table, never inferred from the data. Mapped
// columns are required; anything else passes through readTable under
// its source header, which is how the optional descriptionColumn of
// the semester table reaches the record.
const descriptionColumn = "Description"

var (
	semWiseColumns = map[string]string{
		"course_no":   "Course Number",
		"course_name": "Course Name",
		"department":  "Department",
		"semester":    "Semester",
		"category":    "Category",
	}
	slotWiseColumns = map[string]string{
		"course_no":     "BaseCourseNo",
		"slot":          "Slot",
		"prerequisites": "Prerequisite",
	}
	courseTypeColumns = map[string]string{
		"category":    "Code",
		"course_type": "Course Category",
	}
)

type slotInfo struct {
	slot    string
	prereqs string
}

// Build merges the three source tables into an indexed catalog.
//
// Every semester-table row is retained (left joins); absent slot info
// yields a nil slot and the "None" prerequisite sentinel, and a
// category without a type entry yields an empty course type.
// Duplicate course numbers keep the first occurrence in
// semester-table order. Any unreadable source or missing required
// column fails the build as a whole.
func Build(src Sources) (*Catalog, error) {
	semRows, err := readTable(src.SemWisePath, semWiseColumns)
	if err != nil {
		return nil, err
	}
	slotRows, err := readTable(src.SlotWisePath, slotWiseColumns)
	if err != nil {
		return nil, err
	}
	typeRows, err := readTable(src.CourseTypesPath, courseTypeColumns)
	if err != nil {
		return nil, err
	}

	// Join indexes: first occurrence wins on duplicate keys.
	slots := make(map[string]slotInfo, len(slotRows))
	for _, row := range slotRows {
		no := row["course_no"]
		if _, seen := slots[no]; seen {
			continue
		}
		slots[no] = slotInfo{slot: row["slot"], prereqs: row["prerequisites"]}
	}
	types := make(map[string]string, len(typeRows))
	for _, row := range typeRows {
		if _, seen := types[row["category"]]; !seen {
			types[row["category"]] = row["course_type"]
		}
	}

	records := make([]models.CourseRecord, 0, len(semRows))
	for i, row := range semRows {
		semester, err := strconv.Atoi(strings.TrimSpace(row["semester"]))
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: bad semester %q",
				apperrors.ErrCatalogSource, src.SemWisePath, i+2, row["semester"])
		}

		rec := models.CourseRecord{
			CourseNo:   strings.TrimSpace(row["course_no"]),
			CourseName: strings.TrimSpace(row["course_name"]),
			Department: strings.TrimSpace(row["department"]),
			Semester:   semester,
			Category:   strings.TrimSpace(row["category"]),
		}
		rec.Description = strings.TrimSpace(row[descriptionColumn])

		info, ok := slots[rec.CourseNo]
		if ok && strings.TrimSpace(info.slot) != "" {
			slot := strings.TrimSpace(info.slot)
			rec.Slot = &slot
		}
		if ok {
			rec.Prerequisites = parsePrerequisites(info.prereqs)
		}
		rec.CourseType = types[rec.Category]

		records = append(records, rec)
	}

	return New(records), nil
}

// parsePrerequisites splits a raw prerequisite cell into an ordered
// list of course numbers. The "None" sentinel and blank cells both
// mean no prerequisites.
func parsePrerequisites(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == models.PrerequisiteSentinel {
		return nil
	}
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readTable reads a CSV file and maps each row onto the canonical
// column names. Columns outside the mapping are carried through under
// their source header. A missing required column fails the read.
func readTable(path string, columns map[string]string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrCatalogSource, path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: missing header: %v", apperrors.ErrCatalogSource, path, err)
	}

	// Source header -> canonical name, for the mapped columns.
	rename := make(map[string]string, len(columns))
	for canonical, source := range columns {
		rename[source] = canonical
	}

	index := make(map[int]string, len(header))
	found := make(map[string]bool, len(columns))
	for i, col := range header {
		col = strings.TrimSpace(col)
		if canonical, ok := rename[col]; ok {
			index[i] = canonical
			found[canonical] = true
		} else {
			index[i] = col
		}
	}
	var missing []string
	for canonical, source := range columns {
		if !found[canonical] {
			missing = append(missing, strconv.Quote(source))
		}
	}
	if len(missing) > 0 {
		// Sorted so the error names the same columns on every run.
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s: missing required column(s) %s",
			apperrors.ErrCatalogSource, path, strings.Join(missing, ", "))
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrCatalogSource, path, err)
		}
		row := make(map[string]string, len(record))
		for i, cell := range record {
			if i < len(header) {
				row[index[i]] = cell
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
