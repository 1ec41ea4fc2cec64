// Package catalog builds and serves the canonical course catalog: the
// deduplicated merge of the semester-assignment, slot/prerequisite and
// category-type source tables.
package catalog

import (
	"github.com/yigit/electa/internal/app/models"
)

type deptSemKey struct {
	department string
	semester   int
}

// Catalog is the immutable, indexed collection of canonical course
// records. Build it once at startup; all query methods are safe for
// concurrent readers.
type Catalog struct {
	records    []models.CourseRecord
	byCourseNo map[string]int
	byDeptSem  map[deptSemKey][]int
	electives  []int // catalog-order indexes of elective records
}

// New indexes a slice of canonical records. Duplicate course numbers
// keep the first occurrence.
func New(records []models.CourseRecord) *Catalog {
	c := &Catalog{
		byCourseNo: make(map[string]int, len(records)),
		byDeptSem:  make(map[deptSemKey][]int),
	}

	for _, rec := range records {
		if _, seen := c.byCourseNo[rec.CourseNo]; seen {
			continue
		}
		idx := len(c.records)
		c.records = append(c.records, rec)
		c.byCourseNo[rec.CourseNo] = idx

		key := deptSemKey{department: rec.Department, semester: rec.Semester}
		c.byDeptSem[key] = append(c.byDeptSem[key], idx)

		if rec.IsElective() {
			c.electives = append(c.electives, idx)
		}
	}

	return c
}

// Len returns the number of canonical records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns a copy of all canonical records in catalog order.
func (c *Catalog) Records() []models.CourseRecord {
	out := make([]models.CourseRecord, len(c.records))
	copy(out, c.records)
	return out
}

// ByCourseNo looks up a single record by course number.
func (c *Catalog) ByCourseNo(courseNo string) (models.CourseRecord, bool) {
	idx, ok := c.byCourseNo[courseNo]
	if !ok {
		return models.CourseRecord{}, false
	}
	return c.records[idx], true
}

// FilterMandatory returns the non-elective courses assigned to a
// department and semester, in catalog order.
func (c *Catalog) FilterMandatory(department string, semester int) []models.CourseRecord {
	var out []models.CourseRecord
	for _, idx := range c.byDeptSem[deptSemKey{department: department, semester: semester}] {
		rec := c.records[idx]
		if !rec.IsElective() {
			out = append(out, rec)
		}
	}
	return out
}

// FilterElectives returns every elective record in catalog order.
func (c *Catalog) FilterElectives() []models.CourseRecord {
	out := make([]models.CourseRecord, 0, len(c.electives))
	for _, idx := range c.electives {
		out = append(out, c.records[idx])
	}
	return out
}

// OccupiedSlots returns the distinct non-empty slots of the mandatory
// courses for a department and semester, in first-seen order.
func (c *Catalog) OccupiedSlots(department string, semester int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range c.FilterMandatory(department, semester) {
		slot := rec.SlotID()
		if slot == "" || seen[slot] {
			continue
		}
		seen[slot] = true
		out = append(out, slot)
	}
	return out
}
