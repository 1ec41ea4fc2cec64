package models

// CourseTaken is one row of a student's grade history as extracted
// from the transcript. Rows keep document order and are never
// deduplicated.
type CourseTaken struct {
	CourseNo string `json:"courseNo" example:"CS1100"`
	Title    string `json:"title" example:"Introduction to Programming"`
	Credits  int    `json:"credits" example:"4"` // Non-negative, 0 when the transcript leaves it blank
	Grade    string `json:"grade" example:"B"`   // Letter code, "N/A" when blank
}

// StudentProfile is the structured view of one student, keyed by roll
// number. It is created by the transcript parser, stored in the
// session store and read by the recommendation engine.
type StudentProfile struct {
	RollNo         string        `json:"rollNo" example:"CE21B001"`
	Name           string        `json:"name" example:"JOHN SMITH"`
	Department     string        `json:"department" example:"Civil Engineering"` // Free text from the transcript
	DepartmentCode string        `json:"departmentCode" example:"CE"`            // Mapped code, "XX" when unmapped
	CGPA           *float64      `json:"cgpa,omitempty" example:"8.25"`          // Absent on some transcript variants
	Semester       int           `json:"semester" example:"6"`                   // Derived, always >= 1
	Year           int           `json:"year" example:"3"`                       // Derived, always >= 1
	CoursesTaken   []CourseTaken `json:"coursesTaken"`
	OccupiedSlots  []string      `json:"occupiedSlots"` // Attached after catalog lookup
}
