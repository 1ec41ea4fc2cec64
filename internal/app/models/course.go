package models

// ElectiveCategories are the non-mandatory course categories eligible
// for recommendation. Courses in any other category are mandatory for
// the semester/department they are assigned to.
var ElectiveCategories = map[string]bool{
	"H":   true,
	"M":   true,
	"FRE": true,
	"MNS": true,
}

// PrerequisiteSentinel is the wire form for an absent prerequisite list.
const PrerequisiteSentinel = "None"

// CourseRecord is one row of the canonical course catalog.
type CourseRecord struct {
	CourseNo      string   `json:"courseNo" example:"CS1100"`                          // Unique course code
	CourseName    string   `json:"courseName" example:"Introduction to Programming"`   //
	Department    string   `json:"department" example:"CE"`                            // Offering department code
	Semester      int      `json:"semester" example:"3"`                               //
	Category      string   `json:"category" example:"H"`                               //
	CourseType    string   `json:"courseType,omitempty" example:"Humanities Elective"` // Human label derived from category
	Slot          *string  `json:"slot" example:"B"`                                   // Nullable scheduling block
	Prerequisites []string `json:"prerequisites"`                                      // Ordered course numbers, possibly empty
	Description   string   `json:"description"`                                        //
}

// IsElective reports whether the record belongs to an elective category.
func (c *CourseRecord) IsElective() bool {
	return ElectiveCategories[c.Category]
}

// SlotID returns the slot identifier or the empty string when the
// course has no assigned slot.
func (c *CourseRecord) SlotID() string {
	if c.Slot == nil {
		return ""
	}
	return *c.Slot
}
