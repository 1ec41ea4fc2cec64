package models

// UnknownDepartmentCode is assigned when a transcript's department name
// has no entry in DepartmentCodes.
const UnknownDepartmentCode = "XX"

// DepartmentCodes maps transcript department names to catalog
// department codes. Extend here, not in the filtering logic.
var DepartmentCodes = map[string]string{
	"Civil Engineering":      "CE",
	"Aerospace Engineering":  "AE",
	"Mechanical Engineering": "ME",
	"Electrical Engineering": "EE",
	"Chemical Engineering":   "CH",
	"Computer Science":       "CS",
	"AI & DS":                "AD",
}

// DepartmentCode resolves a free-text department name to its code.
func DepartmentCode(name string) string {
	if code, ok := DepartmentCodes[name]; ok {
		return code
	}
	return UnknownDepartmentCode
}
