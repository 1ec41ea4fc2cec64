package recommend

import (
	"strings"

	"github.com/yigit/electa/internal/app/models"
)

// HumanitiesPrefix marks humanities course numbers in a student's
// history.
const HumanitiesPrefix = "HS"

// SuggestedQuestions returns the canned follow-up prompts for a
// profile. Students with at least two humanities courses behind them
// get the "more humanities" variant, everyone else the discovery one.
func SuggestedQuestions(profile *models.StudentProfile) []string {
	suggestions := []string{"Suggest some 9 credit electives"}

	humanities := 0
	for _, taken := range profile.CoursesTaken {
		if strings.HasPrefix(taken.CourseNo, HumanitiesPrefix) {
			humanities++
		}
	}
	if humanities >= 2 {
		suggestions = append(suggestions, "Show me more humanities electives in my free slots")
	} else {
		suggestions = append(suggestions, "Suggest some humanities courses for me")
	}

	suggestions = append(suggestions, "Find management electives")
	return suggestions
}
