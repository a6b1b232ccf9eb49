package scoring

// Unanswered is the sentinel severity for skipped or unknown answers.
const Unanswered = -1

// severityByLabel maps the assessment's Likert answer labels to a shared
// 1-5 severity scale. The assessment uses five parallel vocabularies
// (severity, satisfaction, noticeability, frequency and level); labels
// shared between vocabularies carry the same value in each.
var severityByLabel = map[string]int{
	// severity
	"None":        1,
	"Mild":        2,
	"Moderate":    3,
	"Severe":      4,
	"Very Severe": 5,

	// satisfaction
	"Very Satisfied":       1,
	"Satisfied":            2,
	"Moderately Satisfied": 3,
	"Dissatisfied":         4,
	"Very Dissatisfied":    5,

	// noticeability
	"Not Noticeable":      1,
	"Barely Noticeable":   2,
	"Somewhat Noticeable": 3,
	"Noticeable":          4,
	"Very Noticeable":     5,

	// frequency
	"Never":     1,
	"Rarely":    2,
	"Sometimes": 3,
	"Often":     4,
	"Always":    5,

	// level
	"Low":       1,
	"High":      4,
	"Very High": 5,
}

// SeverityValue resolves an answer label to its severity. Unknown labels,
// including the empty string, resolve to Unanswered rather than failing:
// the assessment form can be submitted partially filled.
func SeverityValue(label string) int {
	if v, ok := severityByLabel[label]; ok {
		return v
	}
	return Unanswered
}
