package wellness

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The program runs one lesson per week for twelve weeks.
const PROGRAM_LENGTH_WEEKS = 12

// LessonProgress tracks which weekly lessons a user has finished. Keys are
// week numbers as decimal strings ("1".."12"). Completion is monotonic:
// lessons are only ever marked true.
type LessonProgress struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"userID" json:"userID"`
	Completed map[string]bool    `bson:"completed" json:"completed"`
	UpdatedAt int64              `bson:"updatedAt" json:"updatedAt"`
}

// IsLessonComplete reports whether the lesson for the given week is done.
// Missing keys count as incomplete.
func (lp LessonProgress) IsLessonComplete(week int) bool {
	if lp.Completed == nil {
		return false
	}
	return lp.Completed[strconv.Itoa(week)]
}

// AllLessonsComplete holds iff all twelve lessons are present and true.
func (lp LessonProgress) AllLessonsComplete() bool {
	for week := 1; week <= PROGRAM_LENGTH_WEEKS; week++ {
		if !lp.IsLessonComplete(week) {
			return false
		}
	}
	return true
}
