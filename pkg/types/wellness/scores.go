package wellness

import "go.mongodb.org/mongo-driver/bson/primitive"

// Banded risk tiers used by all {1,3,5} category scores.
const (
	RISK_LOW      = 1
	RISK_ELEVATED = 3
	RISK_HIGH     = 5
)

// ScoreResult is the persisted outcome of scoring one baseline assessment.
// BMI and SleepEfficiency are pointers: nil means the inputs were missing or
// unparseable and the category is shown as "Not available".
type ScoreResult struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID string             `bson:"userID" json:"userID"`

	// Sum over answered ISI items only. AnsweredItems tells consumers how
	// many of the seven questions contributed, so a low index from a mostly
	// skipped questionnaire is distinguishable from a genuinely low one.
	InsomniaSeverityIndex int `bson:"insomniaSeverityIndex" json:"insomniaSeverityIndex"`
	AnsweredItems         int `bson:"answeredItems" json:"answeredItems"`

	SleepApneaRisk   int  `bson:"sleepApneaRisk" json:"sleepApneaRisk"`
	BMI              *int `bson:"bmi,omitempty" json:"bmi,omitempty"`
	SleepEfficiency  *int `bson:"sleepEfficiency,omitempty" json:"sleepEfficiency,omitempty"`
	Diet             int  `bson:"diet" json:"diet"`
	PhysicalActivity int  `bson:"physicalActivity" json:"physicalActivity"`
	Stress           int  `bson:"stress" json:"stress"`

	CreatedAt int64 `bson:"createdAt" json:"createdAt"`
}

// CategoryDetail is the presentation contract for one scored category.
type CategoryDetail struct {
	Category    string `json:"category"`
	Score       string `json:"score"`
	Indicator   string `json:"indicator"`
	Description string `json:"description"`
}
