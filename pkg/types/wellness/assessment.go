package wellness

// Question keys of the baseline sleep assessment. The seven ISI items are
// scored together, the remaining keys feed the other category scores.
const (
	QUESTION_KEY_FALLING_ASLEEP       = "difficultyFallingAsleep"
	QUESTION_KEY_STAYING_ASLEEP       = "difficultyStayingAsleep"
	QUESTION_KEY_EARLY_WAKING         = "problemsWakingUpEarly"
	QUESTION_KEY_SLEEP_SATISFACTION   = "sleepPatternSatisfaction"
	QUESTION_KEY_NOTICEABLE_TO_OTHERS = "noticeableToOthers"
	QUESTION_KEY_WORRY_ABOUT_SLEEP    = "worriedAboutSleep"
	QUESTION_KEY_DAILY_INTERFERENCE   = "dailyInterference"

	QUESTION_KEY_SNORING        = "snoreLoudly"
	QUESTION_KEY_TIREDNESS      = "daytimeTiredness"
	QUESTION_KEY_STOP_BREATHING = "stopBreathing"
	QUESTION_KEY_STRESS_LEVEL   = "stressLevel"
)

type Measurement struct {
	Value string `bson:"value" json:"value"`
	Unit  string `bson:"unit" json:"unit"`
}

type DurationInput struct {
	Hours   string `bson:"hours" json:"hours"`
	Minutes string `bson:"minutes" json:"minutes"`
}

// AssessmentResponse holds one set of baseline assessment answers.
// Numeric fields arrive as free-text strings from the client form and are
// parsed by the scoring package; Likert answers arrive as display labels.
type AssessmentResponse struct {
	UserID string `bson:"userID" json:"userID"`

	// Likert answers keyed by question key (QUESTION_KEY_*).
	Answers map[string]string `bson:"answers" json:"answers"`

	// Sleep timing over a typical night.
	TimeAsleep         DurationInput `bson:"timeAsleep" json:"timeAsleep"`
	TimeToFallAsleep   DurationInput `bson:"timeToFallAsleep" json:"timeToFallAsleep"`
	TimeAwakeAfterWake DurationInput `bson:"timeAwakeAfterWake" json:"timeAwakeAfterWake"`
	TimesWokenUp       string        `bson:"timesWokenUp" json:"timesWokenUp"`

	// Daily consumption counts.
	CaffeinatedDrinksPerDay string `bson:"caffeinatedDrinksPerDay" json:"caffeinatedDrinksPerDay"`
	SugaryDrinksPerDay      string `bson:"sugaryDrinksPerDay" json:"sugaryDrinksPerDay"`
	FastFoodMealsPerWeek    string `bson:"fastFoodMealsPerWeek" json:"fastFoodMealsPerWeek"`
	VegetableServingsPerDay string `bson:"vegetableServingsPerDay" json:"vegetableServingsPerDay"`

	// Physical activity per week.
	PhysicalActivity DurationInput `bson:"physicalActivity" json:"physicalActivity"`

	Height Measurement `bson:"height" json:"height"`
	Weight Measurement `bson:"weight" json:"weight"`

	Deployed bool `bson:"deployed" json:"deployed"`
	OnDuty   bool `bson:"onDuty" json:"onDuty"`

	SubmittedAt int64 `bson:"submittedAt" json:"submittedAt"`
}
