package wellness

// Module states for the current program week. "due" drives the client's
// blocking prompt; completion is monotonic, so there is no way back from
// "completed" within a week.
const (
	MODULE_STATUS_NOT_DUE   = "not_due"
	MODULE_STATUS_DUE       = "due"
	MODULE_STATUS_COMPLETED = "completed"
)

// WeeklySummary is the aggregated progress view for one user and one
// display week. Percentages follow the banding conventions of the scoring
// package (0/33/50/66/100).
type WeeklySummary struct {
	UserID          string `bson:"userID" json:"userID"`
	WeekNumber      int    `bson:"weekNumber" json:"weekNumber"`
	ProgramComplete bool   `bson:"programComplete" json:"programComplete"`
	ModuleStatus    string `bson:"moduleStatus" json:"moduleStatus"`

	WindowStart string `bson:"windowStart" json:"windowStart"`
	WindowEnd   string `bson:"windowEnd" json:"windowEnd"`

	LessonPercentage          int `bson:"lessonPercentage" json:"lessonPercentage"`
	DietPercentage            int `bson:"dietPercentage" json:"dietPercentage"`
	StressPercentage          int `bson:"stressPercentage" json:"stressPercentage"`
	ActivityPercentage        int `bson:"activityPercentage" json:"activityPercentage"`
	SleepEfficiencyPercentage int `bson:"sleepEfficiencyPercentage" json:"sleepEfficiencyPercentage"`
	BMITrendPercentage        int `bson:"bmiTrendPercentage" json:"bmiTrendPercentage"`
}
