package wellness

import "go.mongodb.org/mongo-driver/bson/primitive"

// DailyHealthEntry is the daily tracker document. At most one entry exists
// per user and calendar day; the tracker screen overwrites on re-submit.
// Date is an ISO YYYY-MM-DD string, which keeps range queries safe under
// plain lexical comparison.
type DailyHealthEntry struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID string             `bson:"userID" json:"userID"`
	Date   string             `bson:"date" json:"date"`

	DietRating   string `bson:"dietRating,omitempty" json:"dietRating,omitempty"`
	StressRating string `bson:"stressRating,omitempty" json:"stressRating,omitempty"`

	CaffeinatedDrinks int `bson:"caffeinatedDrinks" json:"caffeinatedDrinks"`
	VegetableServings int `bson:"vegetableServings" json:"vegetableServings"`
	SugaryDrinks      int `bson:"sugaryDrinks" json:"sugaryDrinks"`
	FastFoodMeals     int `bson:"fastFoodMeals" json:"fastFoodMeals"`

	ActivityMinutes int    `bson:"activityMinutes" json:"activityMinutes"`
	Goal            string `bson:"goal,omitempty" json:"goal,omitempty"`

	Weight *Measurement `bson:"weight,omitempty" json:"weight,omitempty"`

	UpdatedAt int64 `bson:"updatedAt" json:"updatedAt"`
}

// SleepEntry is the nightly sleep log, keyed like DailyHealthEntry.
type SleepEntry struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID string             `bson:"userID" json:"userID"`
	Date   string             `bson:"date" json:"date"`

	MinutesAsleep       int `bson:"minutesAsleep" json:"minutesAsleep"`
	MinutesToFallAsleep int `bson:"minutesToFallAsleep" json:"minutesToFallAsleep"`
	MinutesAwakeAtNight int `bson:"minutesAwakeAtNight" json:"minutesAwakeAtNight"`
	TimesWokenUp        int `bson:"timesWokenUp" json:"timesWokenUp"`

	UpdatedAt int64 `bson:"updatedAt" json:"updatedAt"`
}
