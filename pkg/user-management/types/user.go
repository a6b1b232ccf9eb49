package types

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Account    Account    `bson:"account" json:"account"`
	Timestamps Timestamps `bson:"timestamps" json:"timestamps"`
	Wellness   Wellness   `bson:"wellness" json:"wellness"`
}

// Wellness carries the program state written at assessment time. The
// initial weight is kept in kilograms so the weekly BMI trend never has to
// re-parse the original form input.
type Wellness struct {
	CompletedAssessment   bool    `bson:"completedAssessment" json:"completedAssessment"`
	AssessmentCompletedAt int64   `bson:"assessmentCompletedAt,omitempty" json:"assessmentCompletedAt,omitempty"`
	InitialWeightKg       float64 `bson:"initialWeightKg,omitempty" json:"initialWeightKg,omitempty"`
}

type Timestamps struct {
	CreatedAt   int64 `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64 `bson:"updatedAt" json:"updatedAt"`
	LastLoginAt int64 `bson:"lastLoginAt" json:"lastLoginAt"`
}
