package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WeightGoal tracks a customer's target weight over a date range.
// Listings are ordered by StartDate descending (most recent goal first).
type WeightGoal struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID    primitive.ObjectID `bson:"customerId" json:"customerId"`
	StartWeightKg float64            `bson:"startWeightKg" json:"startWeightKg"`
	GoalWeightKg  float64            `bson:"goalWeightKg" json:"goalWeightKg"`
	StartDate     time.Time          `bson:"startDate" json:"startDate"`
	TargetDate    *time.Time         `bson:"targetDate,omitempty" json:"targetDate,omitempty"`
	Achieved      bool               `bson:"achieved" json:"achieved"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
