package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout is a logged (or scheduled) training session for one customer.
type Workout struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID primitive.ObjectID `bson:"customerId" json:"customerId"`
	TrainerID  primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	Name       string             `bson:"name" json:"name"`
	Date       time.Time          `bson:"date" json:"date"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Completed  bool               `bson:"completed" json:"completed"`
	// Entries are denormalised into the workout document; a session is
	// read and written as a unit.
	Entries   []WorkoutEntry `bson:"entries,omitempty" json:"entries,omitempty"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// WorkoutEntry is one exercise line inside a workout.
type WorkoutEntry struct {
	ExerciseName string  `bson:"exerciseName" json:"exerciseName"`
	Sets         int     `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps         int     `bson:"reps,omitempty" json:"reps,omitempty"`
	WeightKg     float64 `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
}
