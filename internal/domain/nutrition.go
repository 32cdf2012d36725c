package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NutritionTarget is the single active macro target for a customer.
// A customer without one is a normal state, not an error.
type NutritionTarget struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID primitive.ObjectID `bson:"customerId" json:"customerId"`
	TrainerID  primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	Calories   int                `bson:"calories" json:"calories"`
	ProteinG   int                `bson:"proteinG" json:"proteinG"`
	CarbsG     int                `bson:"carbsG" json:"carbsG"`
	FatG       int                `bson:"fatG" json:"fatG"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
