package mongo

import (
	"context"
	"errors"
	"time"

	"coachdesk/platform/internal/domain"
	"coachdesk/platform/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const nutritionCollectionName = "nutrition_targets"

type mongoNutritionRepository struct {
	collection *mongo.Collection
}

// NewMongoNutritionRepository creates a new instance of mongoNutritionRepository.
func NewMongoNutritionRepository(db *mongo.Database) repository.NutritionRepository {
	return &mongoNutritionRepository{
		collection: db.Collection(nutritionCollectionName),
	}
}

func (r *mongoNutritionRepository) GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) (*domain.NutritionTarget, error) {
	var target domain.NutritionTarget
	err := r.collection.FindOne(ctx, bson.M{"customerId": customerID}).Decode(&target)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &target, nil
}

// Upsert replaces the customer's single active target.
func (r *mongoNutritionRepository) Upsert(ctx context.Context, target *domain.NutritionTarget) error {
	now := time.Now().UTC()
	target.UpdatedAt = now

	_, err := r.collection.UpdateOne(ctx,
		bson.M{"customerId": target.CustomerID},
		bson.M{
			"$set": bson.M{
				"trainerId": target.TrainerID,
				"calories":  target.Calories,
				"proteinG":  target.ProteinG,
				"carbsG":    target.CarbsG,
				"fatG":      target.FatG,
				"updatedAt": now,
			},
			"$setOnInsert": bson.M{
				"_id":       primitive.NewObjectID(),
				"createdAt": now,
			},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// EnsureNutritionIndexes creates necessary indexes for nutrition targets.
func EnsureNutritionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "customerId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
