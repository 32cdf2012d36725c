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

const weightGoalCollectionName = "weight_goals"

type mongoWeightGoalRepository struct {
	collection *mongo.Collection
}

// NewMongoWeightGoalRepository creates a new instance of mongoWeightGoalRepository.
func NewMongoWeightGoalRepository(db *mongo.Database) repository.WeightGoalRepository {
	return &mongoWeightGoalRepository{
		collection: db.Collection(weightGoalCollectionName),
	}
}

func (r *mongoWeightGoalRepository) Create(ctx context.Context, goal *domain.WeightGoal) (primitive.ObjectID, error) {
	if goal.CustomerID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("weight goal customer ID is required")
	}

	goal.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	goal.CreatedAt = now
	goal.UpdatedAt = now
	if goal.StartDate.IsZero() {
		goal.StartDate = now
	}

	result, err := r.collection.InsertOne(ctx, goal)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByCustomerID returns the customer's goals ordered by start date
// descending, most recent first.
func (r *mongoWeightGoalRepository) GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]domain.WeightGoal, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"customerId": customerID},
		options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	goals := []domain.WeightGoal{}
	if err = cursor.All(ctx, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// EnsureWeightGoalIndexes creates necessary indexes for weight goals.
func EnsureWeightGoalIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "startDate", Value: -1}},
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
