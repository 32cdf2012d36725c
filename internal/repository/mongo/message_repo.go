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

const messageCollectionName = "messages"

type mongoMessageRepository struct {
	collection *mongo.Collection
}

// NewMongoMessageRepository creates a new instance of mongoMessageRepository.
func NewMongoMessageRepository(db *mongo.Database) repository.MessageRepository {
	return &mongoMessageRepository{
		collection: db.Collection(messageCollectionName),
	}
}

func (r *mongoMessageRepository) Create(ctx context.Context, message *domain.Message) (primitive.ObjectID, error) {
	if message.CustomerID == primitive.NilObjectID || message.Sender == "" {
		return primitive.NilObjectID, errors.New("message customer ID and sender are required")
	}

	message.ID = primitive.NewObjectID()
	message.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, message)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByCustomerID returns the full thread in chronological order.
func (r *mongoMessageRepository) GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]domain.Message, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"customerId": customerID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []domain.Message{}
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// HasUnreadFromCustomer reports whether the customer has sent anything the
// trainer has not read yet. An existence check, not a count.
func (r *mongoMessageRepository) HasUnreadFromCustomer(ctx context.Context, customerID primitive.ObjectID) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{
		"customerId": customerID,
		"sender":     domain.SenderCustomer,
		"read":       false,
	}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// EnsureMessageIndexes creates necessary indexes for the messages collection.
func EnsureMessageIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "createdAt", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "sender", Value: 1}, {Key: "read", Value: 1}},
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
