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

const customerCollectionName = "customers"

// mongoCustomerRepository implements repository.CustomerRepository using MongoDB.
type mongoCustomerRepository struct {
	collection *mongo.Collection
}

// NewMongoCustomerRepository creates a new instance of mongoCustomerRepository.
func NewMongoCustomerRepository(db *mongo.Database) repository.CustomerRepository {
	return &mongoCustomerRepository{
		collection: db.Collection(customerCollectionName),
	}
}

// ownerFilter builds the row-level ownership predicate. A nil trainer ID
// (platform admin) matches any row with the given id.
func ownerFilter(id, trainerID primitive.ObjectID) bson.M {
	filter := bson.M{"_id": id}
	if trainerID != primitive.NilObjectID {
		filter["trainerId"] = trainerID
	}
	return filter
}

func (r *mongoCustomerRepository) Create(ctx context.Context, customer *domain.Customer) (primitive.ObjectID, error) {
	if customer.Email == "" || customer.TrainerID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("customer email and trainer ID are required")
	}

	customer.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	customer.Active = true

	result, err := r.collection.InsertOne(ctx, customer)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, errors.New("customer with this email already exists")
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

func (r *mongoCustomerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *mongoCustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *mongoCustomerRepository) GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Customer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"trainerId": trainerID},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	customers := []domain.Customer{}
	if err = cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *mongoCustomerRepository) CountByTrainerID(ctx context.Context, trainerID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"trainerId": trainerID})
}

// Update applies the non-nil fields and returns the updated document.
func (r *mongoCustomerRepository) Update(ctx context.Context, id, trainerID primitive.ObjectID, upd repository.CustomerUpdate) (*domain.Customer, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}
	if upd.Active != nil {
		set["active"] = *upd.Active
	}

	var customer domain.Customer
	err := r.collection.FindOneAndUpdate(ctx,
		ownerFilter(id, trainerID),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *mongoCustomerRepository) UpdatePassword(ctx context.Context, id, trainerID primitive.ObjectID, passwordHash string) error {
	result, err := r.collection.UpdateOne(ctx,
		ownerFilter(id, trainerID),
		bson.M{"$set": bson.M{
			"passwordHash": passwordHash,
			"updatedAt":    time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureCustomerIndexes creates necessary indexes for the customers collection.
func EnsureCustomerIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "trainerId", Value: 1}},
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
