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

const brandingCollectionName = "branding"

type mongoBrandingRepository struct {
	collection *mongo.Collection
}

// NewMongoBrandingRepository creates a new instance of mongoBrandingRepository.
func NewMongoBrandingRepository(db *mongo.Database) repository.BrandingRepository {
	return &mongoBrandingRepository{
		collection: db.Collection(brandingCollectionName),
	}
}

func (r *mongoBrandingRepository) GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) (*domain.Branding, error) {
	var branding domain.Branding
	err := r.collection.FindOne(ctx, bson.M{"trainerId": trainerID}).Decode(&branding)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &branding, nil
}

// GetDefault returns the most recently updated branding row. Single-tenant
// deploys have exactly one; the public endpoint uses this when no trainer
// is named.
func (r *mongoBrandingRepository) GetDefault(ctx context.Context) (*domain.Branding, error) {
	var branding domain.Branding
	err := r.collection.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})).Decode(&branding)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &branding, nil
}

func (r *mongoBrandingRepository) Upsert(ctx context.Context, branding *domain.Branding) error {
	now := time.Now().UTC()
	branding.UpdatedAt = now

	set := bson.M{
		"businessName": branding.BusinessName,
		"primaryColor": branding.PrimaryColor,
		"accentColor":  branding.AccentColor,
		"updatedAt":    now,
	}
	if branding.LogoKey != "" {
		set["logoKey"] = branding.LogoKey
	}

	_, err := r.collection.UpdateOne(ctx,
		bson.M{"trainerId": branding.TrainerID},
		bson.M{
			"$set": set,
			"$setOnInsert": bson.M{
				"_id": primitive.NewObjectID(),
			},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// EnsureBrandingIndexes creates necessary indexes for the branding collection.
func EnsureBrandingIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
