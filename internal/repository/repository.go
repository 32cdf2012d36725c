package repository

import (
	"context"

	"coachdesk/platform/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// CustomerUpdate carries the mutable customer fields; nil means "leave
// unchanged".
type CustomerUpdate struct {
	Name   *string
	Email  *string
	Phone  *string
	Notes  *string
	Active *bool
}

// CustomerRepository defines the interface for interacting with customer data.
//
// Methods taking a trainerID apply it as a row-level ownership predicate;
// primitive.NilObjectID skips the predicate (platform-admin access).
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Customer, error)
	CountByTrainerID(ctx context.Context, trainerID primitive.ObjectID) (int64, error)
	Update(ctx context.Context, id, trainerID primitive.ObjectID, upd CustomerUpdate) (*domain.Customer, error)
	UpdatePassword(ctx context.Context, id, trainerID primitive.ObjectID, passwordHash string) error
}

// TrainerRepository defines the interface for interacting with trainer data.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Trainer, error)
	ListTrainers(ctx context.Context) ([]domain.Trainer, error)
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]domain.Workout, error)
}

// NutritionRepository manages the single active target per customer.
type NutritionRepository interface {
	GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) (*domain.NutritionTarget, error)
	Upsert(ctx context.Context, target *domain.NutritionTarget) error
}

// WeightGoalRepository defines the interface for interacting with weight goals.
type WeightGoalRepository interface {
	Create(ctx context.Context, goal *domain.WeightGoal) (primitive.ObjectID, error)
	GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]domain.WeightGoal, error)
}

// MessageRepository defines the interface for the trainer/customer thread.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) (primitive.ObjectID, error)
	GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]domain.Message, error)
	HasUnreadFromCustomer(ctx context.Context, customerID primitive.ObjectID) (bool, error)
}

// ExerciseRepository defines the interface for a trainer's exercise library.
type ExerciseRepository interface {
	InsertMany(ctx context.Context, exercises []domain.Exercise) error
	CountByTrainerID(ctx context.Context, trainerID primitive.ObjectID) (int64, error)
	GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Exercise, error)
}

// BrandingRepository defines the interface for portal branding rows.
type BrandingRepository interface {
	GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) (*domain.Branding, error)
	GetDefault(ctx context.Context) (*domain.Branding, error)
	Upsert(ctx context.Context, branding *domain.Branding) error
}

// UploadRepository defines the interface for upload metadata.
type UploadRepository interface {
	Create(ctx context.Context, upload *domain.Upload) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Upload, error)
}
