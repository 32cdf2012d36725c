package service

import (
	"context"
	"errors"

	"coachdesk/platform/internal/domain"
	"coachdesk/platform/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Function-field fakes. Unset methods fail loudly so a test only wires what
// it exercises.

var errFakeUnset = errors.New("fake method not set")

type fakeCustomerRepo struct {
	create           func(ctx context.Context, customer *domain.Customer) (primitive.ObjectID, error)
	getByID          func(ctx context.Context, id primitive.ObjectID) (*domain.Customer, error)
	getByEmail       func(ctx context.Context, email string) (*domain.Customer, error)
	getByTrainerID   func(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Customer, error)
	countByTrainerID func(ctx context.Context, trainerID primitive.ObjectID) (int64, error)
	update           func(ctx context.Context, id, trainerID primitive.ObjectID, upd repository.CustomerUpdate) (*domain.Customer, error)
	updatePassword   func(ctx context.Context, id, trainerID primitive.ObjectID, passwordHash string) error
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *domain.Customer) (primitive.ObjectID, error) {
	if f.create == nil {
		return primitive.NilObjectID, errFakeUnset
	}
	return f.create(ctx, customer)
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Customer, error) {
	if f.getByID == nil {
		return nil, errFakeUnset
	}
	return f.getByID(ctx, id)
}

func (f *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	if f.getByEmail == nil {
		return nil, errFakeUnset
	}
	return f.getByEmail(ctx, email)
}

func (f *fakeCustomerRepo) GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Customer, error) {
	if f.getByTrainerID == nil {
		return nil, errFakeUnset
	}
	return f.getByTrainerID(ctx, trainerID)
}

func (f *fakeCustomerRepo) CountByTrainerID(ctx context.Context, trainerID primitive.ObjectID) (int64, error) {
	if f.countByTrainerID == nil {
		return 0, errFakeUnset
	}
	return f.countByTrainerID(ctx, trainerID)
}

func (f *fakeCustomerRepo) Update(ctx context.Context, id, trainerID primitive.ObjectID, upd repository.CustomerUpdate) (*domain.Customer, error) {
	if f.update == nil {
		return nil, errFakeUnset
	}
	return f.update(ctx, id, trainerID, upd)
}

func (f *fakeCustomerRepo) UpdatePassword(ctx context.Context, id, trainerID primitive.ObjectID, passwordHash string) error {
	if f.updatePassword == nil {
		return errFakeUnset
	}
	return f.updatePassword(ctx, id, trainerID, passwordHash)
}

type fakeTrainerRepo struct {
	listTrainers func(ctx context.Context) ([]domain.Trainer, error)
}

func (f *fakeTrainerRepo) Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error) {
	return primitive.NilObjectID, errFakeUnset
}

func (f *fakeTrainerRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	return nil, errFakeUnset
}

func (f *fakeTrainerRepo) GetByEmail(ctx context.Context, email string) (*domain.Trainer, error) {
	return nil, errFakeUnset
}

func (f *fakeTrainerRepo) ListTrainers(ctx context.Context) ([]domain.Trainer, error) {
	if f.listTrainers == nil {
		return nil, errFakeUnset
	}
	return f.listTrainers(ctx)
}

type fakeMessageRepo struct {
	create                func(ctx context.Context, message *domain.Message) (primitive.ObjectID, error)
	getByCustomerID       func(ctx context.Context, customerID primitive.ObjectID) ([]domain.Message, error)
	hasUnreadFromCustomer func(ctx context.Context, customerID primitive.ObjectID) (bool, error)
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *domain.Message) (primitive.ObjectID, error) {
	if f.create == nil {
		return primitive.NilObjectID, errFakeUnset
	}
	return f.create(ctx, message)
}

func (f *fakeMessageRepo) GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]domain.Message, error) {
	if f.getByCustomerID == nil {
		return nil, errFakeUnset
	}
	return f.getByCustomerID(ctx, customerID)
}

func (f *fakeMessageRepo) HasUnreadFromCustomer(ctx context.Context, customerID primitive.ObjectID) (bool, error) {
	if f.hasUnreadFromCustomer == nil {
		return false, errFakeUnset
	}
	return f.hasUnreadFromCustomer(ctx, customerID)
}

type fakeExerciseRepo struct {
	insertMany       func(ctx context.Context, exercises []domain.Exercise) error
	countByTrainerID func(ctx context.Context, trainerID primitive.ObjectID) (int64, error)
}

func (f *fakeExerciseRepo) InsertMany(ctx context.Context, exercises []domain.Exercise) error {
	if f.insertMany == nil {
		return errFakeUnset
	}
	return f.insertMany(ctx, exercises)
}

func (f *fakeExerciseRepo) CountByTrainerID(ctx context.Context, trainerID primitive.ObjectID) (int64, error) {
	if f.countByTrainerID == nil {
		return 0, errFakeUnset
	}
	return f.countByTrainerID(ctx, trainerID)
}

func (f *fakeExerciseRepo) GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Exercise, error) {
	return nil, errFakeUnset
}
