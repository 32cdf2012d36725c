package service

import (
	"context"
	"errors"
	"testing"

	"coachdesk/platform/internal/domain"
	"coachdesk/platform/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func newAdminService(customerRepo repository.CustomerRepository, messageRepo repository.MessageRepository, exerciseRepo repository.ExerciseRepository) AdminService {
	return NewAdminService(customerRepo, messageRepo, exerciseRepo, nil, nil, nil)
}

func TestCreateCustomerShortPassword(t *testing.T) {
	svc := newAdminService(&fakeCustomerRepo{}, &fakeMessageRepo{}, &fakeExerciseRepo{})

	_, err := svc.CreateCustomer(context.Background(), primitive.NewObjectID(), "Amy", "amy@example.com", "", "12345")
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("err = %v, want ErrPasswordTooShort", err)
	}
}

func TestCreateCustomerRequiresTrainerScope(t *testing.T) {
	svc := newAdminService(&fakeCustomerRepo{}, &fakeMessageRepo{}, &fakeExerciseRepo{})

	_, err := svc.CreateCustomer(context.Background(), primitive.NilObjectID, "Amy", "amy@example.com", "", "123456")
	if !errors.Is(err, ErrNoTrainerScope) {
		t.Errorf("err = %v, want ErrNoTrainerScope", err)
	}
}

func TestCreateCustomerHashesPassword(t *testing.T) {
	var stored *domain.Customer
	customerRepo := &fakeCustomerRepo{
		create: func(ctx context.Context, customer *domain.Customer) (primitive.ObjectID, error) {
			stored = customer
			return primitive.NewObjectID(), nil
		},
	}
	svc := newAdminService(customerRepo, &fakeMessageRepo{}, &fakeExerciseRepo{})

	trainerID := primitive.NewObjectID()
	customer, err := svc.CreateCustomer(context.Background(), trainerID, "Amy", "amy@example.com", "555", "secret99")
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}
	if stored == nil {
		t.Fatal("nothing persisted")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret99")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if stored.TrainerID != trainerID {
		t.Errorf("trainerId = %v, want %v", stored.TrainerID, trainerID)
	}
	if customer.PasswordHash != "" {
		t.Error("returned customer leaks password hash")
	}
}

func TestUpdatePasswordShortCircuitsBeforeStore(t *testing.T) {
	called := false
	customerRepo := &fakeCustomerRepo{
		updatePassword: func(ctx context.Context, id, trainerID primitive.ObjectID, hash string) error {
			called = true
			return nil
		},
	}
	svc := newAdminService(customerRepo, &fakeMessageRepo{}, &fakeExerciseRepo{})

	err := svc.UpdateCustomerPassword(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), "12345")
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("err = %v, want ErrPasswordTooShort", err)
	}
	if called {
		t.Error("store was called for a rejected password")
	}
}

func TestHasUnreadMessagesOwnership(t *testing.T) {
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()
	customerID := primitive.NewObjectID()

	customerRepo := &fakeCustomerRepo{
		getByID: func(ctx context.Context, id primitive.ObjectID) (*domain.Customer, error) {
			return &domain.Customer{ID: customerID, TrainerID: owner}, nil
		},
	}
	messageRepo := &fakeMessageRepo{
		hasUnreadFromCustomer: func(ctx context.Context, id primitive.ObjectID) (bool, error) {
			return true, nil
		},
	}
	svc := newAdminService(customerRepo, messageRepo, &fakeExerciseRepo{})

	// The owning trainer gets the answer.
	hasUnread, err := svc.HasUnreadMessages(context.Background(), customerID, owner)
	if err != nil {
		t.Fatalf("owner query: %v", err)
	}
	if !hasUnread {
		t.Error("hasUnread = false, want true")
	}

	// Another trainer is refused.
	if _, err := svc.HasUnreadMessages(context.Background(), customerID, other); !errors.Is(err, ErrNotYourCustomer) {
		t.Errorf("err = %v, want ErrNotYourCustomer", err)
	}

	// A platform admin skips the ownership check entirely.
	if _, err := svc.HasUnreadMessages(context.Background(), customerID, primitive.NilObjectID); err != nil {
		t.Errorf("platform admin query: %v", err)
	}
}

func TestSeedDefaultExercises(t *testing.T) {
	trainerID := primitive.NewObjectID()
	var inserted []domain.Exercise
	exerciseRepo := &fakeExerciseRepo{
		countByTrainerID: func(ctx context.Context, id primitive.ObjectID) (int64, error) {
			return int64(len(inserted)), nil
		},
		insertMany: func(ctx context.Context, exercises []domain.Exercise) error {
			inserted = append(inserted, exercises...)
			return nil
		},
	}
	svc := newAdminService(&fakeCustomerRepo{}, &fakeMessageRepo{}, exerciseRepo)

	n, err := svc.SeedDefaultExercises(context.Background(), trainerID)
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if n == 0 {
		t.Fatal("first seed inserted nothing")
	}
	for _, ex := range inserted {
		if ex.TrainerID != trainerID {
			t.Fatalf("exercise %q seeded without trainer scope", ex.Name)
		}
	}

	// Seeding again must be a no-op, not a duplicate library.
	n, err = svc.SeedDefaultExercises(context.Background(), trainerID)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if n != 0 {
		t.Errorf("second seed inserted %d", n)
	}
}

func TestSeedDefaultExercisesRequiresScope(t *testing.T) {
	svc := newAdminService(&fakeCustomerRepo{}, &fakeMessageRepo{}, &fakeExerciseRepo{})

	if _, err := svc.SeedDefaultExercises(context.Background(), primitive.NilObjectID); !errors.Is(err, ErrNoTrainerScope) {
		t.Errorf("err = %v, want ErrNoTrainerScope", err)
	}
}
