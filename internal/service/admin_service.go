package service

import (
	"context"
	"errors"

	"coachdesk/platform/internal/domain"
	"coachdesk/platform/internal/repository"
	"coachdesk/platform/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrNoTrainerScope   = errors.New("operation requires a trainer-scoped account")
	ErrNotYourCustomer  = errors.New("customer does not belong to this trainer")
)

const minPasswordLength = 6

// AdminService serves the trainer/admin dashboard operations. Methods take
// the caller's trainer scope; primitive.NilObjectID means platform-admin
// (ownership predicates are skipped).
type AdminService interface {
	ListCustomers(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, trainerID primitive.ObjectID, name, email, phone, password string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID, trainerID primitive.ObjectID, upd repository.CustomerUpdate) (*domain.Customer, error)
	UpdateCustomerPassword(ctx context.Context, customerID, trainerID primitive.ObjectID, newPassword string) error
	HasUnreadMessages(ctx context.Context, customerID, trainerID primitive.ObjectID) (bool, error)
	// SeedDefaultExercises copies the platform default library into the
	// trainer's scope. Returns the number inserted; 0 when already seeded.
	SeedDefaultExercises(ctx context.Context, trainerID primitive.ObjectID) (int, error)
	UpdateBranding(ctx context.Context, trainerID primitive.ObjectID, branding *domain.Branding) error
	// LogoUploadURL issues a presigned PUT URL for a new logo object and
	// records the upload.
	LogoUploadURL(ctx context.Context, trainerID primitive.ObjectID, contentType string) (uploadURL, objectKey string, err error)
}

type adminService struct {
	customerRepo repository.CustomerRepository
	messageRepo  repository.MessageRepository
	exerciseRepo repository.ExerciseRepository
	brandingRepo repository.BrandingRepository
	uploadRepo   repository.UploadRepository
	files        storage.FileStorage
}

// NewAdminService creates a new instance of adminService.
func NewAdminService(
	customerRepo repository.CustomerRepository,
	messageRepo repository.MessageRepository,
	exerciseRepo repository.ExerciseRepository,
	brandingRepo repository.BrandingRepository,
	uploadRepo repository.UploadRepository,
	files storage.FileStorage,
) AdminService {
	return &adminService{
		customerRepo: customerRepo,
		messageRepo:  messageRepo,
		exerciseRepo: exerciseRepo,
		brandingRepo: brandingRepo,
		uploadRepo:   uploadRepo,
		files:        files,
	}
}

func (s *adminService) ListCustomers(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Customer, error) {
	customers, err := s.customerRepo.GetByTrainerID(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		customers[i].PasswordHash = ""
	}
	return customers, nil
}

func (s *adminService) CreateCustomer(ctx context.Context, trainerID primitive.ObjectID, name, email, phone, password string) (*domain.Customer, error) {
	if trainerID == primitive.NilObjectID {
		return nil, ErrNoTrainerScope
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	customer := &domain.Customer{
		TrainerID:    trainerID,
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
	}
	id, err := s.customerRepo.Create(ctx, customer)
	if err != nil {
		return nil, err
	}
	customer.ID = id
	customer.PasswordHash = ""
	return customer, nil
}

func (s *adminService) UpdateCustomer(ctx context.Context, customerID, trainerID primitive.ObjectID, upd repository.CustomerUpdate) (*domain.Customer, error) {
	customer, err := s.customerRepo.Update(ctx, customerID, trainerID, upd)
	if err != nil {
		return nil, err
	}
	customer.PasswordHash = ""
	return customer, nil
}

func (s *adminService) UpdateCustomerPassword(ctx context.Context, customerID, trainerID primitive.ObjectID, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrHashingFailed
	}
	return s.customerRepo.UpdatePassword(ctx, customerID, trainerID, string(hash))
}

func (s *adminService) HasUnreadMessages(ctx context.Context, customerID, trainerID primitive.ObjectID) (bool, error) {
	// Ownership first: a trainer-scoped admin may only ask about their
	// own customers.
	if trainerID != primitive.NilObjectID {
		customer, err := s.customerRepo.GetByID(ctx, customerID)
		if err != nil {
			return false, err
		}
		if customer.TrainerID != trainerID {
			return false, ErrNotYourCustomer
		}
	}
	return s.messageRepo.HasUnreadFromCustomer(ctx, customerID)
}

// defaultExercises is the starter library copied into new trainer accounts.
var defaultExercises = []domain.Exercise{
	{Name: "Back Squat", MuscleGroup: "legs"},
	{Name: "Deadlift", MuscleGroup: "back"},
	{Name: "Bench Press", MuscleGroup: "chest"},
	{Name: "Overhead Press", MuscleGroup: "shoulders"},
	{Name: "Barbell Row", MuscleGroup: "back"},
	{Name: "Pull-Up", MuscleGroup: "back"},
	{Name: "Plank", MuscleGroup: "core"},
	{Name: "Lunge", MuscleGroup: "legs"},
}

func (s *adminService) SeedDefaultExercises(ctx context.Context, trainerID primitive.ObjectID) (int, error) {
	if trainerID == primitive.NilObjectID {
		return 0, ErrNoTrainerScope
	}

	count, err := s.exerciseRepo.CountByTrainerID(ctx, trainerID)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		// Seeding twice must not duplicate the library.
		return 0, nil
	}

	exercises := make([]domain.Exercise, len(defaultExercises))
	copy(exercises, defaultExercises)
	for i := range exercises {
		exercises[i].TrainerID = trainerID
	}
	if err := s.exerciseRepo.InsertMany(ctx, exercises); err != nil {
		return 0, err
	}
	return len(exercises), nil
}

func (s *adminService) UpdateBranding(ctx context.Context, trainerID primitive.ObjectID, branding *domain.Branding) error {
	if trainerID == primitive.NilObjectID {
		return ErrNoTrainerScope
	}
	branding.TrainerID = trainerID
	return s.brandingRepo.Upsert(ctx, branding)
}

func (s *adminService) LogoUploadURL(ctx context.Context, trainerID primitive.ObjectID, contentType string) (string, string, error) {
	if trainerID == primitive.NilObjectID {
		return "", "", ErrNoTrainerScope
	}

	objectKey := storage.LogoObjectKey(trainerID.Hex())
	url, err := s.files.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", "", err
	}

	_, err = s.uploadRepo.Create(ctx, &domain.Upload{
		TrainerID:   trainerID,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Status:      domain.UploadPending,
	})
	if err != nil {
		return "", "", err
	}

	return url, objectKey, nil
}
