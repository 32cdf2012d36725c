package api

import (
	"context"
	"errors"

	"coachdesk/platform/internal/domain"
	"coachdesk/platform/internal/repository"
	"coachdesk/platform/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errFakeUnset = errors.New("fake method not set")

type fakeAuthService struct {
	customerLogin func(ctx context.Context, email, password string) (string, *domain.Customer, error)
	adminLogin    func(ctx context.Context, email, password string) (string, string, *domain.Trainer, error)
	deleteSession func(ctx context.Context, handle string) error
}

func (f *fakeAuthService) CustomerLogin(ctx context.Context, email, password string) (string, *domain.Customer, error) {
	if f.customerLogin == nil {
		return "", nil, errFakeUnset
	}
	return f.customerLogin(ctx, email, password)
}

func (f *fakeAuthService) AdminLogin(ctx context.Context, email, password string) (string, string, *domain.Trainer, error) {
	if f.adminLogin == nil {
		return "", "", nil, errFakeUnset
	}
	return f.adminLogin(ctx, email, password)
}

func (f *fakeAuthService) DeleteSession(ctx context.Context, handle string) error {
	if f.deleteSession == nil {
		return errFakeUnset
	}
	return f.deleteSession(ctx, handle)
}

type fakeCustomerService struct {
	info        func(ctx context.Context, customerID primitive.ObjectID) (*domain.Customer, error)
	workouts    func(ctx context.Context, customerID primitive.ObjectID) ([]domain.Workout, error)
	weightGoals func(ctx context.Context, customerID primitive.ObjectID) ([]domain.WeightGoal, error)
}

func (f *fakeCustomerService) Info(ctx context.Context, customerID primitive.ObjectID) (*domain.Customer, error) {
	if f.info == nil {
		return nil, errFakeUnset
	}
	return f.info(ctx, customerID)
}

func (f *fakeCustomerService) Workouts(ctx context.Context, customerID primitive.ObjectID) ([]domain.Workout, error) {
	if f.workouts == nil {
		return nil, errFakeUnset
	}
	return f.workouts(ctx, customerID)
}

func (f *fakeCustomerService) Nutrition(ctx context.Context, customerID primitive.ObjectID) (*domain.NutritionTarget, error) {
	return nil, nil
}

func (f *fakeCustomerService) WeightGoals(ctx context.Context, customerID primitive.ObjectID) ([]domain.WeightGoal, error) {
	if f.weightGoals == nil {
		return nil, errFakeUnset
	}
	return f.weightGoals(ctx, customerID)
}

func (f *fakeCustomerService) Messages(ctx context.Context, customerID primitive.ObjectID) ([]domain.Message, error) {
	return []domain.Message{}, nil
}

func (f *fakeCustomerService) SendMessage(ctx context.Context, customerID primitive.ObjectID, body string) (*domain.Message, error) {
	return nil, errFakeUnset
}

type fakeAdminService struct {
	listCustomers  func(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Customer, error)
	updatePassword func(ctx context.Context, customerID, trainerID primitive.ObjectID, newPassword string) error
	seedDefaults   func(ctx context.Context, trainerID primitive.ObjectID) (int, error)
}

func (f *fakeAdminService) ListCustomers(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Customer, error) {
	if f.listCustomers == nil {
		return nil, errFakeUnset
	}
	return f.listCustomers(ctx, trainerID)
}

func (f *fakeAdminService) CreateCustomer(ctx context.Context, trainerID primitive.ObjectID, name, email, phone, password string) (*domain.Customer, error) {
	return nil, errFakeUnset
}

func (f *fakeAdminService) UpdateCustomer(ctx context.Context, customerID, trainerID primitive.ObjectID, upd repository.CustomerUpdate) (*domain.Customer, error) {
	return nil, errFakeUnset
}

func (f *fakeAdminService) UpdateCustomerPassword(ctx context.Context, customerID, trainerID primitive.ObjectID, newPassword string) error {
	if f.updatePassword == nil {
		return errFakeUnset
	}
	return f.updatePassword(ctx, customerID, trainerID, newPassword)
}

func (f *fakeAdminService) HasUnreadMessages(ctx context.Context, customerID, trainerID primitive.ObjectID) (bool, error) {
	return false, errFakeUnset
}

func (f *fakeAdminService) SeedDefaultExercises(ctx context.Context, trainerID primitive.ObjectID) (int, error) {
	if f.seedDefaults == nil {
		return 0, errFakeUnset
	}
	return f.seedDefaults(ctx, trainerID)
}

func (f *fakeAdminService) UpdateBranding(ctx context.Context, trainerID primitive.ObjectID, branding *domain.Branding) error {
	return errFakeUnset
}

func (f *fakeAdminService) LogoUploadURL(ctx context.Context, trainerID primitive.ObjectID, contentType string) (string, string, error) {
	return "", "", errFakeUnset
}

type fakePlatformService struct {
	listTrainers func(ctx context.Context) ([]service.TrainerWithCount, error)
}

func (f *fakePlatformService) ListTrainers(ctx context.Context) ([]service.TrainerWithCount, error) {
	if f.listTrainers == nil {
		return nil, errFakeUnset
	}
	return f.listTrainers(ctx)
}

type fakeBrandingService struct {
	get func(ctx context.Context, trainerID string) domain.Branding
}

func (f *fakeBrandingService) Get(ctx context.Context, trainerID string) domain.Branding {
	if f.get == nil {
		return domain.DefaultBranding()
	}
	return f.get(ctx, trainerID)
}

type fakeBillingService struct {
	tiers []service.Tier
}

func (f *fakeBillingService) Tiers() []service.Tier {
	return f.tiers
}

func (f *fakeBillingService) TierByName(name string) (service.Tier, bool) {
	for _, t := range f.tiers {
		if t.Name == name {
			return t, true
		}
	}
	return service.Tier{}, false
}
