package service

import (
	"context"
	"errors"
	"strings"

	"coachdesk/platform/internal/domain"
	"coachdesk/platform/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrEmptyMessage = errors.New("message body cannot be empty")

// CustomerService serves the customer-facing read surface plus messaging.
type CustomerService interface {
	Info(ctx context.Context, customerID primitive.ObjectID) (*domain.Customer, error)
	// Workouts returns the customer's sessions ordered by date ascending.
	Workouts(ctx context.Context, customerID primitive.ObjectID) ([]domain.Workout, error)
	// Nutrition returns nil (not an error) when no target is set.
	Nutrition(ctx context.Context, customerID primitive.ObjectID) (*domain.NutritionTarget, error)
	// WeightGoals returns goals ordered by start date descending.
	WeightGoals(ctx context.Context, customerID primitive.ObjectID) ([]domain.WeightGoal, error)
	Messages(ctx context.Context, customerID primitive.ObjectID) ([]domain.Message, error)
	SendMessage(ctx context.Context, customerID primitive.ObjectID, body string) (*domain.Message, error)
}

type customerService struct {
	customerRepo   repository.CustomerRepository
	workoutRepo    repository.WorkoutRepository
	nutritionRepo  repository.NutritionRepository
	weightGoalRepo repository.WeightGoalRepository
	messageRepo    repository.MessageRepository
}

// NewCustomerService creates a new instance of customerService.
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	workoutRepo repository.WorkoutRepository,
	nutritionRepo repository.NutritionRepository,
	weightGoalRepo repository.WeightGoalRepository,
	messageRepo repository.MessageRepository,
) CustomerService {
	return &customerService{
		customerRepo:   customerRepo,
		workoutRepo:    workoutRepo,
		nutritionRepo:  nutritionRepo,
		weightGoalRepo: weightGoalRepo,
		messageRepo:    messageRepo,
	}
}

func (s *customerService) Info(ctx context.Context, customerID primitive.ObjectID) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	customer.PasswordHash = ""
	return customer, nil
}

func (s *customerService) Workouts(ctx context.Context, customerID primitive.ObjectID) ([]domain.Workout, error) {
	return s.workoutRepo.GetByCustomerID(ctx, customerID)
}

func (s *customerService) Nutrition(ctx context.Context, customerID primitive.ObjectID) (*domain.NutritionTarget, error) {
	target, err := s.nutritionRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		// No target is a normal state for a new customer.
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return target, nil
}

func (s *customerService) WeightGoals(ctx context.Context, customerID primitive.ObjectID) ([]domain.WeightGoal, error) {
	return s.weightGoalRepo.GetByCustomerID(ctx, customerID)
}

func (s *customerService) Messages(ctx context.Context, customerID primitive.ObjectID) ([]domain.Message, error) {
	return s.messageRepo.GetByCustomerID(ctx, customerID)
}

func (s *customerService) SendMessage(ctx context.Context, customerID primitive.ObjectID, body string) (*domain.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}

	// The thread's trainer side is the customer's own trainer.
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	message := &domain.Message{
		CustomerID: customerID,
		TrainerID:  customer.TrainerID,
		Sender:     domain.SenderCustomer,
		Body:       body,
	}
	id, err := s.messageRepo.Create(ctx, message)
	if err != nil {
		return nil, err
	}
	message.ID = id
	return message, nil
}
