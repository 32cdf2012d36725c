package service

import (
	"context"
	"errors"
	"testing"

	"coachdesk/platform/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSendMessageEmptyBody(t *testing.T) {
	created := false
	messageRepo := &fakeMessageRepo{
		create: func(ctx context.Context, message *domain.Message) (primitive.ObjectID, error) {
			created = true
			return primitive.NewObjectID(), nil
		},
	}
	svc := NewCustomerService(&fakeCustomerRepo{}, nil, nil, nil, messageRepo)

	for _, body := range []string{"", "   ", "\n\t"} {
		if _, err := svc.SendMessage(context.Background(), primitive.NewObjectID(), body); !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("body %q: err = %v, want ErrEmptyMessage", body, err)
		}
	}
	if created {
		t.Error("empty message reached the store")
	}
}

func TestSendMessage(t *testing.T) {
	customerID := primitive.NewObjectID()
	trainerID := primitive.NewObjectID()

	customerRepo := &fakeCustomerRepo{
		getByID: func(ctx context.Context, id primitive.ObjectID) (*domain.Customer, error) {
			return &domain.Customer{ID: customerID, TrainerID: trainerID}, nil
		},
	}
	var stored *domain.Message
	messageRepo := &fakeMessageRepo{
		create: func(ctx context.Context, message *domain.Message) (primitive.ObjectID, error) {
			stored = message
			return primitive.NewObjectID(), nil
		},
	}
	svc := NewCustomerService(customerRepo, nil, nil, nil, messageRepo)

	msg, err := svc.SendMessage(context.Background(), customerID, "  hello coach  ")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if stored == nil {
		t.Fatal("nothing persisted")
	}
	if stored.Body != "hello coach" {
		t.Errorf("body = %q, want trimmed", stored.Body)
	}
	if stored.TrainerID != trainerID {
		t.Errorf("trainerId = %v, want customer's trainer", stored.TrainerID)
	}
	if stored.Sender != domain.SenderCustomer {
		t.Errorf("sender = %q", stored.Sender)
	}
	if msg.ID == primitive.NilObjectID {
		t.Error("returned message has no ID")
	}
}

func TestInfoStripsPasswordHash(t *testing.T) {
	customerRepo := &fakeCustomerRepo{
		getByID: func(ctx context.Context, id primitive.ObjectID) (*domain.Customer, error) {
			return &domain.Customer{ID: id, Name: "Amy", PasswordHash: "hash"}, nil
		},
	}
	svc := NewCustomerService(customerRepo, nil, nil, nil, &fakeMessageRepo{})

	customer, err := svc.Info(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if customer.PasswordHash != "" {
		t.Error("password hash leaked")
	}
}
