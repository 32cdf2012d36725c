package service

import (
	"context"
	"errors"
	"testing"

	"coachdesk/platform/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListTrainersWithCounts(t *testing.T) {
	t1 := primitive.NewObjectID()
	t2 := primitive.NewObjectID()
	t3 := primitive.NewObjectID()

	counts := map[primitive.ObjectID]int64{t1: 5, t2: 0, t3: 12}

	trainerRepo := &fakeTrainerRepo{
		listTrainers: func(ctx context.Context) ([]domain.Trainer, error) {
			return []domain.Trainer{
				{ID: t1, Name: "Alpha", PasswordHash: "hash"},
				{ID: t2, Name: "Bravo", PasswordHash: "hash"},
				{ID: t3, Name: "Charlie", PasswordHash: "hash"},
			}, nil
		},
	}
	customerRepo := &fakeCustomerRepo{
		countByTrainerID: func(ctx context.Context, trainerID primitive.ObjectID) (int64, error) {
			return counts[trainerID], nil
		},
	}

	svc := NewPlatformService(trainerRepo, customerRepo)
	result, err := svc.ListTrainers(context.Background())
	if err != nil {
		t.Fatalf("ListTrainers: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("len = %d, want 3", len(result))
	}

	// Row order must follow the listing even though counts are fetched
	// concurrently.
	for i, want := range []struct {
		name  string
		count int64
	}{{"Alpha", 5}, {"Bravo", 0}, {"Charlie", 12}} {
		if result[i].Name != want.name {
			t.Errorf("result[%d].Name = %q, want %q", i, result[i].Name, want.name)
		}
		if result[i].ClientCount != want.count {
			t.Errorf("result[%d].ClientCount = %d, want %d", i, result[i].ClientCount, want.count)
		}
		if result[i].PasswordHash != "" {
			t.Errorf("result[%d] leaks password hash", i)
		}
	}
}

func TestListTrainersCountFailureDegrades(t *testing.T) {
	t1 := primitive.NewObjectID()
	t2 := primitive.NewObjectID()

	trainerRepo := &fakeTrainerRepo{
		listTrainers: func(ctx context.Context) ([]domain.Trainer, error) {
			return []domain.Trainer{{ID: t1, Name: "Alpha"}, {ID: t2, Name: "Bravo"}}, nil
		},
	}
	customerRepo := &fakeCustomerRepo{
		countByTrainerID: func(ctx context.Context, trainerID primitive.ObjectID) (int64, error) {
			if trainerID == t1 {
				return 0, errors.New("timeout")
			}
			return 7, nil
		},
	}

	svc := NewPlatformService(trainerRepo, customerRepo)
	result, err := svc.ListTrainers(context.Background())
	if err != nil {
		t.Fatalf("ListTrainers: %v", err)
	}
	if result[0].ClientCount != 0 {
		t.Errorf("failed count = %d, want 0", result[0].ClientCount)
	}
	if result[1].ClientCount != 7 {
		t.Errorf("healthy count = %d, want 7", result[1].ClientCount)
	}
}

func TestListTrainersListingFailure(t *testing.T) {
	trainerRepo := &fakeTrainerRepo{
		listTrainers: func(ctx context.Context) ([]domain.Trainer, error) {
			return nil, errors.New("connection reset")
		},
	}

	svc := NewPlatformService(trainerRepo, &fakeCustomerRepo{})
	if _, err := svc.ListTrainers(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
