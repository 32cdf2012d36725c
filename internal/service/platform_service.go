package service

import (
	"context"
	"sync"

	"coachdesk/platform/internal/domain"
	"coachdesk/platform/internal/logger"
	"coachdesk/platform/internal/repository"
)

// TrainerWithCount is a trainer row decorated with its client count for the
// platform dashboard.
type TrainerWithCount struct {
	domain.Trainer
	ClientCount int64 `json:"clientCount"`
}

// PlatformService serves cross-tenant operations available only to
// platform admins.
type PlatformService interface {
	// ListTrainers returns every trainer with their client count. Counts
	// are fetched concurrently per trainer; the listing and the counts
	// are not one snapshot, which is accepted.
	ListTrainers(ctx context.Context) ([]TrainerWithCount, error)
}

type platformService struct {
	trainerRepo  repository.TrainerRepository
	customerRepo repository.CustomerRepository
}

// NewPlatformService creates a new instance of platformService.
func NewPlatformService(trainerRepo repository.TrainerRepository, customerRepo repository.CustomerRepository) PlatformService {
	return &platformService{
		trainerRepo:  trainerRepo,
		customerRepo: customerRepo,
	}
}

func (s *platformService) ListTrainers(ctx context.Context) ([]TrainerWithCount, error) {
	trainers, err := s.trainerRepo.ListTrainers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]TrainerWithCount, len(trainers))
	var wg sync.WaitGroup
	for i := range trainers {
		trainers[i].PasswordHash = ""
		result[i].Trainer = trainers[i]

		// Counts are independent reads with no ordering dependency, so
		// fan out one goroutine per trainer and join before responding.
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			count, err := s.customerRepo.CountByTrainerID(ctx, trainers[i].ID)
			if err != nil {
				// A count is advisory; a failed one degrades to zero
				// rather than failing the whole listing.
				logger.Get().Error().Err(err).
					Str("trainerId", trainers[i].ID.Hex()).
					Msg("client count failed")
				return
			}
			result[i].ClientCount = count
		}(i)
	}
	wg.Wait()

	return result, nil
}
