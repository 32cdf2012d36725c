package service

import (
	"context"
	"errors"
	"time"

	"coachdesk/platform/internal/domain"
	"coachdesk/platform/internal/logger"
	"coachdesk/platform/internal/repository"
	"coachdesk/platform/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BrandingService serves the public branding read. It never returns an
// error: any failure falls back to the hardcoded defaults so the portal
// can always render.
type BrandingService interface {
	Get(ctx context.Context, trainerID string) domain.Branding
}

type brandingService struct {
	brandingRepo repository.BrandingRepository
	files        storage.FileStorage
}

// NewBrandingService creates a new instance of brandingService.
func NewBrandingService(brandingRepo repository.BrandingRepository, files storage.FileStorage) BrandingService {
	return &brandingService{brandingRepo: brandingRepo, files: files}
}

func (s *brandingService) Get(ctx context.Context, trainerID string) domain.Branding {
	var (
		branding *domain.Branding
		err      error
	)

	if trainerID != "" {
		oid, parseErr := primitive.ObjectIDFromHex(trainerID)
		if parseErr != nil {
			return domain.DefaultBranding()
		}
		branding, err = s.brandingRepo.GetByTrainerID(ctx, oid)
	} else {
		branding, err = s.brandingRepo.GetDefault(ctx)
	}
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Get().Error().Err(err).Msg("branding lookup failed, serving defaults")
		}
		return domain.DefaultBranding()
	}

	if branding.LogoKey != "" {
		url, err := s.files.GeneratePresignedDownloadURL(ctx, branding.LogoKey, time.Hour)
		if err != nil {
			logger.Get().Error().Err(err).Msg("logo presign failed")
		} else {
			branding.LogoURL = url
		}
	}
	return *branding
}
