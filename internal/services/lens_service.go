// internal/services/lens_service.go
package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"snaplens-backend/internal/config"
	"snaplens-backend/internal/models"
	apperrors "snaplens-backend/pkg/errors"
)

// LensService runs the full visual-search pipeline: re-host the uploaded
// image, query the provider, normalize the result set.
type LensService interface {
	Search(ctx context.Context, image []byte, filename, contentType string) (*models.LensResponse, error)
}

type lensService struct {
	imageHost ImageHostAPIService
	provider  SerpAPIService
	apiKey    string
}

func NewLensService(cfg *config.Config, imageHost ImageHostAPIService, provider SerpAPIService) LensService {
	return &lensService{
		imageHost: imageHost,
		provider:  provider,
		apiKey:    cfg.SerpAPI.Key,
	}
}

func (s *lensService) Search(ctx context.Context, image []byte, filename, contentType string) (*models.LensResponse, error) {
	if s.apiKey == "" {
		return nil, apperrors.NewAppError(
			apperrors.ErrInternalServer,
			http.StatusInternalServerError,
			"Missing SERPAPI_KEY env. Create SerpApi key and set it.",
		)
	}

	hostedURL, err := s.imageHost.UploadImage(ctx, image, filename, contentType)
	if err != nil {
		zap.L().Warn("Image re-hosting failed", zap.Error(err))
		return nil, apperrors.NewUpstreamError(
			http.StatusBadGateway,
			"Failed to host image for visual search",
		)
	}

	raw, err := s.provider.SearchByImageURL(ctx, hostedURL)
	if err != nil {
		return nil, err
	}

	items := NormalizeLensResults(raw)

	zap.L().Debug("Visual search completed",
		zap.String("hosted_url", hostedURL),
		zap.Int("items", len(items)))

	return &models.LensResponse{Items: items}, nil
}
