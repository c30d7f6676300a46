// internal/services/serpapi_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"snaplens-backend/internal/config"
	apperrors "snaplens-backend/pkg/errors"
)

// SerpAPIService queries the visual-search provider with a hosted image URL
// and returns the raw result payload.
type SerpAPIService interface {
	SearchByImageURL(ctx context.Context, imageURL string) ([]byte, error)
}

type serpAPIService struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewSerpAPIService(cfg *config.Config) SerpAPIService {
	return &serpAPIService{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: cfg.SerpAPI.BaseURL,
		apiKey:  cfg.SerpAPI.Key,
	}
}

func (s *serpAPIService) SearchByImageURL(ctx context.Context, imageURL string) ([]byte, error) {
	params := url.Values{}
	params.Set("engine", "google_lens")
	params.Set("api_key", s.apiKey)
	params.Set("no_cache", "true")
	params.Set("hl", "en")
	params.Set("gl", "us")
	params.Set("url", imageURL)

	requestURL := s.baseURL + "?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call search provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		zap.L().Warn("Search provider returned non-2xx status",
			zap.Int("status", resp.StatusCode))
		// Forward the provider's status code with whatever detail the body
		// offers, JSON error field first, raw text otherwise.
		return nil, apperrors.NewUpstreamError(resp.StatusCode, "SerpApi error", extractErrorDetail(body))
	}

	return body, nil
}

func extractErrorDetail(body []byte) string {
	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
		return parsed.Error
	}

	text := string(body)
	const maxDetail = 512
	if len(text) > maxDetail {
		text = text[:maxDetail]
	}
	return text
}
