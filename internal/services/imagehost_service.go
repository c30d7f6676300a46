// internal/services/imagehost_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"snaplens-backend/internal/config"
)

// ImageHostAPIService re-hosts an uploaded image on a public anonymous host
// so the visual-search provider can fetch it by URL.
type ImageHostAPIService interface {
	UploadImage(ctx context.Context, data []byte, filename, contentType string) (string, error)
}

type imageHostAPIService struct {
	httpClient *http.Client
	uploadURL  string
}

func NewImageHostAPIService(cfg *config.Config) ImageHostAPIService {
	return &imageHostAPIService{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		uploadURL: cfg.ImageHost.UploadURL,
	}
}

var bareURLPattern = regexp.MustCompile(`^https?://`)

func (s *imageHostAPIService) UploadImage(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	if filename == "" {
		filename = "upload.jpg"
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("reqtype", "fileupload"); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="fileToUpload"; filename="%s"`, strings.ReplaceAll(filename, `"`, "")))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call image host: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image host response: %w", err)
	}

	text := strings.TrimSpace(string(respBody))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		zap.L().Warn("Image host returned non-2xx status",
			zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	// The host answers a bare URL string; anything else is a failure.
	if !bareURLPattern.MatchString(text) {
		return "", fmt.Errorf("image host returned unexpected body")
	}

	return text, nil
}
