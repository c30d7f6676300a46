package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snaplens-backend/internal/config"
)

func newImageHostService(uploadURL string) ImageHostAPIService {
	return NewImageHostAPIService(&config.Config{
		ImageHost: config.ImageHostConfig{UploadURL: uploadURL},
	})
}

func TestImageHostService_UploadImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "fileupload", r.FormValue("reqtype"))

		file, header, err := r.FormFile("fileToUpload")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "photo.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		w.Write([]byte("https://files.example/abc.png\n"))
	}))
	defer server.Close()

	svc := newImageHostService(server.URL)
	url, err := svc.UploadImage(context.Background(), []byte("png-bytes"), "photo.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://files.example/abc.png", url)
}

func TestImageHostService_UploadImage_Defaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("fileToUpload")
		require.NoError(t, err)
		assert.Equal(t, "upload.jpg", header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))
		w.Write([]byte("https://files.example/x.jpg"))
	}))
	defer server.Close()

	svc := newImageHostService(server.URL)
	_, err := svc.UploadImage(context.Background(), []byte("bytes"), "", "")
	require.NoError(t, err)
}

func TestImageHostService_UploadImage_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := newImageHostService(server.URL)
	_, err := svc.UploadImage(context.Background(), []byte("bytes"), "a.jpg", "image/jpeg")
	require.Error(t, err)
}

func TestImageHostService_UploadImage_NonURLBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Something went wrong"))
	}))
	defer server.Close()

	svc := newImageHostService(server.URL)
	_, err := svc.UploadImage(context.Background(), []byte("bytes"), "a.jpg", "image/jpeg")
	require.Error(t, err)
}

func TestImageHostService_UploadImage_NetworkError(t *testing.T) {
	svc := newImageHostService("http://127.0.0.1:0")
	_, err := svc.UploadImage(context.Background(), []byte("bytes"), "a.jpg", "image/jpeg")
	require.Error(t, err)
}
