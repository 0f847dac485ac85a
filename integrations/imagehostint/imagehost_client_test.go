package imagehostint

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alehson-uz/alehson/shared"
	"github.com/stretchr/testify/assert"
)

func newTestClient(apiURL string) *imageHostClient {
	return NewImageHostClient(shared.AppConfig{
		ImageHostAPIKey: "test-key",
		ImageHostURL:    apiURL,
	})
}

func TestUpload(t *testing.T) {
	t.Run("should send the key and the file as multipart form", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "test-key", r.FormValue("key"))

			file, header, err := r.FormFile("image")
			assert.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "a.jpg", header.Filename)
			content, err := io.ReadAll(file)
			assert.NoError(t, err)
			assert.Equal(t, "binary", string(content))

			w.Write([]byte(`{"success":true,"status":200,"data":{"url":"https://img.example/a.jpg"}}`)) //nolint:errcheck
		}))
		defer srv.Close()

		url, err := newTestClient(srv.URL).Upload(context.Background(), "a.jpg", strings.NewReader("binary"))
		assert.NoError(t, err)
		assert.Equal(t, "https://img.example/a.jpg", url)
	})

	t.Run("should treat a rejected upload as an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false,"status":400}`)) //nolint:errcheck
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).Upload(context.Background(), "a.jpg", strings.NewReader("binary"))
		assert.Error(t, err)
	})

	t.Run("should surface a non ok status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).Upload(context.Background(), "a.jpg", strings.NewReader("binary"))
		assert.Error(t, err)
	})

	t.Run("should not be enabled without an api key", func(t *testing.T) {
		client := NewImageHostClient(shared.AppConfig{ImageHostURL: "https://api.imgbb.com/1/upload"})
		assert.False(t, client.Enabled())

		_, err := client.Upload(context.Background(), "a.jpg", strings.NewReader("binary"))
		assert.Error(t, err)
	})
}
