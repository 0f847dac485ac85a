package telegramint

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alehson-uz/alehson/shared"
	"github.com/stretchr/testify/assert"
)

func newTestClient(baseURL string) *telegramClient {
	client := NewTelegramClient(shared.AppConfig{
		TelegramBotToken: "123:abc",
		TelegramChatID:   "-1001",
		TelegramTimeout:  time.Second,
	})
	client.baseURL = baseURL
	return client
}

func TestSend(t *testing.T) {
	t.Run("should post the message to the bot endpoint", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Write([]byte(`{"ok":true}`)) //nolint:errcheck
		}))
		defer srv.Close()

		err := newTestClient(srv.URL).Send(context.Background(), "new application")
		assert.NoError(t, err)
		assert.Equal(t, "/bot123:abc/sendMessage", gotPath)
		assert.Equal(t, "-1001", gotBody["chat_id"])
		assert.Equal(t, "new application", gotBody["text"])
	})

	t.Run("should surface a non ok status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		err := newTestClient(srv.URL).Send(context.Background(), "new application")
		assert.Error(t, err)
	})

	t.Run("should fail fast when not configured", func(t *testing.T) {
		client := NewTelegramClient(shared.AppConfig{TelegramTimeout: time.Second})
		err := client.Send(context.Background(), "new application")
		assert.Error(t, err)
	})
}
