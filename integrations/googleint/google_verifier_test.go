package googleint

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alehson-uz/alehson/shared"
	"github.com/stretchr/testify/assert"
)

func newTestVerifier(t *testing.T, clientID string, handler http.HandlerFunc) *googleVerifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	verifier := NewGoogleVerifier(shared.AppConfig{GoogleClientID: clientID})
	verifier.baseURL = srv.URL
	return verifier
}

func TestVerify(t *testing.T) {
	t.Run("should accept a token for our client id", func(t *testing.T) {
		verifier := newTestVerifier(t, "our-client", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "some-token", r.URL.Query().Get("id_token"))
			w.Write([]byte(`{"aud":"our-client","email":"a@gmail.com","email_verified":"true","name":"A"}`)) //nolint:errcheck
		})

		identity, err := verifier.Verify(context.Background(), "some-token")
		assert.NoError(t, err)
		assert.Equal(t, shared.GoogleIdentity{Email: "a@gmail.com", Name: "A"}, identity)
	})

	t.Run("should reject a token issued for a different client", func(t *testing.T) {
		verifier := newTestVerifier(t, "our-client", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"aud":"someone-else","email":"a@gmail.com","email_verified":"true"}`)) //nolint:errcheck
		})

		_, err := verifier.Verify(context.Background(), "some-token")
		assert.Error(t, err)
	})

	t.Run("should reject an unverified email", func(t *testing.T) {
		verifier := newTestVerifier(t, "our-client", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"aud":"our-client","email":"a@gmail.com","email_verified":"false"}`)) //nolint:errcheck
		})

		_, err := verifier.Verify(context.Background(), "some-token")
		assert.Error(t, err)
	})

	t.Run("should reject when google rejects", func(t *testing.T) {
		verifier := newTestVerifier(t, "our-client", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})

		_, err := verifier.Verify(context.Background(), "expired")
		assert.Error(t, err)
	})
}
