package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alehson-uz/alehson/database/models"
	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type authServiceStub struct {
	session shared.AuthSession
	err     error
}

func (s *authServiceStub) VerifyAccessToken(token string) (shared.AuthSession, error) {
	return s.session, s.err
}

func (s *authServiceStub) Register(req dtos.RegisterRequest) (dtos.TokenPairResponse, error) {
	panic("not implemented")
}

func (s *authServiceStub) Login(req dtos.LoginRequest) (dtos.TokenPairResponse, error) {
	panic("not implemented")
}

func (s *authServiceStub) GoogleSignIn(ctx context.Context, idToken string) (dtos.TokenPairResponse, error) {
	panic("not implemented")
}

func (s *authServiceStub) Refresh(refreshToken string) (dtos.TokenRefreshResponse, error) {
	panic("not implemented")
}

func (s *authServiceStub) IssueTokenPair(user models.User) (string, string, error) {
	panic("not implemented")
}

func newContext(authorization string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func okHandler(ctx echo.Context) error {
	return ctx.NoContent(http.StatusOK)
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("should reject a request without an authorization header", func(t *testing.T) {
		handler := SessionMiddleware(&authServiceStub{})(okHandler)

		err := handler(newContext(""))
		httpErr := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("should reject a non bearer authorization header", func(t *testing.T) {
		handler := SessionMiddleware(&authServiceStub{})(okHandler)

		err := handler(newContext("Basic dXNlcjpwYXNz"))
		httpErr := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("should reject an invalid token", func(t *testing.T) {
		handler := SessionMiddleware(&authServiceStub{err: errors.New("expired")})(okHandler)

		err := handler(newContext("Bearer some-token"))
		httpErr := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("should store the session and call the handler", func(t *testing.T) {
		session := shared.NewSession(uuid.New(), "a@b.uz", false)
		ctx := newContext("Bearer some-token")

		handler := SessionMiddleware(&authServiceStub{session: session})(func(ctx echo.Context) error {
			assert.True(t, shared.HasSession(ctx))
			assert.Equal(t, session.GetUserID(), shared.GetSession(ctx).GetUserID())
			return ctx.NoContent(http.StatusOK)
		})

		assert.NoError(t, handler(ctx))
	})

	t.Run("should accept a lowercase bearer prefix", func(t *testing.T) {
		session := shared.NewSession(uuid.New(), "a@b.uz", false)
		handler := SessionMiddleware(&authServiceStub{session: session})(okHandler)

		assert.NoError(t, handler(newContext("bearer some-token")))
	})
}

func TestStaffMiddleware(t *testing.T) {
	t.Run("should reject without a session", func(t *testing.T) {
		handler := StaffMiddleware()(okHandler)

		err := handler(newContext(""))
		httpErr := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("should reject a non staff session", func(t *testing.T) {
		ctx := newContext("")
		shared.SetSession(ctx, shared.NewSession(uuid.New(), "a@b.uz", false))

		handler := StaffMiddleware()(okHandler)
		err := handler(ctx)
		httpErr := &echo.HTTPError{}
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("should let staff through", func(t *testing.T) {
		ctx := newContext("")
		shared.SetSession(ctx, shared.NewSession(uuid.New(), "staff@alehson.uz", true))

		assert.NoError(t, StaffMiddleware()(okHandler)(ctx))
	})
}
