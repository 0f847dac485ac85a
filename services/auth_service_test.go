package services

import (
	"context"
	"testing"
	"time"

	"github.com/alehson-uz/alehson/database/models"
	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/shared"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type userRepositoryStub struct {
	shared.UserRepository

	users map[string]models.User
}

func newUserRepositoryStub(users ...models.User) *userRepositoryStub {
	stub := &userRepositoryStub{users: map[string]models.User{}}
	for _, user := range users {
		stub.users[user.Email] = user
	}
	return stub
}

func (s *userRepositoryStub) ExistsByEmail(email string) (bool, error) {
	_, ok := s.users[email]
	return ok, nil
}

func (s *userRepositoryStub) ReadByEmail(email string) (models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return models.User{}, errors.New("not found")
	}
	return user, nil
}

func (s *userRepositoryStub) Read(id uuid.UUID) (models.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, errors.New("not found")
}

func (s *userRepositoryStub) Create(tx shared.DB, user *models.User) error {
	user.ID = uuid.New()
	s.users[user.Email] = *user
	return nil
}

type profileRepositoryStub struct {
	shared.ProfileRepository

	created []*models.Profile
}

func (s *profileRepositoryStub) Create(tx shared.DB, profile *models.Profile) error {
	profile.ID = uuid.New()
	s.created = append(s.created, profile)
	return nil
}

type googleVerifierStub struct {
	identity shared.GoogleIdentity
	err      error
}

func (s *googleVerifierStub) Verify(ctx context.Context, idToken string) (shared.GoogleIdentity, error) {
	return s.identity, s.err
}

func testAuthConfig() shared.AppConfig {
	return shared.AppConfig{
		JWTSecret:       []byte("test-secret"),
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestRegister(t *testing.T) {
	t.Run("should reject an already registered email", func(t *testing.T) {
		users := newUserRepositoryStub(models.User{Email: "a@b.uz"})
		svc := NewAuthService(users, &profileRepositoryStub{}, nil, testAuthConfig())

		_, err := svc.Register(dtos.RegisterRequest{Email: "a@b.uz", Password: "secret1"})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("should create the user with a profile and hand out a token pair", func(t *testing.T) {
		users := newUserRepositoryStub()
		profiles := &profileRepositoryStub{}
		svc := NewAuthService(users, profiles, nil, testAuthConfig())

		pair, err := svc.Register(dtos.RegisterRequest{Email: "a@b.uz", Password: "secret1"})
		assert.NoError(t, err)
		assert.NotEmpty(t, pair.Access)
		assert.NotEmpty(t, pair.Refresh)
		assert.Len(t, profiles.created, 1)

		// never hand the hash back
		stored := users.users["a@b.uz"]
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
	})
}

func TestLogin(t *testing.T) {
	t.Run("should return the same generic error for unknown email and wrong password", func(t *testing.T) {
		users := newUserRepositoryStub(models.User{
			Email:        "a@b.uz",
			PasswordHash: mustHash(t, "secret1"),
		})
		svc := NewAuthService(users, &profileRepositoryStub{}, nil, testAuthConfig())

		_, unknownEmailErr := svc.Login(dtos.LoginRequest{Email: "nobody@b.uz", Password: "secret1"})
		_, wrongPasswordErr := svc.Login(dtos.LoginRequest{Email: "a@b.uz", Password: "nope"})

		assert.ErrorIs(t, unknownEmailErr, ErrInvalidCredentials)
		assert.ErrorIs(t, wrongPasswordErr, ErrInvalidCredentials)
		assert.Equal(t, unknownEmailErr, wrongPasswordErr)
	})

	t.Run("should sign in with the right password", func(t *testing.T) {
		users := newUserRepositoryStub(models.User{
			Model:        models.Model{ID: uuid.New()},
			Email:        "a@b.uz",
			PasswordHash: mustHash(t, "secret1"),
		})
		svc := NewAuthService(users, &profileRepositoryStub{}, nil, testAuthConfig())

		pair, err := svc.Login(dtos.LoginRequest{Email: "a@b.uz", Password: "secret1"})
		assert.NoError(t, err)
		assert.NotEmpty(t, pair.Access)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	user := models.User{
		Model:   models.Model{ID: uuid.New()},
		Email:   "staff@alehson.uz",
		IsStaff: true,
	}
	svc := NewAuthService(newUserRepositoryStub(user), &profileRepositoryStub{}, nil, testAuthConfig())

	access, refresh, err := svc.IssueTokenPair(user)
	assert.NoError(t, err)

	t.Run("should verify its own access token", func(t *testing.T) {
		session, err := svc.VerifyAccessToken(access)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, session.GetUserID())
		assert.Equal(t, user.Email, session.GetEmail())
		assert.True(t, session.IsStaff())
	})

	t.Run("should not accept a refresh token as access token", func(t *testing.T) {
		_, err := svc.VerifyAccessToken(refresh)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should not accept a token signed with a different secret", func(t *testing.T) {
		otherCfg := testAuthConfig()
		otherCfg.JWTSecret = []byte("other-secret")
		other := NewAuthService(newUserRepositoryStub(user), &profileRepositoryStub{}, nil, otherCfg)

		foreignAccess, _, err := other.IssueTokenPair(user)
		assert.NoError(t, err)

		_, err = svc.VerifyAccessToken(foreignAccess)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should exchange a refresh token for a fresh access token", func(t *testing.T) {
		refreshed, err := svc.Refresh(refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, refreshed.Access)
		// the refresh token is echoed back, not rotated
		assert.Equal(t, refresh, refreshed.Refresh)

		session, err := svc.VerifyAccessToken(refreshed.Access)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, session.GetUserID())
	})

	t.Run("should not refresh with an access token", func(t *testing.T) {
		_, err := svc.Refresh(access)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestGoogleSignIn(t *testing.T) {
	t.Run("should reject an invalid id token", func(t *testing.T) {
		verifier := &googleVerifierStub{err: errors.New("aud mismatch")}
		svc := NewAuthService(newUserRepositoryStub(), &profileRepositoryStub{}, verifier, testAuthConfig())

		_, err := svc.GoogleSignIn(context.Background(), "bogus")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should create an account for a first time google user", func(t *testing.T) {
		verifier := &googleVerifierStub{identity: shared.GoogleIdentity{Email: "new@gmail.com", Name: "New User"}}
		users := newUserRepositoryStub()
		profiles := &profileRepositoryStub{}
		svc := NewAuthService(users, profiles, verifier, testAuthConfig())

		pair, err := svc.GoogleSignIn(context.Background(), "valid")
		assert.NoError(t, err)
		assert.NotEmpty(t, pair.Access)
		assert.Len(t, profiles.created, 1)
		assert.Equal(t, "New User", users.users["new@gmail.com"].Name)
	})

	t.Run("should sign an existing google user in without creating anything", func(t *testing.T) {
		existing := models.User{Model: models.Model{ID: uuid.New()}, Email: "old@gmail.com"}
		verifier := &googleVerifierStub{identity: shared.GoogleIdentity{Email: "old@gmail.com"}}
		profiles := &profileRepositoryStub{}
		svc := NewAuthService(newUserRepositoryStub(existing), profiles, verifier, testAuthConfig())

		_, err := svc.GoogleSignIn(context.Background(), "valid")
		assert.NoError(t, err)
		assert.Empty(t, profiles.created)
	})
}
