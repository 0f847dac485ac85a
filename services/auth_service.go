// Copyright (C) 2025 Alehson Team
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"context"
	"time"

	"github.com/alehson-uz/alehson/database/models"
	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/shared"
	"github.com/alehson-uz/alehson/transformer"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is deliberately vague. Login never tells a
	// caller whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidToken       = errors.New("token is invalid or expired")
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type authClaims struct {
	TokenType string `json:"token_type"`
	Email     string `json:"email"`
	IsStaff   bool   `json:"is_staff"`
	jwt.RegisteredClaims
}

type authService struct {
	userRepo    shared.UserRepository
	profileRepo shared.ProfileRepository
	verifier    shared.GoogleVerifier

	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

func NewAuthService(userRepo shared.UserRepository, profileRepo shared.ProfileRepository, verifier shared.GoogleVerifier, cfg shared.AppConfig) *authService {
	return &authService{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		verifier:        verifier,
		secret:          cfg.JWTSecret,
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
	}
}

func (a *authService) signToken(user models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := authClaims{
		TokenType: tokenType,
		Email:     user.Email,
		IsStaff:   user.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *authService) IssueTokenPair(user models.User) (string, string, error) {
	access, err := a.signToken(user, tokenTypeAccess, a.accessTokenTTL)
	if err != nil {
		return "", "", errors.Wrap(err, "could not sign access token")
	}
	refresh, err := a.signToken(user, tokenTypeRefresh, a.refreshTokenTTL)
	if err != nil {
		return "", "", errors.Wrap(err, "could not sign refresh token")
	}
	return access, refresh, nil
}

func (a *authService) parseToken(token string, expectedType string) (authClaims, error) {
	var claims authClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return authClaims{}, ErrInvalidToken
	}
	if claims.TokenType != expectedType {
		return authClaims{}, ErrInvalidToken
	}
	return claims, nil
}

func (a *authService) VerifyAccessToken(token string) (shared.AuthSession, error) {
	claims, err := a.parseToken(token, tokenTypeAccess)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return shared.NewSession(userID, claims.Email, claims.IsStaff), nil
}

func (a *authService) tokenPairResponse(user models.User) (dtos.TokenPairResponse, error) {
	access, refresh, err := a.IssueTokenPair(user)
	if err != nil {
		return dtos.TokenPairResponse{}, err
	}
	return dtos.TokenPairResponse{
		Access:  access,
		Refresh: refresh,
		User:    transformer.UserToSummaryDTO(user),
	}, nil
}

func (a *authService) Register(req dtos.RegisterRequest) (dtos.TokenPairResponse, error) {
	taken, err := a.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return dtos.TokenPairResponse{}, errors.Wrap(err, "could not check email")
	}
	if taken {
		return dtos.TokenPairResponse{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dtos.TokenPairResponse{}, errors.Wrap(err, "could not hash password")
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := a.userRepo.Create(nil, &user); err != nil {
		return dtos.TokenPairResponse{}, errors.Wrap(err, "could not create user")
	}

	profile := models.Profile{UserID: user.ID}
	if err := a.profileRepo.Create(nil, &profile); err != nil {
		return dtos.TokenPairResponse{}, errors.Wrap(err, "could not create profile")
	}

	return a.tokenPairResponse(user)
}

func (a *authService) Login(req dtos.LoginRequest) (dtos.TokenPairResponse, error) {
	user, err := a.userRepo.ReadByEmail(req.Email)
	if err != nil {
		return dtos.TokenPairResponse{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return dtos.TokenPairResponse{}, ErrInvalidCredentials
	}
	return a.tokenPairResponse(user)
}

// GoogleSignIn verifies the google id token and signs the account in,
// creating it first if this email has never been seen.
func (a *authService) GoogleSignIn(ctx context.Context, idToken string) (dtos.TokenPairResponse, error) {
	identity, err := a.verifier.Verify(ctx, idToken)
	if err != nil {
		return dtos.TokenPairResponse{}, ErrInvalidToken
	}

	user, err := a.userRepo.ReadByEmail(identity.Email)
	if err != nil {
		user = models.User{
			Email: identity.Email,
			Name:  identity.Name,
		}
		if err := a.userRepo.Create(nil, &user); err != nil {
			return dtos.TokenPairResponse{}, errors.Wrap(err, "could not create user")
		}
		profile := models.Profile{UserID: user.ID}
		if err := a.profileRepo.Create(nil, &profile); err != nil {
			return dtos.TokenPairResponse{}, errors.Wrap(err, "could not create profile")
		}
	}

	return a.tokenPairResponse(user)
}

// Refresh exchanges a valid refresh token for a fresh access token. The
// refresh token itself is echoed back unchanged, it stays valid until it
// expires. The user row is read again so staff changes take effect on the
// next refresh.
func (a *authService) Refresh(refreshToken string) (dtos.TokenRefreshResponse, error) {
	claims, err := a.parseToken(refreshToken, tokenTypeRefresh)
	if err != nil {
		return dtos.TokenRefreshResponse{}, err
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return dtos.TokenRefreshResponse{}, ErrInvalidToken
	}

	user, err := a.userRepo.Read(userID)
	if err != nil {
		return dtos.TokenRefreshResponse{}, ErrInvalidToken
	}

	access, err := a.signToken(user, tokenTypeAccess, a.accessTokenTTL)
	if err != nil {
		return dtos.TokenRefreshResponse{}, errors.Wrap(err, "could not sign access token")
	}
	return dtos.TokenRefreshResponse{Access: access, Refresh: refreshToken}, nil
}
