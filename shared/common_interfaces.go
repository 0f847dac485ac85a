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

package shared

import (
	"context"
	"io"

	"github.com/alehson-uz/alehson/database"
	"github.com/alehson-uz/alehson/database/models"
	"github.com/alehson-uz/alehson/dtos"
	"github.com/google/uuid"
)

type AboutRepository interface {
	First() (models.About, error)
	Save(tx DB, about *models.About) error
}

type BlogRepository interface {
	database.Repository[uuid.UUID, models.Blog, DB]
	ReadBySlug(slug string) (models.Blog, error)
	ListNewestFirst() ([]models.Blog, error)
	IncrementHits(id uuid.UUID) (int, error)
	FirstFreeSlug(base string, excludeID uuid.UUID) (string, error)
}

type BannerRepository interface {
	database.Repository[uuid.UUID, models.Banner, DB]
	ListActive() ([]models.Banner, error)
}

type CategoryRepository interface {
	database.Repository[uuid.UUID, models.Category, DB]
	ReadWithSubcategories(id uuid.UUID) (models.Category, error)
	AllWithSubcategories() ([]models.Category, error)
}

type SubcategoryRepository interface {
	database.Repository[uuid.UUID, models.Subcategory, DB]
	ReadBySlug(slug string) (models.Subcategory, error)
	IsLinkedToCategory(subcategoryID uuid.UUID, categoryID uuid.UUID) (bool, error)
	ReplaceCategories(tx DB, subcategory *models.Subcategory, categoryIDs []uuid.UUID) error
	FirstFreeSlug(base string, excludeID uuid.UUID) (string, error)
}

type ApplicationRepository interface {
	database.Repository[uuid.UUID, models.Application, DB]
	ReadBySlug(slug string) (models.Application, error)
	ListNewestFirst() ([]models.Application, error)
	ListByCategory(categoryID uuid.UUID) ([]models.Application, error)
	ListBySubcategory(subcategoryID uuid.UUID) ([]models.Application, error)
	Filter(filter dtos.ApplicationFilter) ([]models.Application, error)
	UpdateStatus(id uuid.UUID, status models.ApplicationStatus, deniedReason string) error
	FirstFreeSlug(base string, excludeID uuid.UUID) (string, error)
}

type ApplicationImageRepository interface {
	database.Repository[uuid.UUID, models.ApplicationImage, DB]
	ListByApplication(applicationID uuid.UUID) ([]models.ApplicationImage, error)
}

type ContactMessageRepository interface {
	database.Repository[uuid.UUID, models.ContactMessage, DB]
	ListNewestFirst() ([]models.ContactMessage, error)
	MarkRead(id uuid.UUID) error
}

type UserRepository interface {
	database.Repository[uuid.UUID, models.User, DB]
	ReadByEmail(email string) (models.User, error)
	ExistsByEmail(email string) (bool, error)
}

type ProfileRepository interface {
	database.Repository[uuid.UUID, models.Profile, DB]
	ReadByUserID(userID uuid.UUID) (models.Profile, error)
}

type StatisticsRepository interface {
	CountApplications() (int64, error)
	CountApplicationsByStatus(status models.ApplicationStatus) (int64, error)
	CountUsers() (int64, error)
	CountBlogs() (int64, error)
	CountCategories() (int64, error)
	CountSubcategories() (int64, error)
}

type ApplicationService interface {
	Create(ctx context.Context, req dtos.ApplicationCreateRequest, attachments Attachments) (models.Application, error)
	Update(ctx context.Context, application *models.Application, req dtos.ApplicationPatchRequest) error
	SetStatus(application *models.Application, req dtos.ApplicationSetStatusRequest) error
	AttachImage(ctx context.Context, application models.Application, upload ImageUpload) (models.ApplicationImage, error)
	AttachImageURL(application models.Application, url string) (models.ApplicationImage, error)
	AttachImages(ctx context.Context, application models.Application, uploads []ImageUpload) ([]models.ApplicationImage, error)
	NotifyNewApplication(ctx context.Context, application models.Application)
}

type AuthService interface {
	Register(req dtos.RegisterRequest) (dtos.TokenPairResponse, error)
	Login(req dtos.LoginRequest) (dtos.TokenPairResponse, error)
	GoogleSignIn(ctx context.Context, idToken string) (dtos.TokenPairResponse, error)
	Refresh(refreshToken string) (dtos.TokenRefreshResponse, error)
	IssueTokenPair(user models.User) (access string, refresh string, err error)
	VerifyAccessToken(token string) (AuthSession, error)
}

type StatisticsService interface {
	Collect() (dtos.StatisticsDTO, error)
}

// ImageUploader pushes a binary to the external image host and returns the
// public URL. Implementations are synchronous, there is no retry policy.
type ImageUploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
	Enabled() bool
}

// Notifier delivers a human readable message to the staff chat. Failures are
// the caller's problem to swallow.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

type GoogleIdentity struct {
	Email string
	Name  string
}

type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (GoogleIdentity, error)
}

// ImageUpload is a single multipart file attachment, already opened by the
// controller.
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

// Attachments groups the optional files of an intake request.
type Attachments struct {
	Video    *ImageUpload
	Document *ImageUpload
	Images   []ImageUpload
}
