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
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alehson-uz/alehson/database/models"
	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/monitoring"
	"github.com/alehson-uz/alehson/shared"
	"github.com/alehson-uz/alehson/transformer"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
)

var (
	ErrInvalidRegion      = errors.New("region is not a known region")
	ErrCategoryMismatch   = errors.New("subcategory does not belong to the category")
	ErrDeniedReasonNeeded = errors.New("denied applications need a denied reason")
)

type applicationService struct {
	applicationRepo shared.ApplicationRepository
	imageRepo       shared.ApplicationImageRepository
	subcategoryRepo shared.SubcategoryRepository
	uploader        shared.ImageUploader
	notifier        shared.Notifier
	uploadDir       string
}

func NewApplicationService(
	applicationRepo shared.ApplicationRepository,
	imageRepo shared.ApplicationImageRepository,
	subcategoryRepo shared.SubcategoryRepository,
	uploader shared.ImageUploader,
	notifier shared.Notifier,
	cfg shared.AppConfig,
) *applicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		imageRepo:       imageRepo,
		subcategoryRepo: subcategoryRepo,
		uploader:        uploader,
		notifier:        notifier,
		uploadDir:       cfg.UploadDir,
	}
}

func (s *applicationService) checkPair(categoryID, subcategoryID uuid.UUID) error {
	linked, err := s.subcategoryRepo.IsLinkedToCategory(subcategoryID, categoryID)
	if err != nil {
		return errors.Wrap(err, "could not check category link")
	}
	if !linked {
		return ErrCategoryMismatch
	}
	return nil
}

// storeUpload pushes the file to the image host when it is configured and
// falls back to the local upload directory otherwise. The first return value
// is the public URL, the second the local path. Exactly one of them is set.
func (s *applicationService) storeUpload(ctx context.Context, upload shared.ImageUpload) (string, string, error) {
	if s.uploader != nil && s.uploader.Enabled() {
		url, err := s.uploader.Upload(ctx, upload.Filename, upload.Reader)
		if err != nil {
			monitoring.ImageUploads.WithLabelValues("error").Inc()
			return "", "", err
		}
		monitoring.ImageUploads.WithLabelValues("success").Inc()
		return url, "", nil
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", "", errors.Wrap(err, "could not create upload directory")
	}
	name := uuid.NewString() + "-" + filepath.Base(upload.Filename)
	path := filepath.Join(s.uploadDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", "", errors.Wrap(err, "could not create upload file")
	}
	defer f.Close()
	if _, err := io.Copy(f, upload.Reader); err != nil {
		os.Remove(path)
		return "", "", errors.Wrap(err, "could not write upload file")
	}
	monitoring.ImageUploads.WithLabelValues("local").Inc()
	return "", path, nil
}

func (s *applicationService) Create(ctx context.Context, req dtos.ApplicationCreateRequest, attachments shared.Attachments) (models.Application, error) {
	if !models.ValidRegion(req.Region) {
		return models.Application{}, ErrInvalidRegion
	}

	app := transformer.ApplicationCreateRequestToModel(req)
	if err := s.checkPair(app.CategoryID, app.SubcategoryID); err != nil {
		return models.Application{}, err
	}

	free, err := s.applicationRepo.FirstFreeSlug(slug.Make(app.FullName), uuid.Nil)
	if err != nil {
		return models.Application{}, errors.Wrap(err, "could not determine free slug")
	}
	app.SetSlug(free)

	if attachments.Video != nil {
		url, path, err := s.storeUpload(ctx, *attachments.Video)
		if err != nil {
			return models.Application{}, errors.Wrap(err, "could not store video attachment")
		}
		if url != "" {
			app.VideoURL = &url
		} else {
			app.VideoURL = &path
		}
	}
	if attachments.Document != nil {
		url, path, err := s.storeUpload(ctx, *attachments.Document)
		if err != nil {
			return models.Application{}, errors.Wrap(err, "could not store document attachment")
		}
		if url != "" {
			app.DocumentURL = &url
		} else {
			app.DocumentURL = &path
		}
	}

	if err := s.applicationRepo.Create(nil, &app); err != nil {
		return models.Application{}, errors.Wrap(err, "could not create application")
	}
	monitoring.ApplicationsSubmitted.WithLabelValues(app.Region).Inc()

	// image failures must not take the application down with them
	if _, err := s.AttachImages(ctx, app, attachments.Images); err != nil {
		slog.Warn("could not attach all images to application", "application", app.ID, "err", err)
	}

	created, err := s.applicationRepo.Read(app.ID)
	if err != nil {
		return app, nil //nolint:nilerr // the row exists, preloading it is best effort
	}
	return created, nil
}

func (s *applicationService) Update(ctx context.Context, application *models.Application, req dtos.ApplicationPatchRequest) error {
	if req.Region != nil && !models.ValidRegion(*req.Region) {
		return ErrInvalidRegion
	}

	categoryID := application.CategoryID
	subcategoryID := application.SubcategoryID
	if req.CategoryID != nil {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return errors.Wrap(err, "could not parse category id")
		}
		categoryID = id
	}
	if req.SubcategoryID != nil {
		id, err := uuid.Parse(*req.SubcategoryID)
		if err != nil {
			return errors.Wrap(err, "could not parse subcategory id")
		}
		subcategoryID = id
	}
	if categoryID != application.CategoryID || subcategoryID != application.SubcategoryID {
		if err := s.checkPair(categoryID, subcategoryID); err != nil {
			return err
		}
	}

	previousName := application.FullName
	if !transformer.ApplyApplicationPatchToModel(req, application) {
		return nil
	}

	if application.FullName != previousName {
		free, err := s.applicationRepo.FirstFreeSlug(slug.Make(application.FullName), application.ID)
		if err != nil {
			return errors.Wrap(err, "could not determine free slug")
		}
		application.SetSlug(free)
	}
	return s.applicationRepo.Save(nil, application)
}

func (s *applicationService) SetStatus(application *models.Application, req dtos.ApplicationSetStatusRequest) error {
	status := models.ApplicationStatus(req.Status)
	if !status.Valid() {
		return errors.Errorf("unknown application status %q", req.Status)
	}

	deniedReason := ""
	if status == models.ApplicationStatusDenied {
		if req.DeniedReason == "" {
			return ErrDeniedReasonNeeded
		}
		deniedReason = req.DeniedReason
	}

	if err := s.applicationRepo.UpdateStatus(application.ID, status, deniedReason); err != nil {
		return errors.Wrap(err, "could not update application status")
	}

	application.Status = status
	application.DeniedReason = deniedReason
	monitoring.ApplicationStatusChanges.WithLabelValues(string(status)).Inc()
	return nil
}

func (s *applicationService) AttachImage(ctx context.Context, application models.Application, upload shared.ImageUpload) (models.ApplicationImage, error) {
	url, path, err := s.storeUpload(ctx, upload)
	if err != nil {
		return models.ApplicationImage{}, err
	}

	image := models.ApplicationImage{ApplicationID: application.ID}
	if url != "" {
		image.ImageURL = &url
	} else {
		image.Image = &path
	}

	if err := s.imageRepo.Create(nil, &image); err != nil {
		return models.ApplicationImage{}, errors.Wrap(err, "could not persist application image")
	}
	return image, nil
}

// AttachImageURL records an already hosted image without touching the host.
func (s *applicationService) AttachImageURL(application models.Application, url string) (models.ApplicationImage, error) {
	image := models.ApplicationImage{ApplicationID: application.ID, ImageURL: &url}
	if err := s.imageRepo.Create(nil, &image); err != nil {
		return models.ApplicationImage{}, errors.Wrap(err, "could not persist application image")
	}
	return image, nil
}

// AttachImages stores every upload it can. A failing upload is skipped, the
// successful ones are persisted regardless.
func (s *applicationService) AttachImages(ctx context.Context, application models.Application, uploads []shared.ImageUpload) ([]models.ApplicationImage, error) {
	var images []models.ApplicationImage
	var firstErr error
	for _, upload := range uploads {
		image, err := s.AttachImage(ctx, application, upload)
		if err != nil {
			slog.Warn("could not attach image", "application", application.ID, "filename", upload.Filename, "err", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		images = append(images, image)
	}
	return images, firstErr
}

// NotifyNewApplication tells the staff chat about a fresh intake. Delivery is
// best effort.
func (s *applicationService) NotifyNewApplication(ctx context.Context, app models.Application) {
	if s.notifier == nil {
		return
	}
	text := fmt.Sprintf("New aid application %s from %s (%s)", app.Slug, app.FullName, app.Region)
	if err := s.notifier.Send(ctx, text); err != nil {
		monitoring.TelegramNotificationErrors.Inc()
		slog.Warn("could not push application notification", "err", err)
	}
}
