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

package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/services"
	"github.com/alehson-uz/alehson/shared"
	"github.com/alehson-uz/alehson/transformer"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type ApplicationController struct {
	applicationRepository shared.ApplicationRepository
	applicationService    shared.ApplicationService
}

func NewApplicationController(applicationRepository shared.ApplicationRepository, applicationService shared.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationRepository: applicationRepository,
		applicationService:    applicationService,
	}
}

func openUpload(header *multipart.FileHeader) (shared.ImageUpload, func(), error) {
	f, err := header.Open()
	if err != nil {
		return shared.ImageUpload{}, nil, err
	}
	return shared.ImageUpload{Filename: header.Filename, Reader: f}, func() { f.Close() }, nil
}

// collectAttachments opens the optional files of a multipart intake request.
// The returned cleanup closes everything that was opened.
func collectAttachments(ctx shared.Context) (shared.Attachments, func(), error) {
	var attachments shared.Attachments
	var closers []func()
	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		// a plain json request has no files at all
		return attachments, cleanup, nil
	}

	single := func(field string) (*shared.ImageUpload, error) {
		headers := form.File[field]
		if len(headers) == 0 {
			return nil, nil
		}
		upload, closer, err := openUpload(headers[0])
		if err != nil {
			return nil, err
		}
		closers = append(closers, closer)
		return &upload, nil
	}

	if attachments.Video, err = single("video"); err != nil {
		return attachments, cleanup, err
	}
	if attachments.Document, err = single("document"); err != nil {
		return attachments, cleanup, err
	}

	for _, header := range form.File["images"] {
		upload, closer, err := openUpload(header)
		if err != nil {
			return attachments, cleanup, err
		}
		closers = append(closers, closer)
		attachments.Images = append(attachments.Images, upload)
	}

	return attachments, cleanup, nil
}

func mapIntakeError(err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidRegion):
		return echo.NewHTTPError(400, "region is not a known region").WithInternal(err)
	case errors.Is(err, services.ErrCategoryMismatch):
		return echo.NewHTTPError(400, "subcategory does not belong to the category").WithInternal(err)
	case errors.Is(err, services.ErrDeniedReasonNeeded):
		return echo.NewHTTPError(400, "denied applications need a denied reason").WithInternal(err)
	}
	return nil
}

func (controller *ApplicationController) Create(ctx shared.Context) error {
	var req dtos.ApplicationCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	attachments, cleanup, err := collectAttachments(ctx)
	defer cleanup()
	if err != nil {
		return echo.NewHTTPError(400, "could not read attached files").WithInternal(err)
	}

	app, err := controller.applicationService.Create(ctx.Request().Context(), req, attachments)
	if err != nil {
		if httpErr := mapIntakeError(err); httpErr != nil {
			return httpErr
		}
		return echo.NewHTTPError(500, "could not create application").WithInternal(err)
	}

	controller.applicationService.NotifyNewApplication(ctx.Request().Context(), app)

	return ctx.JSON(201, transformer.ApplicationToDTO(app))
}

func (controller *ApplicationController) List(ctx shared.Context) error {
	var filter dtos.ApplicationFilter
	filter.Status = shared.SanitizeParam(ctx.QueryParam("status"))
	filter.Region = shared.SanitizeParam(ctx.QueryParam("region"))
	if raw := ctx.QueryParam("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(400, "could not parse category").WithInternal(err)
		}
		filter.CategoryID = &id
	}
	if raw := ctx.QueryParam("subcategory"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(400, "could not parse subcategory").WithInternal(err)
		}
		filter.SubcategoryID = &id
	}

	apps, err := controller.applicationRepository.Filter(filter)
	if err != nil {
		return echo.NewHTTPError(500, "could not list applications").WithInternal(err)
	}
	return ctx.JSON(200, transformer.ApplicationsToDTOs(apps))
}

func (controller *ApplicationController) ListByCategory(ctx shared.Context) error {
	id, err := shared.GetIDParam(ctx, "categoryID")
	if err != nil {
		return echo.NewHTTPError(400, "could not parse categoryID").WithInternal(err)
	}

	apps, err := controller.applicationRepository.ListByCategory(id)
	if err != nil {
		return echo.NewHTTPError(500, "could not list applications").WithInternal(err)
	}
	return ctx.JSON(200, transformer.ApplicationsToDTOs(apps))
}

func (controller *ApplicationController) ListBySubcategory(ctx shared.Context) error {
	id, err := shared.GetIDParam(ctx, "subcategoryID")
	if err != nil {
		return echo.NewHTTPError(400, "could not parse subcategoryID").WithInternal(err)
	}

	apps, err := controller.applicationRepository.ListBySubcategory(id)
	if err != nil {
		return echo.NewHTTPError(500, "could not list applications").WithInternal(err)
	}
	return ctx.JSON(200, transformer.ApplicationsToDTOs(apps))
}

func (controller *ApplicationController) Read(ctx shared.Context) error {
	slugParam, err := shared.GetSlugParam(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "slug is required").WithInternal(err)
	}

	app, err := controller.applicationRepository.ReadBySlug(slugParam)
	if err != nil {
		return notFoundOr500(err, "application not found", "could not read application")
	}
	return ctx.JSON(200, transformer.ApplicationToDTO(app))
}

func (controller *ApplicationController) Update(ctx shared.Context) error {
	slugParam, err := shared.GetSlugParam(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "slug is required").WithInternal(err)
	}

	app, err := controller.applicationRepository.ReadBySlug(slugParam)
	if err != nil {
		return notFoundOr500(err, "application not found", "could not read application")
	}

	var patchRequest dtos.ApplicationPatchRequest
	if err := ctx.Bind(&patchRequest); err != nil {
		return err
	}
	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if err := controller.applicationService.Update(ctx.Request().Context(), &app, patchRequest); err != nil {
		if httpErr := mapIntakeError(err); httpErr != nil {
			return httpErr
		}
		return echo.NewHTTPError(500, "could not update application").WithInternal(err)
	}

	updated, err := controller.applicationRepository.Read(app.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not read application").WithInternal(err)
	}
	return ctx.JSON(200, transformer.ApplicationToDTO(updated))
}

func (controller *ApplicationController) Delete(ctx shared.Context) error {
	slugParam, err := shared.GetSlugParam(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "slug is required").WithInternal(err)
	}

	app, err := controller.applicationRepository.ReadBySlug(slugParam)
	if err != nil {
		return notFoundOr500(err, "application not found", "could not read application")
	}

	if err := controller.applicationRepository.Delete(nil, app.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete application").WithInternal(err)
	}

	return ctx.NoContent(204)
}

func (controller *ApplicationController) SetStatus(ctx shared.Context) error {
	slugParam, err := shared.GetSlugParam(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "slug is required").WithInternal(err)
	}

	app, err := controller.applicationRepository.ReadBySlug(slugParam)
	if err != nil {
		return notFoundOr500(err, "application not found", "could not read application")
	}

	var req dtos.ApplicationSetStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if err := controller.applicationService.SetStatus(&app, req); err != nil {
		if httpErr := mapIntakeError(err); httpErr != nil {
			return httpErr
		}
		return echo.NewHTTPError(500, "could not update application status").WithInternal(err)
	}

	return ctx.JSON(200, dtos.ApplicationSetStatusResponse{
		Detail:       "application status updated",
		Status:       string(app.Status),
		DeniedReason: app.DeniedReason,
	})
}

func (controller *ApplicationController) AddImage(ctx shared.Context) error {
	return controller.addImages(ctx, true)
}

func (controller *ApplicationController) AddImages(ctx shared.Context) error {
	return controller.addImages(ctx, false)
}

func (controller *ApplicationController) addImages(ctx shared.Context, single bool) error {
	slugParam, err := shared.GetSlugParam(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "slug is required").WithInternal(err)
	}

	app, err := controller.applicationRepository.ReadBySlug(slugParam)
	if err != nil {
		return notFoundOr500(err, "application not found", "could not read application")
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(400, "request must be multipart").WithInternal(err)
	}

	headers := form.File["images"]
	if len(headers) == 0 {
		if header := form.File["image"]; len(header) > 0 {
			headers = header
		}
	}
	urls := form.Value["imageUrls"]
	if len(urls) == 0 {
		urls = form.Value["imageUrl"]
	}
	if len(headers) == 0 && len(urls) == 0 {
		return echo.NewHTTPError(400, "at least one image file or image url is required")
	}
	if single && len(headers) > 0 {
		headers = headers[:1]
		urls = nil
	} else if single {
		urls = urls[:1]
	}

	var uploads []shared.ImageUpload
	var closers []func()
	defer func() {
		for _, c := range closers {
			c()
		}
	}()
	for _, header := range headers {
		upload, closer, err := openUpload(header)
		if err != nil {
			return echo.NewHTTPError(400, "could not read attached files").WithInternal(err)
		}
		closers = append(closers, closer)
		uploads = append(uploads, upload)
	}

	images, err := controller.applicationService.AttachImages(ctx.Request().Context(), app, uploads)
	for _, url := range urls {
		image, urlErr := controller.applicationService.AttachImageURL(app, url)
		if urlErr != nil {
			return echo.NewHTTPError(500, "could not persist application image").WithInternal(urlErr)
		}
		images = append(images, image)
	}
	if len(images) == 0 && err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "could not store any image").WithInternal(err)
	}

	dtosOut := make([]dtos.ApplicationImageDTO, 0, len(images))
	for _, image := range images {
		dtosOut = append(dtosOut, transformer.ApplicationImageToDTO(image))
	}
	if single {
		return ctx.JSON(201, dtosOut[0])
	}
	return ctx.JSON(201, dtosOut)
}
