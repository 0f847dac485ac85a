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
	"github.com/alehson-uz/alehson/shared"
	"github.com/alehson-uz/alehson/transformer"
	"github.com/alehson-uz/alehson/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ApplicationImageController struct {
	imageRepository shared.ApplicationImageRepository
}

func NewApplicationImageController(imageRepository shared.ApplicationImageRepository) *ApplicationImageController {
	return &ApplicationImageController{
		imageRepository: imageRepository,
	}
}

// List returns every image, or the images of one application when the
// `application` query parameter is set.
func (controller *ApplicationImageController) List(ctx shared.Context) error {
	if raw := ctx.QueryParam("application"); raw != "" {
		applicationID, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(400, "could not parse application").WithInternal(err)
		}
		images, err := controller.imageRepository.ListByApplication(applicationID)
		if err != nil {
			return echo.NewHTTPError(500, "could not list application images").WithInternal(err)
		}
		return ctx.JSON(200, utils.Map(images, transformer.ApplicationImageToDTO))
	}

	images, err := controller.imageRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list application images").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(images, transformer.ApplicationImageToDTO))
}

func (controller *ApplicationImageController) Read(ctx shared.Context) error {
	id, err := shared.GetIDParam(ctx, "id")
	if err != nil {
		return echo.NewHTTPError(400, "could not parse id").WithInternal(err)
	}

	image, err := controller.imageRepository.Read(id)
	if err != nil {
		return notFoundOr500(err, "application image not found", "could not read application image")
	}
	return ctx.JSON(200, transformer.ApplicationImageToDTO(image))
}

func (controller *ApplicationImageController) Delete(ctx shared.Context) error {
	id, err := shared.GetIDParam(ctx, "id")
	if err != nil {
		return echo.NewHTTPError(400, "could not parse id").WithInternal(err)
	}

	if _, err := controller.imageRepository.Read(id); err != nil {
		return notFoundOr500(err, "application image not found", "could not read application image")
	}

	if err := controller.imageRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(500, "could not delete application image").WithInternal(err)
	}
	return ctx.NoContent(204)
}
