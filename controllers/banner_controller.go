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
	"encoding/json"
	"fmt"

	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/shared"
	"github.com/alehson-uz/alehson/transformer"
	"github.com/labstack/echo/v4"
)

type BannerController struct {
	bannerRepository shared.BannerRepository
}

func NewBannerController(bannerRepository shared.BannerRepository) *BannerController {
	return &BannerController{bannerRepository: bannerRepository}
}

// List returns the active banners only. The full set including disabled
// banners stays behind the staff endpoints.
func (controller *BannerController) List(ctx shared.Context) error {
	banners, err := controller.bannerRepository.ListActive()
	if err != nil {
		return echo.NewHTTPError(500, "could not list banners").WithInternal(err)
	}
	return ctx.JSON(200, banners)
}

func (controller *BannerController) ListAll(ctx shared.Context) error {
	banners, err := controller.bannerRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list banners").WithInternal(err)
	}
	return ctx.JSON(200, banners)
}

func (controller *BannerController) Create(ctx shared.Context) error {
	var req dtos.BannerCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	banner := transformer.BannerCreateRequestToModel(req)
	if err := controller.bannerRepository.Create(nil, &banner); err != nil {
		return echo.NewHTTPError(500, "could not create banner").WithInternal(err)
	}

	return ctx.JSON(201, banner)
}

func (controller *BannerController) Update(ctx shared.Context) error {
	id, err := shared.GetIDParam(ctx, "id")
	if err != nil {
		return echo.NewHTTPError(400, "could not parse id").WithInternal(err)
	}

	banner, err := controller.bannerRepository.Read(id)
	if err != nil {
		return notFoundOr500(err, "banner not found", "could not read banner")
	}

	req := ctx.Request().Body
	defer req.Close()

	var patchRequest dtos.BannerPatchRequest
	if err := json.NewDecoder(req).Decode(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if transformer.ApplyBannerPatchToModel(patchRequest, &banner) {
		if err := controller.bannerRepository.Save(nil, &banner); err != nil {
			return echo.NewHTTPError(500, "could not update banner").WithInternal(err)
		}
	}

	return ctx.JSON(200, banner)
}

func (controller *BannerController) Delete(ctx shared.Context) error {
	id, err := shared.GetIDParam(ctx, "id")
	if err != nil {
		return echo.NewHTTPError(400, "could not parse id").WithInternal(err)
	}

	if _, err := controller.bannerRepository.Read(id); err != nil {
		return notFoundOr500(err, "banner not found", "could not read banner")
	}

	if err := controller.bannerRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(500, "could not delete banner").WithInternal(err)
	}

	return ctx.NoContent(204)
}
