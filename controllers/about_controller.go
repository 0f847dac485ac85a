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

	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/shared"
	"github.com/alehson-uz/alehson/transformer"
	"github.com/labstack/echo/v4"
)

type AboutController struct {
	aboutRepository shared.AboutRepository
}

func NewAboutController(aboutRepository shared.AboutRepository) *AboutController {
	return &AboutController{aboutRepository: aboutRepository}
}

func (controller *AboutController) Read(ctx shared.Context) error {
	about, err := controller.aboutRepository.First()
	if err != nil {
		return notFoundOr500(err, "about page is not set up yet", "could not read about page")
	}
	return ctx.JSON(200, transformer.AboutToDTO(about))
}

func (controller *AboutController) Update(ctx shared.Context) error {
	about, err := controller.aboutRepository.First()
	if err != nil {
		return notFoundOr500(err, "about page is not set up yet", "could not read about page")
	}

	req := ctx.Request().Body
	defer req.Close()

	var patchRequest dtos.AboutPatchRequest
	if err := json.NewDecoder(req).Decode(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if transformer.ApplyAboutPatchToModel(patchRequest, &about) {
		if err := controller.aboutRepository.Save(nil, &about); err != nil {
			return echo.NewHTTPError(500, "could not update about page").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.AboutToDTO(about))
}
