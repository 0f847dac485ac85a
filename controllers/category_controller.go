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

	"github.com/alehson-uz/alehson/database"
	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/shared"
	"github.com/alehson-uz/alehson/transformer"
	"github.com/labstack/echo/v4"
)

type CategoryController struct {
	categoryRepository shared.CategoryRepository
}

func NewCategoryController(categoryRepository shared.CategoryRepository) *CategoryController {
	return &CategoryController{categoryRepository: categoryRepository}
}

func (controller *CategoryController) List(ctx shared.Context) error {
	categories, err := controller.categoryRepository.AllWithSubcategories()
	if err != nil {
		return echo.NewHTTPError(500, "could not list categories").WithInternal(err)
	}
	return ctx.JSON(200, transformer.CategoriesToDTOs(categories))
}

func (controller *CategoryController) Read(ctx shared.Context) error {
	id, err := shared.GetIDParam(ctx, "id")
	if err != nil {
		return echo.NewHTTPError(400, "could not parse id").WithInternal(err)
	}

	category, err := controller.categoryRepository.ReadWithSubcategories(id)
	if err != nil {
		return notFoundOr500(err, "category not found", "could not read category")
	}
	return ctx.JSON(200, transformer.CategoryToDTO(category))
}

func (controller *CategoryController) Create(ctx shared.Context) error {
	var req dtos.CategoryCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	category := transformer.CategoryCreateRequestToModel(req)
	if err := controller.categoryRepository.Create(nil, &category); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "a category with this title already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create category").WithInternal(err)
	}

	return ctx.JSON(201, transformer.CategoryToDTO(category))
}

func (controller *CategoryController) Update(ctx shared.Context) error {
	id, err := shared.GetIDParam(ctx, "id")
	if err != nil {
		return echo.NewHTTPError(400, "could not parse id").WithInternal(err)
	}

	category, err := controller.categoryRepository.ReadWithSubcategories(id)
	if err != nil {
		return notFoundOr500(err, "category not found", "could not read category")
	}

	req := ctx.Request().Body
	defer req.Close()

	var patchRequest dtos.CategoryPatchRequest
	if err := json.NewDecoder(req).Decode(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if transformer.ApplyCategoryPatchToModel(patchRequest, &category) {
		if err := controller.categoryRepository.Save(nil, &category); err != nil {
			if database.IsDuplicateKeyError(err) {
				return echo.NewHTTPError(409, "a category with this title already exists").WithInternal(err)
			}
			return echo.NewHTTPError(500, "could not update category").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.CategoryToDTO(category))
}

func (controller *CategoryController) Delete(ctx shared.Context) error {
	id, err := shared.GetIDParam(ctx, "id")
	if err != nil {
		return echo.NewHTTPError(400, "could not parse id").WithInternal(err)
	}

	if _, err := controller.categoryRepository.Read(id); err != nil {
		return notFoundOr500(err, "category not found", "could not read category")
	}

	if err := controller.categoryRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(500, "could not delete category").WithInternal(err)
	}

	return ctx.NoContent(204)
}
