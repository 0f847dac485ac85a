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
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"
)

type SubcategoryController struct {
	subcategoryRepository shared.SubcategoryRepository
	categoryRepository    shared.CategoryRepository
}

func NewSubcategoryController(subcategoryRepository shared.SubcategoryRepository, categoryRepository shared.CategoryRepository) *SubcategoryController {
	return &SubcategoryController{
		subcategoryRepository: subcategoryRepository,
		categoryRepository:    categoryRepository,
	}
}

func parseCategoryIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("could not parse category id %q: %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (controller *SubcategoryController) checkCategoriesExist(ids []uuid.UUID) error {
	categories, err := controller.categoryRepository.List(ids)
	if err != nil {
		return echo.NewHTTPError(500, "could not read categories").WithInternal(err)
	}
	if len(categories) != len(ids) {
		return echo.NewHTTPError(400, "at least one category does not exist")
	}
	return nil
}

func (controller *SubcategoryController) List(ctx shared.Context) error {
	subcategories, err := controller.subcategoryRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list subcategories").WithInternal(err)
	}
	return ctx.JSON(200, transformer.SubcategoriesToDTOs(subcategories))
}

func (controller *SubcategoryController) Read(ctx shared.Context) error {
	slugParam, err := shared.GetSlugParam(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "slug is required").WithInternal(err)
	}

	subcategory, err := controller.subcategoryRepository.ReadBySlug(slugParam)
	if err != nil {
		return notFoundOr500(err, "subcategory not found", "could not read subcategory")
	}
	return ctx.JSON(200, transformer.SubcategoryToDTO(subcategory))
}

func (controller *SubcategoryController) Create(ctx shared.Context) error {
	var req dtos.SubcategoryCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	categoryIDs, err := parseCategoryIDs(req.CategoryIDs)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}
	if len(categoryIDs) > 0 {
		if err := controller.checkCategoriesExist(categoryIDs); err != nil {
			return err
		}
	}

	subcategory := transformer.SubcategoryCreateRequestToModel(req)

	free, err := controller.subcategoryRepository.FirstFreeSlug(slug.Make(subcategory.Title), uuid.Nil)
	if err != nil {
		return echo.NewHTTPError(500, "could not determine free slug").WithInternal(err)
	}
	subcategory.SetSlug(free)

	if err := controller.subcategoryRepository.Create(nil, &subcategory); err != nil {
		return echo.NewHTTPError(500, "could not create subcategory").WithInternal(err)
	}
	if len(categoryIDs) > 0 {
		if err := controller.subcategoryRepository.ReplaceCategories(nil, &subcategory, categoryIDs); err != nil {
			return echo.NewHTTPError(500, "could not link subcategory to categories").WithInternal(err)
		}
	}

	return ctx.JSON(201, transformer.SubcategoryToDTO(subcategory))
}

func (controller *SubcategoryController) Update(ctx shared.Context) error {
	slugParam, err := shared.GetSlugParam(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "slug is required").WithInternal(err)
	}

	subcategory, err := controller.subcategoryRepository.ReadBySlug(slugParam)
	if err != nil {
		return notFoundOr500(err, "subcategory not found", "could not read subcategory")
	}

	req := ctx.Request().Body
	defer req.Close()

	var patchRequest dtos.SubcategoryPatchRequest
	if err := json.NewDecoder(req).Decode(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	updated := false
	if patchRequest.Title != nil && *patchRequest.Title != subcategory.Title {
		subcategory.Title = *patchRequest.Title
		free, err := controller.subcategoryRepository.FirstFreeSlug(slug.Make(subcategory.Title), subcategory.ID)
		if err != nil {
			return echo.NewHTTPError(500, "could not determine free slug").WithInternal(err)
		}
		subcategory.SetSlug(free)
		updated = true
	}

	if updated {
		if err := controller.subcategoryRepository.Save(nil, &subcategory); err != nil {
			return echo.NewHTTPError(500, "could not update subcategory").WithInternal(err)
		}
	}

	if patchRequest.CategoryIDs != nil {
		categoryIDs, err := parseCategoryIDs(patchRequest.CategoryIDs)
		if err != nil {
			return echo.NewHTTPError(400, err.Error())
		}
		if err := controller.checkCategoriesExist(categoryIDs); err != nil {
			return err
		}
		if err := controller.subcategoryRepository.ReplaceCategories(nil, &subcategory, categoryIDs); err != nil {
			return echo.NewHTTPError(500, "could not relink subcategory").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.SubcategoryToDTO(subcategory))
}

func (controller *SubcategoryController) Delete(ctx shared.Context) error {
	slugParam, err := shared.GetSlugParam(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "slug is required").WithInternal(err)
	}

	subcategory, err := controller.subcategoryRepository.ReadBySlug(slugParam)
	if err != nil {
		return notFoundOr500(err, "subcategory not found", "could not read subcategory")
	}

	if err := controller.subcategoryRepository.Delete(nil, subcategory.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete subcategory").WithInternal(err)
	}

	return ctx.NoContent(204)
}
