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

package transformer

import (
	"github.com/alehson-uz/alehson/database/models"
	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/utils"
)

func SubcategoryToDTO(subcategory models.Subcategory) dtos.SubcategoryDTO {
	return dtos.SubcategoryDTO{
		ID:    subcategory.ID,
		Title: subcategory.Title,
		Slug:  subcategory.Slug,
	}
}

func SubcategoriesToDTOs(subcategories []models.Subcategory) []dtos.SubcategoryDTO {
	return utils.Map(subcategories, SubcategoryToDTO)
}

func CategoryToDTO(category models.Category) dtos.CategoryDTO {
	return dtos.CategoryDTO{
		ID:            category.ID,
		Title:         category.Title,
		Image:         category.Image,
		Subcategories: SubcategoriesToDTOs(category.Subcategories),
	}
}

func CategoriesToDTOs(categories []models.Category) []dtos.CategoryDTO {
	return utils.Map(categories, CategoryToDTO)
}

func CategoryCreateRequestToModel(req dtos.CategoryCreateRequest) models.Category {
	return models.Category{
		Title: req.Title,
		Image: req.Image,
	}
}

func ApplyCategoryPatchToModel(req dtos.CategoryPatchRequest, category *models.Category) bool {
	updated := false
	if req.Title != nil && *req.Title != category.Title {
		category.Title = *req.Title
		updated = true
	}
	if req.Image != nil && *req.Image != category.Image {
		category.Image = *req.Image
		updated = true
	}
	return updated
}

func SubcategoryCreateRequestToModel(req dtos.SubcategoryCreateRequest) models.Subcategory {
	return models.Subcategory{
		Title: req.Title,
	}
}
