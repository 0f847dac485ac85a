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

func BlogToDTO(blog models.Blog) dtos.BlogDTO {
	return dtos.BlogDTO{
		ID:          blog.ID,
		CreatedAt:   blog.CreatedAt,
		Title:       blog.Title,
		Description: blog.Description,
		Content:     blog.Content,
		Region:      blog.Region,
		Image:       blog.Image,
		Slug:        blog.Slug,
		Views:       blog.Hits,
	}
}

func BlogsToDTOs(blogs []models.Blog) []dtos.BlogDTO {
	return utils.Map(blogs, BlogToDTO)
}

func BlogCreateRequestToModel(req dtos.BlogCreateRequest) models.Blog {
	return models.Blog{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Region:      req.Region,
		Image:       req.Image,
	}
}

func ApplyBlogPatchToModel(req dtos.BlogPatchRequest, blog *models.Blog) (updated bool, titleChanged bool) {
	if req.Title != nil && *req.Title != blog.Title {
		blog.Title = *req.Title
		updated = true
		titleChanged = true
	}
	if req.Description != nil && *req.Description != blog.Description {
		blog.Description = *req.Description
		updated = true
	}
	if req.Content != nil && *req.Content != blog.Content {
		blog.Content = *req.Content
		updated = true
	}
	if req.Region != nil && *req.Region != blog.Region {
		blog.Region = *req.Region
		updated = true
	}
	if req.Image != nil && *req.Image != blog.Image {
		blog.Image = *req.Image
		updated = true
	}
	return updated, titleChanged
}
