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
	"log/slog"

	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/monitoring"
	"github.com/alehson-uz/alehson/shared"
	"github.com/alehson-uz/alehson/transformer"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"
)

type BlogController struct {
	blogRepository shared.BlogRepository
}

func NewBlogController(blogRepository shared.BlogRepository) *BlogController {
	return &BlogController{blogRepository: blogRepository}
}

func (controller *BlogController) List(ctx shared.Context) error {
	blogs, err := controller.blogRepository.ListNewestFirst()
	if err != nil {
		return echo.NewHTTPError(500, "could not list blogs").WithInternal(err)
	}
	return ctx.JSON(200, transformer.BlogsToDTOs(blogs))
}

// Read returns a single blog post and counts the visit. The counter is a
// plain page hit counter, repeated reads by the same client all count.
func (controller *BlogController) Read(ctx shared.Context) error {
	slugParam, err := shared.GetSlugParam(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "slug is required").WithInternal(err)
	}

	blog, err := controller.blogRepository.ReadBySlug(slugParam)
	if err != nil {
		return notFoundOr500(err, "blog not found", "could not read blog")
	}

	hits, err := controller.blogRepository.IncrementHits(blog.ID)
	if err != nil {
		// a lost hit is not worth failing the read
		slog.Warn("could not increment blog hits", "blog", blog.ID, "err", err)
	} else {
		blog.Hits = hits
		monitoring.BlogHits.Inc()
	}

	return ctx.JSON(200, transformer.BlogToDTO(blog))
}

func (controller *BlogController) Create(ctx shared.Context) error {
	var req dtos.BlogCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	blog := transformer.BlogCreateRequestToModel(req)

	free, err := controller.blogRepository.FirstFreeSlug(slug.Make(blog.Title), uuid.Nil)
	if err != nil {
		return echo.NewHTTPError(500, "could not determine free slug").WithInternal(err)
	}
	blog.SetSlug(free)

	if err := controller.blogRepository.Create(nil, &blog); err != nil {
		return echo.NewHTTPError(500, "could not create blog").WithInternal(err)
	}

	return ctx.JSON(201, transformer.BlogToDTO(blog))
}

func (controller *BlogController) Update(ctx shared.Context) error {
	slugParam, err := shared.GetSlugParam(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "slug is required").WithInternal(err)
	}

	blog, err := controller.blogRepository.ReadBySlug(slugParam)
	if err != nil {
		return notFoundOr500(err, "blog not found", "could not read blog")
	}

	req := ctx.Request().Body
	defer req.Close()

	var patchRequest dtos.BlogPatchRequest
	if err := json.NewDecoder(req).Decode(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	updated, titleChanged := transformer.ApplyBlogPatchToModel(patchRequest, &blog)
	if titleChanged {
		free, err := controller.blogRepository.FirstFreeSlug(slug.Make(blog.Title), blog.ID)
		if err != nil {
			return echo.NewHTTPError(500, "could not determine free slug").WithInternal(err)
		}
		blog.SetSlug(free)
	}

	if updated {
		if err := controller.blogRepository.Save(nil, &blog); err != nil {
			return echo.NewHTTPError(500, "could not update blog").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.BlogToDTO(blog))
}

func (controller *BlogController) Delete(ctx shared.Context) error {
	slugParam, err := shared.GetSlugParam(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "slug is required").WithInternal(err)
	}

	blog, err := controller.blogRepository.ReadBySlug(slugParam)
	if err != nil {
		return notFoundOr500(err, "blog not found", "could not read blog")
	}

	if err := controller.blogRepository.Delete(nil, blog.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete blog").WithInternal(err)
	}

	return ctx.NoContent(204)
}
