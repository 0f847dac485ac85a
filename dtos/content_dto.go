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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type AboutDTO struct {
	ID          uuid.UUID `json:"id"`
	MainTitle   string    `json:"mainTitle"`
	MainImage   string    `json:"mainImage"`
	HeroTitle   string    `json:"heroTitle"`
	Description string    `json:"description"`
}

type AboutPatchRequest struct {
	MainTitle   *string `json:"mainTitle"`
	MainImage   *string `json:"mainImage"`
	HeroTitle   *string `json:"heroTitle"`
	Description *string `json:"description"`
}

type BlogCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Region      string `json:"region"`
	Image       string `json:"image"`
}

type BlogPatchRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Region      *string `json:"region"`
	Image       *string `json:"image"`
}

type BlogDTO struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Region      string    `json:"region"`
	Image       string    `json:"image"`
	Slug        string    `json:"slug"`
	Views       int       `json:"views"`
}

type CategoryCreateRequest struct {
	Title string `json:"title" validate:"required"`
	Image string `json:"image"`
}

type CategoryPatchRequest struct {
	Title *string `json:"title"`
	Image *string `json:"image"`
}

type SubcategoryDTO struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Slug  string    `json:"slug"`
}

type CategoryDTO struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	Image         string           `json:"image"`
	Subcategories []SubcategoryDTO `json:"subcategories"`
}

type SubcategoryCreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	CategoryIDs []string `json:"categoryIds" validate:"dive,uuid"`
}

type SubcategoryPatchRequest struct {
	Title       *string  `json:"title"`
	CategoryIDs []string `json:"categoryIds" validate:"omitempty,dive,uuid"`
}

type BannerCreateRequest struct {
	ImageURL string `json:"imageUrl" validate:"required,url"`
	IsActive *bool  `json:"isActive"`
}

type BannerPatchRequest struct {
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
	IsActive *bool   `json:"isActive"`
}

type ContactCreateRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Theme    string `json:"theme"`
	Message  string `json:"message" validate:"required"`
}

type StatisticsDTO struct {
	TotalApplications    int64 `json:"totalApplications"`
	AcceptedApplications int64 `json:"acceptedApplications"`
	DeniedApplications   int64 `json:"deniedApplications"`
	TotalUsers           int64 `json:"totalUsers"`
	TotalBlogs           int64 `json:"totalBlogs"`
	TotalCategories      int64 `json:"totalCategories"`
	TotalSubcategories   int64 `json:"totalSubcategories"`
}
