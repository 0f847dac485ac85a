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

// ApplicationCreateRequest is the scalar part of the intake payload. File
// attachments (video, document, images) arrive alongside it in the multipart
// form and are handled separately by the controller.
type ApplicationCreateRequest struct {
	FullName       string `json:"fullName" form:"fullName" validate:"required"`
	PhoneNumber    string `json:"phoneNumber" form:"phoneNumber" validate:"required"`
	BirthDate      string `json:"birthDate" form:"birthDate" validate:"required,datetime=2006-01-02"`
	PassportNumber string `json:"passportNumber" form:"passportNumber" validate:"required"`
	Region         string `json:"region" form:"region" validate:"required"`
	Location       string `json:"location" form:"location"`
	CategoryID     string `json:"categoryId" form:"categoryId" validate:"required,uuid"`
	SubcategoryID  string `json:"subcategoryId" form:"subcategoryId" validate:"required,uuid"`
	Description    string `json:"description" form:"description" validate:"required"`
}

type ApplicationPatchRequest struct {
	FullName       *string `json:"fullName"`
	PhoneNumber    *string `json:"phoneNumber"`
	BirthDate      *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	PassportNumber *string `json:"passportNumber"`
	Region         *string `json:"region"`
	Location       *string `json:"location"`
	CategoryID     *string `json:"categoryId" validate:"omitempty,uuid"`
	SubcategoryID  *string `json:"subcategoryId" validate:"omitempty,uuid"`
	Description    *string `json:"description"`
}

type ApplicationSetStatusRequest struct {
	Status       string `json:"status" validate:"required,oneof=pending accepted denied"`
	DeniedReason string `json:"deniedReason"`
}

// ApplicationFilter collects the optional query parameters of the generic
// filter endpoint. Nil / empty values are ignored.
type ApplicationFilter struct {
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	Region        string
	Status        string
}

type ApplicationImageDTO struct {
	ID       uuid.UUID `json:"id"`
	Image    *string   `json:"image"`
	ImageURL *string   `json:"imageUrl"`
}

type ApplicationDTO struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	FullName       string    `json:"fullName"`
	PhoneNumber    string    `json:"phoneNumber"`
	BirthDate      string    `json:"birthDate"`
	PassportNumber string    `json:"passportNumber"`
	Region         string    `json:"region"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	DeniedReason   string    `json:"deniedReason,omitempty"`
	Slug           string    `json:"slug"`
	VideoURL       *string   `json:"videoUrl"`
	DocumentURL    *string   `json:"documentUrl"`

	CategoryID       uuid.UUID `json:"categoryId"`
	CategoryTitle    string    `json:"categoryTitle"`
	SubcategoryID    uuid.UUID `json:"subcategoryId"`
	SubcategoryTitle string    `json:"subcategoryTitle"`

	Images []ApplicationImageDTO `json:"images"`
}

type ApplicationSetStatusResponse struct {
	Detail       string `json:"detail"`
	Status       string `json:"status"`
	DeniedReason string `json:"deniedReason"`
}
