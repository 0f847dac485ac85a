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
	"time"

	"github.com/alehson-uz/alehson/database/models"
	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/utils"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

func ApplicationImageToDTO(image models.ApplicationImage) dtos.ApplicationImageDTO {
	return dtos.ApplicationImageDTO{
		ID:       image.ID,
		Image:    image.Image,
		ImageURL: image.ImageURL,
	}
}

func ApplicationToDTO(app models.Application) dtos.ApplicationDTO {
	return dtos.ApplicationDTO{
		ID:             app.ID,
		CreatedAt:      app.CreatedAt,
		FullName:       app.FullName,
		PhoneNumber:    app.PhoneNumber,
		BirthDate:      app.BirthDate.Format(dateLayout),
		PassportNumber: app.PassportNumber,
		Region:         app.Region,
		Location:       app.Location,
		Description:    app.Description,
		Status:         string(app.Status),
		DeniedReason:   app.DeniedReason,
		Slug:           app.Slug,
		VideoURL:       app.VideoURL,
		DocumentURL:    app.DocumentURL,

		CategoryID:       app.CategoryID,
		CategoryTitle:    app.Category.Title,
		SubcategoryID:    app.SubcategoryID,
		SubcategoryTitle: app.Subcategory.Title,

		Images: utils.Map(app.Images, ApplicationImageToDTO),
	}
}

func ApplicationsToDTOs(apps []models.Application) []dtos.ApplicationDTO {
	return utils.Map(apps, ApplicationToDTO)
}

// ApplicationCreateRequestToModel builds a fresh application from an intake
// request. BirthDate and the uuid fields are expected to be pre-validated.
func ApplicationCreateRequestToModel(req dtos.ApplicationCreateRequest) models.Application {
	birthDate, _ := time.Parse(dateLayout, req.BirthDate)
	return models.Application{
		FullName:       req.FullName,
		PhoneNumber:    req.PhoneNumber,
		BirthDate:      birthDate,
		PassportNumber: req.PassportNumber,
		Region:         req.Region,
		Location:       req.Location,
		Description:    req.Description,
		Status:         models.ApplicationStatusPending,
		CategoryID:     uuid.MustParse(req.CategoryID),
		SubcategoryID:  uuid.MustParse(req.SubcategoryID),
	}
}

// ApplyApplicationPatchToModel copies the set fields of a patch onto the
// model and reports whether anything changed. Category and subcategory moves
// are included, the caller checks they still form a valid pair.
func ApplyApplicationPatchToModel(req dtos.ApplicationPatchRequest, app *models.Application) bool {
	updated := false
	if req.FullName != nil && *req.FullName != app.FullName {
		app.FullName = *req.FullName
		updated = true
	}
	if req.PhoneNumber != nil && *req.PhoneNumber != app.PhoneNumber {
		app.PhoneNumber = *req.PhoneNumber
		updated = true
	}
	if req.BirthDate != nil {
		if birthDate, err := time.Parse(dateLayout, *req.BirthDate); err == nil && !birthDate.Equal(app.BirthDate) {
			app.BirthDate = birthDate
			updated = true
		}
	}
	if req.PassportNumber != nil && *req.PassportNumber != app.PassportNumber {
		app.PassportNumber = *req.PassportNumber
		updated = true
	}
	if req.Region != nil && *req.Region != app.Region {
		app.Region = *req.Region
		updated = true
	}
	if req.Location != nil && *req.Location != app.Location {
		app.Location = *req.Location
		updated = true
	}
	if req.Description != nil && *req.Description != app.Description {
		app.Description = *req.Description
		updated = true
	}
	if req.CategoryID != nil {
		if id, err := uuid.Parse(*req.CategoryID); err == nil && id != app.CategoryID {
			app.CategoryID = id
			app.Category = models.Category{}
			updated = true
		}
	}
	if req.SubcategoryID != nil {
		if id, err := uuid.Parse(*req.SubcategoryID); err == nil && id != app.SubcategoryID {
			app.SubcategoryID = id
			app.Subcategory = models.Subcategory{}
			updated = true
		}
	}
	return updated
}
