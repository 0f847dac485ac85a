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

package transformer_test

import (
	"testing"
	"time"

	"github.com/alehson-uz/alehson/database/models"
	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/transformer"
	"github.com/alehson-uz/alehson/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestApplicationToDTO(t *testing.T) {
	categoryID := uuid.New()
	subcategoryID := uuid.New()
	app := models.Application{
		Model:          models.Model{ID: uuid.New()},
		FullName:       "John Doe",
		BirthDate:      time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC),
		Region:         "Toshkent",
		Status:         models.ApplicationStatusDenied,
		DeniedReason:   "incomplete documents",
		Slug:           "john-doe-2",
		CategoryID:     categoryID,
		Category:       models.Category{Title: "Medical"},
		SubcategoryID:  subcategoryID,
		Subcategory:    models.Subcategory{Title: "Surgery"},
		PassportNumber: "AB1234567",
		Images: []models.ApplicationImage{
			{Model: models.Model{ID: uuid.New()}, ImageURL: utils.Ptr("https://img.example/a.jpg")},
		},
	}

	dto := transformer.ApplicationToDTO(app)

	assert.Equal(t, "1990-04-02", dto.BirthDate)
	assert.Equal(t, "denied", dto.Status)
	assert.Equal(t, "incomplete documents", dto.DeniedReason)
	assert.Equal(t, "Medical", dto.CategoryTitle)
	assert.Equal(t, "Surgery", dto.SubcategoryTitle)
	assert.Len(t, dto.Images, 1)
	assert.Equal(t, utils.Ptr("https://img.example/a.jpg"), dto.Images[0].ImageURL)
}

func TestApplicationCreateRequestToModel(t *testing.T) {
	categoryID := uuid.New()
	subcategoryID := uuid.New()

	app := transformer.ApplicationCreateRequestToModel(dtos.ApplicationCreateRequest{
		FullName:      "John Doe",
		BirthDate:     "1990-04-02",
		Region:        "Toshkent",
		CategoryID:    categoryID.String(),
		SubcategoryID: subcategoryID.String(),
	})

	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC), app.BirthDate)
	assert.Equal(t, categoryID, app.CategoryID)
	assert.Equal(t, subcategoryID, app.SubcategoryID)
	assert.Empty(t, app.Slug)
}

func TestApplyApplicationPatchToModel(t *testing.T) {
	baseApp := func() models.Application {
		return models.Application{
			FullName:      "John Doe",
			Region:        "Toshkent",
			BirthDate:     time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC),
			CategoryID:    uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Category:      models.Category{Title: "Medical"},
			SubcategoryID: uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		}
	}

	t.Run("should report no change for an empty patch", func(t *testing.T) {
		app := baseApp()
		updated := transformer.ApplyApplicationPatchToModel(dtos.ApplicationPatchRequest{}, &app)
		assert.False(t, updated)
		assert.Equal(t, baseApp(), app)
	})

	t.Run("should report no change when the patch repeats current values", func(t *testing.T) {
		app := baseApp()
		updated := transformer.ApplyApplicationPatchToModel(dtos.ApplicationPatchRequest{
			FullName: utils.Ptr("John Doe"),
			Region:   utils.Ptr("Toshkent"),
		}, &app)
		assert.False(t, updated)
	})

	t.Run("should apply set fields", func(t *testing.T) {
		app := baseApp()
		updated := transformer.ApplyApplicationPatchToModel(dtos.ApplicationPatchRequest{
			FullName:  utils.Ptr("Jane Doe"),
			BirthDate: utils.Ptr("1991-05-03"),
		}, &app)
		assert.True(t, updated)
		assert.Equal(t, "Jane Doe", app.FullName)
		assert.Equal(t, time.Date(1991, 5, 3, 0, 0, 0, 0, time.UTC), app.BirthDate)
		assert.Equal(t, "Toshkent", app.Region)
	})

	t.Run("should clear the preloaded category on a category move", func(t *testing.T) {
		app := baseApp()
		updated := transformer.ApplyApplicationPatchToModel(dtos.ApplicationPatchRequest{
			CategoryID: utils.Ptr("33333333-3333-3333-3333-333333333333"),
		}, &app)
		assert.True(t, updated)
		assert.Equal(t, uuid.MustParse("33333333-3333-3333-3333-333333333333"), app.CategoryID)
		assert.Empty(t, app.Category.Title)
	})
}
