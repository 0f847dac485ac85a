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

package repositories

import (
	"github.com/alehson-uz/alehson/database"
	"github.com/alehson-uz/alehson/database/models"
	"github.com/alehson-uz/alehson/dtos"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type applicationRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.Application, *gorm.DB]
}

func NewApplicationRepository(db *gorm.DB) *applicationRepository {
	return &applicationRepository{
		db:         db,
		Repository: database.NewGormRepository[uuid.UUID, models.Application](db),
	}
}

func (a *applicationRepository) preloaded() *gorm.DB {
	return a.db.Preload("Category").Preload("Subcategory").Preload("Images")
}

func (a *applicationRepository) Read(id uuid.UUID) (models.Application, error) {
	var app models.Application
	err := a.preloaded().First(&app, "id = ?", id).Error
	return app, err
}

func (a *applicationRepository) ReadBySlug(slug string) (models.Application, error) {
	var app models.Application
	err := a.preloaded().First(&app, "slug = ?", slug).Error
	return app, err
}

func (a *applicationRepository) ListNewestFirst() ([]models.Application, error) {
	var apps []models.Application
	err := a.preloaded().Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (a *applicationRepository) ListByCategory(categoryID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := a.preloaded().Where("category_id = ?", categoryID).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (a *applicationRepository) ListBySubcategory(subcategoryID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := a.preloaded().Where("subcategory_id = ?", subcategoryID).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (a *applicationRepository) Filter(filter dtos.ApplicationFilter) ([]models.Application, error) {
	q := a.preloaded()
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Region != "" {
		q = q.Where("region = ?", filter.Region)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.SubcategoryID != nil {
		q = q.Where("subcategory_id = ?", *filter.SubcategoryID)
	}
	var apps []models.Application
	err := q.Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (a *applicationRepository) UpdateStatus(id uuid.UUID, status models.ApplicationStatus, deniedReason string) error {
	return a.db.Model(&models.Application{}).Where("id = ?", id).Updates(map[string]any{
		"status":        status,
		"denied_reason": deniedReason,
	}).Error
}

func (a *applicationRepository) FirstFreeSlug(base string, excludeID uuid.UUID) (string, error) {
	return firstFreeSlug(a.db, "applications", base, excludeID)
}
