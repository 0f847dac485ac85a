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
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.Category, *gorm.DB]
}

func NewCategoryRepository(db *gorm.DB) *categoryRepository {
	return &categoryRepository{
		db:         db,
		Repository: database.NewGormRepository[uuid.UUID, models.Category](db),
	}
}

func (c *categoryRepository) ReadWithSubcategories(id uuid.UUID) (models.Category, error) {
	var category models.Category
	err := c.db.Preload("Subcategories").First(&category, "id = ?", id).Error
	return category, err
}

func (c *categoryRepository) AllWithSubcategories() ([]models.Category, error) {
	var categories []models.Category
	err := c.db.Preload("Subcategories").Order("created_at ASC").Find(&categories).Error
	return categories, err
}
