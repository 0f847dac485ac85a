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
	"github.com/alehson-uz/alehson/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type subcategoryRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.Subcategory, *gorm.DB]
}

func NewSubcategoryRepository(db *gorm.DB) *subcategoryRepository {
	return &subcategoryRepository{
		db:         db,
		Repository: database.NewGormRepository[uuid.UUID, models.Subcategory](db),
	}
}

func (s *subcategoryRepository) Read(id uuid.UUID) (models.Subcategory, error) {
	var subcategory models.Subcategory
	err := s.db.Preload("Categories").First(&subcategory, "id = ?", id).Error
	return subcategory, err
}

func (s *subcategoryRepository) All() ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := s.db.Preload("Categories").Order("created_at ASC").Find(&subcategories).Error
	return subcategories, err
}

func (s *subcategoryRepository) ReadBySlug(slug string) (models.Subcategory, error) {
	var subcategory models.Subcategory
	err := s.db.Preload("Categories").First(&subcategory, "slug = ?", slug).Error
	return subcategory, err
}

func (s *subcategoryRepository) IsLinkedToCategory(subcategoryID uuid.UUID, categoryID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Table("category_subcategories").
		Where("subcategory_id = ? AND category_id = ?", subcategoryID, categoryID).
		Count(&count).Error
	return count > 0, err
}

// ReplaceCategories swaps the category links of a subcategory for the given
// set. The subcategory row itself is left untouched.
func (s *subcategoryRepository) ReplaceCategories(tx *gorm.DB, subcategory *models.Subcategory, categoryIDs []uuid.UUID) error {
	if tx == nil {
		tx = s.db
	}
	categories := utils.Map(categoryIDs, func(id uuid.UUID) models.Category {
		return models.Category{Model: models.Model{ID: id}}
	})
	return tx.Model(subcategory).Association("Categories").Replace(&categories)
}

func (s *subcategoryRepository) FirstFreeSlug(base string, excludeID uuid.UUID) (string, error) {
	return firstFreeSlug(s.db, "subcategories", base, excludeID)
}
