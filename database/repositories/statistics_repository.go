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
	"github.com/alehson-uz/alehson/database/models"
	"gorm.io/gorm"
)

// statisticsRepository only counts rows, it never materializes them.
type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) *statisticsRepository {
	return &statisticsRepository{db: db}
}

func (s *statisticsRepository) count(model any) (int64, error) {
	var count int64
	err := s.db.Model(model).Count(&count).Error
	return count, err
}

func (s *statisticsRepository) CountApplications() (int64, error) {
	return s.count(&models.Application{})
}

func (s *statisticsRepository) CountApplicationsByStatus(status models.ApplicationStatus) (int64, error) {
	var count int64
	err := s.db.Model(&models.Application{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (s *statisticsRepository) CountUsers() (int64, error) {
	return s.count(&models.User{})
}

func (s *statisticsRepository) CountBlogs() (int64, error) {
	return s.count(&models.Blog{})
}

func (s *statisticsRepository) CountCategories() (int64, error) {
	return s.count(&models.Category{})
}

func (s *statisticsRepository) CountSubcategories() (int64, error) {
	return s.count(&models.Subcategory{})
}
