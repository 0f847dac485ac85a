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

type applicationImageRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.ApplicationImage, *gorm.DB]
}

func NewApplicationImageRepository(db *gorm.DB) *applicationImageRepository {
	return &applicationImageRepository{
		db:         db,
		Repository: database.NewGormRepository[uuid.UUID, models.ApplicationImage](db),
	}
}

func (a *applicationImageRepository) ListByApplication(applicationID uuid.UUID) ([]models.ApplicationImage, error) {
	var images []models.ApplicationImage
	err := a.db.Where("application_id = ?", applicationID).Order("created_at ASC").Find(&images).Error
	return images, err
}
