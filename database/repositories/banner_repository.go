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

type bannerRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.Banner, *gorm.DB]
}

func NewBannerRepository(db *gorm.DB) *bannerRepository {
	return &bannerRepository{
		db:         db,
		Repository: database.NewGormRepository[uuid.UUID, models.Banner](db),
	}
}

func (b *bannerRepository) ListActive() ([]models.Banner, error) {
	var banners []models.Banner
	err := b.db.Where("is_active = ?", true).Order("created_at DESC").Find(&banners).Error
	return banners, err
}
