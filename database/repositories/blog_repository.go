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

type blogRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.Blog, *gorm.DB]
}

func NewBlogRepository(db *gorm.DB) *blogRepository {
	return &blogRepository{
		db:         db,
		Repository: database.NewGormRepository[uuid.UUID, models.Blog](db),
	}
}

func (b *blogRepository) ReadBySlug(slug string) (models.Blog, error) {
	var blog models.Blog
	err := b.db.First(&blog, "slug = ?", slug).Error
	return blog, err
}

func (b *blogRepository) ListNewestFirst() ([]models.Blog, error) {
	var blogs []models.Blog
	err := b.db.Order("created_at DESC").Find(&blogs).Error
	return blogs, err
}

// IncrementHits bumps the view counter atomically and returns the new value.
func (b *blogRepository) IncrementHits(id uuid.UUID) (int, error) {
	var blog models.Blog
	err := b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Blog{}).Where("id = ?", id).
			Update("hits", gorm.Expr("hits + 1")).Error; err != nil {
			return err
		}
		return tx.First(&blog, "id = ?", id).Error
	})
	return blog.Hits, err
}

func (b *blogRepository) FirstFreeSlug(base string, excludeID uuid.UUID) (string, error) {
	return firstFreeSlug(b.db, "blogs", base, excludeID)
}
