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

type contactMessageRepository struct {
	db *gorm.DB
	database.Repository[uuid.UUID, models.ContactMessage, *gorm.DB]
}

func NewContactMessageRepository(db *gorm.DB) *contactMessageRepository {
	return &contactMessageRepository{
		db:         db,
		Repository: database.NewGormRepository[uuid.UUID, models.ContactMessage](db),
	}
}

func (c *contactMessageRepository) ListNewestFirst() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := c.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (c *contactMessageRepository) MarkRead(id uuid.UUID) error {
	return c.db.Model(&models.ContactMessage{}).Where("id = ?", id).
		Update("is_read", true).Error
}
