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

// aboutRepository manages the single about page row.
type aboutRepository struct {
	db *gorm.DB
}

func NewAboutRepository(db *gorm.DB) *aboutRepository {
	return &aboutRepository{db: db}
}

func (a *aboutRepository) First() (models.About, error) {
	var about models.About
	err := a.db.Order("created_at ASC").First(&about).Error
	return about, err
}

func (a *aboutRepository) Save(tx *gorm.DB, about *models.About) error {
	if tx == nil {
		tx = a.db
	}
	return tx.Save(about).Error
}
