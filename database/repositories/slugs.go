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
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// firstFreeSlug returns base if no row in table already uses it, otherwise
// base-1, base-2, ... until a free slug is found. Rows matching excludeID are
// ignored so an update does not collide with itself.
func firstFreeSlug(db *gorm.DB, table string, base string, excludeID uuid.UUID) (string, error) {
	var taken []string
	q := db.Table(table).Where("slug LIKE ?", base+"%")
	if excludeID != uuid.Nil {
		q = q.Where("id != ?", excludeID)
	}
	if err := q.Pluck("slug", &taken).Error; err != nil {
		return "", err
	}

	return pickFreeSlug(base, taken), nil
}

// pickFreeSlug returns base when it is not taken, otherwise the first free
// candidate of base-1, base-2, ...
func pickFreeSlug(base string, taken []string) string {
	takenSet := make(map[string]struct{}, len(taken))
	for _, s := range taken {
		takenSet[s] = struct{}{}
	}

	if _, ok := takenSet[base]; !ok {
		return base
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if _, ok := takenSet[candidate]; !ok {
			return candidate
		}
	}
}
