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

package transformer

import (
	"time"

	"github.com/alehson-uz/alehson/database/models"
	"github.com/alehson-uz/alehson/dtos"
)

func UserToSummaryDTO(user models.User) dtos.UserSummaryDTO {
	return dtos.UserSummaryDTO{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}

func ProfileToDTO(profile models.Profile, user models.User) dtos.ProfileDTO {
	var birthDate *string
	if profile.BirthDate != nil {
		s := profile.BirthDate.Format("2006-01-02")
		birthDate = &s
	}
	return dtos.ProfileDTO{
		ID:        profile.ID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		BirthDate: birthDate,
		Email:     user.Email,
		CreatedAt: profile.CreatedAt,
	}
}

func ApplyProfilePatchToModel(req dtos.ProfilePatchRequest, profile *models.Profile) bool {
	updated := false
	if req.FirstName != nil && *req.FirstName != profile.FirstName {
		profile.FirstName = *req.FirstName
		updated = true
	}
	if req.LastName != nil && *req.LastName != profile.LastName {
		profile.LastName = *req.LastName
		updated = true
	}
	if req.BirthDate != nil {
		if birthDate, err := time.Parse("2006-01-02", *req.BirthDate); err == nil {
			if profile.BirthDate == nil || !profile.BirthDate.Equal(birthDate) {
				profile.BirthDate = &birthDate
				updated = true
			}
		}
	}
	return updated
}
