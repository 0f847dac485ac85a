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
	"github.com/alehson-uz/alehson/database/models"
	"github.com/alehson-uz/alehson/dtos"
)

func AboutToDTO(about models.About) dtos.AboutDTO {
	return dtos.AboutDTO{
		ID:          about.ID,
		MainTitle:   about.MainTitle,
		MainImage:   about.MainImage,
		HeroTitle:   about.HeroTitle,
		Description: about.Description,
	}
}

func ApplyAboutPatchToModel(req dtos.AboutPatchRequest, about *models.About) bool {
	updated := false
	if req.MainTitle != nil && *req.MainTitle != about.MainTitle {
		about.MainTitle = *req.MainTitle
		updated = true
	}
	if req.MainImage != nil && *req.MainImage != about.MainImage {
		about.MainImage = *req.MainImage
		updated = true
	}
	if req.HeroTitle != nil && *req.HeroTitle != about.HeroTitle {
		about.HeroTitle = *req.HeroTitle
		updated = true
	}
	if req.Description != nil && *req.Description != about.Description {
		about.Description = *req.Description
		updated = true
	}
	return updated
}

func BannerCreateRequestToModel(req dtos.BannerCreateRequest) models.Banner {
	banner := models.Banner{
		ImageURL: req.ImageURL,
		IsActive: true,
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	return banner
}

func ApplyBannerPatchToModel(req dtos.BannerPatchRequest, banner *models.Banner) bool {
	updated := false
	if req.ImageURL != nil && *req.ImageURL != banner.ImageURL {
		banner.ImageURL = *req.ImageURL
		updated = true
	}
	if req.IsActive != nil && *req.IsActive != banner.IsActive {
		banner.IsActive = *req.IsActive
		updated = true
	}
	return updated
}

func ContactCreateRequestToModel(req dtos.ContactCreateRequest) models.ContactMessage {
	return models.ContactMessage{
		FullName: req.FullName,
		Email:    req.Email,
		Theme:    req.Theme,
		Message:  req.Message,
	}
}
