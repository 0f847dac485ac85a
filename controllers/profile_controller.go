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

package controllers

import (
	"encoding/json"
	"fmt"

	"github.com/alehson-uz/alehson/database/models"
	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/shared"
	"github.com/alehson-uz/alehson/transformer"
	"github.com/labstack/echo/v4"
)

type ProfileController struct {
	profileRepository shared.ProfileRepository
	userRepository    shared.UserRepository
}

func NewProfileController(profileRepository shared.ProfileRepository, userRepository shared.UserRepository) *ProfileController {
	return &ProfileController{
		profileRepository: profileRepository,
		userRepository:    userRepository,
	}
}

// profileOf reads the profile of the signed in user. Registration always
// creates one, so a missing row is a 404, not something to repair here.
func (controller *ProfileController) profileOf(session shared.AuthSession) (models.Profile, models.User, error) {
	user, err := controller.userRepository.Read(session.GetUserID())
	if err != nil {
		return models.Profile{}, models.User{}, err
	}

	profile, err := controller.profileRepository.ReadByUserID(user.ID)
	return profile, user, err
}

func (controller *ProfileController) Read(ctx shared.Context) error {
	profile, user, err := controller.profileOf(shared.GetSession(ctx))
	if err != nil {
		return notFoundOr500(err, "profile not found", "could not read profile")
	}
	return ctx.JSON(200, transformer.ProfileToDTO(profile, user))
}

func (controller *ProfileController) Update(ctx shared.Context) error {
	profile, user, err := controller.profileOf(shared.GetSession(ctx))
	if err != nil {
		return notFoundOr500(err, "profile not found", "could not read profile")
	}

	req := ctx.Request().Body
	defer req.Close()

	var patchRequest dtos.ProfilePatchRequest
	if err := json.NewDecoder(req).Decode(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}
	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if transformer.ApplyProfilePatchToModel(patchRequest, &profile) {
		if err := controller.profileRepository.Save(nil, &profile); err != nil {
			return echo.NewHTTPError(500, "could not update profile").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.ProfileToDTO(profile, user))
}
