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
	"fmt"

	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/services"
	"github.com/alehson-uz/alehson/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type AuthController struct {
	authService shared.AuthService
}

func NewAuthController(authService shared.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (controller *AuthController) Register(ctx shared.Context) error {
	var req dtos.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	pair, err := controller.authService.Register(req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return echo.NewHTTPError(400, "an account with this email already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not register account").WithInternal(err)
	}
	return ctx.JSON(201, pair)
}

func (controller *AuthController) Login(ctx shared.Context) error {
	var req dtos.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	pair, err := controller.authService.Login(req)
	if err != nil {
		// unknown email and wrong password are indistinguishable on purpose
		if errors.Is(err, services.ErrInvalidCredentials) {
			return echo.NewHTTPError(400, "invalid credentials").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not sign in").WithInternal(err)
	}
	return ctx.JSON(200, pair)
}

func (controller *AuthController) Google(ctx shared.Context) error {
	var req dtos.GoogleAuthRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	pair, err := controller.authService.GoogleSignIn(ctx.Request().Context(), req.Token)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return echo.NewHTTPError(400, "token is invalid or expired").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not sign in with google").WithInternal(err)
	}
	return ctx.JSON(200, pair)
}

func (controller *AuthController) Refresh(ctx shared.Context) error {
	var req dtos.TokenRefreshRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	pair, err := controller.authService.Refresh(req.Refresh)
	if err != nil {
		return echo.NewHTTPError(401, "token is invalid or expired").WithInternal(err)
	}
	return ctx.JSON(200, pair)
}
