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

package router

import (
	"github.com/alehson-uz/alehson/controllers"
	"github.com/alehson-uz/alehson/middlewares"
	"github.com/alehson-uz/alehson/shared"
	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	*echo.Group
}

func whoami(ctx echo.Context) error {
	session := shared.GetSession(ctx)
	return ctx.JSON(200, map[string]any{
		"userId":  session.GetUserID(),
		"email":   session.GetEmail(),
		"isStaff": session.IsStaff(),
	})
}

func NewAuthRouter(
	apiV1Router APIV1Router,
	authService shared.AuthService,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
) AuthRouter {
	authRouter := apiV1Router.Group.Group("/auth")

	authRouter.POST("/register/", authController.Register)
	authRouter.POST("/login/", authController.Login)
	authRouter.POST("/google/", authController.Google)
	authRouter.POST("/token/refresh/", authController.Refresh)

	accountRouter := authRouter.Group("", middlewares.SessionMiddleware(authService))
	accountRouter.GET("/test/", whoami)
	accountRouter.GET("/profile/", profileController.Read)
	accountRouter.PUT("/profile/", profileController.Update)

	return AuthRouter{
		Group: authRouter,
	}
}
