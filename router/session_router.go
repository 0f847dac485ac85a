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
	"github.com/alehson-uz/alehson/middlewares"
	"github.com/alehson-uz/alehson/shared"
	"github.com/labstack/echo/v4"
)

// SessionRouter groups every route that needs a signed in account.
type SessionRouter struct {
	*echo.Group
}

func NewSessionRouter(apiV1Router APIV1Router, authService shared.AuthService) SessionRouter {
	sessionRouter := apiV1Router.Group.Group("", middlewares.SessionMiddleware(authService))
	return SessionRouter{
		Group: sessionRouter,
	}
}

// StaffRouter sits on top of the session router and additionally requires
// the staff flag.
type StaffRouter struct {
	*echo.Group
}

func NewStaffRouter(sessionRouter SessionRouter) StaffRouter {
	staffRouter := sessionRouter.Group.Group("", middlewares.StaffMiddleware())
	return StaffRouter{
		Group: staffRouter,
	}
}
