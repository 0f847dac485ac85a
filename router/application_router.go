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
	"github.com/labstack/echo/v4"
)

type ApplicationRouter struct {
	*echo.Group
}

func NewApplicationRouter(
	apiV1Router APIV1Router,
	sessionRouter SessionRouter,
	staffRouter StaffRouter,
	applicationController *controllers.ApplicationController,
	imageController *controllers.ApplicationImageController,
) ApplicationRouter {
	/**
	Public intake and lookup.
	*/
	applicationRouter := apiV1Router.Group.Group("/applications")
	applicationRouter.POST("/", applicationController.Create)
	applicationRouter.GET("/filter/", applicationController.List)
	applicationRouter.GET("/category/:categoryID/", applicationController.ListByCategory)
	applicationRouter.GET("/subcategory/:subcategoryID/", applicationController.ListBySubcategory)
	applicationRouter.GET("/:slug/", applicationController.Read)

	/**
	Follow-up uploads need a signed in account.
	*/
	sessionApplications := sessionRouter.Group.Group("/applications")
	sessionApplications.POST("/:slug/add-image/", applicationController.AddImage)
	sessionApplications.POST("/:slug/add-images/", applicationController.AddImages)

	/**
	Review and triage are staff territory.
	*/
	staffApplications := staffRouter.Group.Group("/applications")
	staffApplications.GET("/", applicationController.List)
	staffApplications.PATCH("/:slug/", applicationController.Update)
	staffApplications.DELETE("/:slug/", applicationController.Delete)
	staffApplications.PATCH("/:slug/set-status/", applicationController.SetStatus)

	imageRouter := apiV1Router.Group.Group("/application-images")
	imageRouter.GET("/", imageController.List)
	imageRouter.GET("/:id/", imageController.Read)

	staffImages := staffRouter.Group.Group("/application-images")
	staffImages.DELETE("/:id/", imageController.Delete)

	return ApplicationRouter{
		Group: applicationRouter,
	}
}
