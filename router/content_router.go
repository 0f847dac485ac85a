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

// ContentRouter wires the public website content plus the staff-only
// management routes for it.
type ContentRouter struct {
	*echo.Group
}

func NewContentRouter(
	apiV1Router APIV1Router,
	staffRouter StaffRouter,
	aboutController *controllers.AboutController,
	blogController *controllers.BlogController,
	bannerController *controllers.BannerController,
	categoryController *controllers.CategoryController,
	subcategoryController *controllers.SubcategoryController,
	contactController *controllers.ContactController,
	statisticsController *controllers.StatisticsController,
) ContentRouter {
	public := apiV1Router.Group

	public.GET("/about/", aboutController.Read)

	public.GET("/blogs/", blogController.List)
	public.GET("/blogs/:slug/", blogController.Read)

	public.GET("/banners/active/", bannerController.List)

	public.GET("/categories/", categoryController.List)
	public.GET("/categories/:id/", categoryController.Read)
	public.GET("/subcategories/", subcategoryController.List)
	public.GET("/subcategories/:slug/", subcategoryController.Read)

	public.POST("/contact-us/", contactController.Create)

	public.GET("/statistics/", statisticsController.Read)

	staff := staffRouter.Group

	staff.PUT("/about/", aboutController.Update)

	staff.POST("/blogs/", blogController.Create)
	staff.PATCH("/blogs/:slug/", blogController.Update)
	staff.DELETE("/blogs/:slug/", blogController.Delete)

	staff.GET("/banners/", bannerController.ListAll)
	staff.POST("/banners/", bannerController.Create)
	staff.PATCH("/banners/:id/", bannerController.Update)
	staff.DELETE("/banners/:id/", bannerController.Delete)

	staff.POST("/categories/", categoryController.Create)
	staff.PATCH("/categories/:id/", categoryController.Update)
	staff.DELETE("/categories/:id/", categoryController.Delete)

	staff.POST("/subcategories/", subcategoryController.Create)
	staff.PATCH("/subcategories/:slug/", subcategoryController.Update)
	staff.DELETE("/subcategories/:slug/", subcategoryController.Delete)

	staff.GET("/contact-us/", contactController.List)
	staff.GET("/contact-us/:id/", contactController.Read)
	staff.DELETE("/contact-us/:id/", contactController.Delete)
	staff.PATCH("/contact-us/:id/mark-read/", contactController.MarkRead)

	return ContentRouter{
		Group: public,
	}
}
