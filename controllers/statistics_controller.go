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
	"github.com/alehson-uz/alehson/shared"
	"github.com/labstack/echo/v4"
)

type StatisticsController struct {
	statisticsService shared.StatisticsService
}

func NewStatisticsController(statisticsService shared.StatisticsService) *StatisticsController {
	return &StatisticsController{statisticsService: statisticsService}
}

func (controller *StatisticsController) Read(ctx shared.Context) error {
	stats, err := controller.statisticsService.Collect()
	if err != nil {
		return echo.NewHTTPError(500, "could not collect statistics").WithInternal(err)
	}
	return ctx.JSON(200, stats)
}
