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

package services

import (
	"github.com/alehson-uz/alehson/database/models"
	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/shared"
	"github.com/pkg/errors"
)

type statisticsService struct {
	statisticsRepo shared.StatisticsRepository
}

func NewStatisticsService(statisticsRepo shared.StatisticsRepository) *statisticsService {
	return &statisticsService{statisticsRepo: statisticsRepo}
}

func (s *statisticsService) Collect() (dtos.StatisticsDTO, error) {
	var stats dtos.StatisticsDTO
	var err error

	if stats.TotalApplications, err = s.statisticsRepo.CountApplications(); err != nil {
		return stats, errors.Wrap(err, "could not count applications")
	}
	if stats.AcceptedApplications, err = s.statisticsRepo.CountApplicationsByStatus(models.ApplicationStatusAccepted); err != nil {
		return stats, errors.Wrap(err, "could not count accepted applications")
	}
	if stats.DeniedApplications, err = s.statisticsRepo.CountApplicationsByStatus(models.ApplicationStatusDenied); err != nil {
		return stats, errors.Wrap(err, "could not count denied applications")
	}
	if stats.TotalUsers, err = s.statisticsRepo.CountUsers(); err != nil {
		return stats, errors.Wrap(err, "could not count users")
	}
	if stats.TotalBlogs, err = s.statisticsRepo.CountBlogs(); err != nil {
		return stats, errors.Wrap(err, "could not count blogs")
	}
	if stats.TotalCategories, err = s.statisticsRepo.CountCategories(); err != nil {
		return stats, errors.Wrap(err, "could not count categories")
	}
	if stats.TotalSubcategories, err = s.statisticsRepo.CountSubcategories(); err != nil {
		return stats, errors.Wrap(err, "could not count subcategories")
	}

	return stats, nil
}
