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

package repositories

import (
	"github.com/alehson-uz/alehson/shared"
	"go.uber.org/fx"
)

var Module = fx.Module("repositories",
	fx.Provide(
		fx.Annotate(NewAboutRepository, fx.As(new(shared.AboutRepository))),
		fx.Annotate(NewBlogRepository, fx.As(new(shared.BlogRepository))),
		fx.Annotate(NewBannerRepository, fx.As(new(shared.BannerRepository))),
		fx.Annotate(NewCategoryRepository, fx.As(new(shared.CategoryRepository))),
		fx.Annotate(NewSubcategoryRepository, fx.As(new(shared.SubcategoryRepository))),
		fx.Annotate(NewApplicationRepository, fx.As(new(shared.ApplicationRepository))),
		fx.Annotate(NewApplicationImageRepository, fx.As(new(shared.ApplicationImageRepository))),
		fx.Annotate(NewContactMessageRepository, fx.As(new(shared.ContactMessageRepository))),
		fx.Annotate(NewUserRepository, fx.As(new(shared.UserRepository))),
		fx.Annotate(NewProfileRepository, fx.As(new(shared.ProfileRepository))),
		fx.Annotate(NewStatisticsRepository, fx.As(new(shared.StatisticsRepository))),
	),
)
