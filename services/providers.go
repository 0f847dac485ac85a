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
	"github.com/alehson-uz/alehson/shared"
	"go.uber.org/fx"
)

var Module = fx.Module("services",
	fx.Provide(
		fx.Annotate(NewApplicationService, fx.As(new(shared.ApplicationService))),
		fx.Annotate(NewAuthService, fx.As(new(shared.AuthService))),
		fx.Annotate(NewStatisticsService, fx.As(new(shared.StatisticsService))),
	),
)
