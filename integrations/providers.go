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

package integrations

import (
	"github.com/alehson-uz/alehson/integrations/googleint"
	"github.com/alehson-uz/alehson/integrations/imagehostint"
	"github.com/alehson-uz/alehson/integrations/telegramint"
	"github.com/alehson-uz/alehson/shared"
	"go.uber.org/fx"
)

var Module = fx.Module("integrations",
	fx.Provide(
		fx.Annotate(telegramint.NewTelegramClient, fx.As(new(shared.Notifier))),
		fx.Annotate(imagehostint.NewImageHostClient, fx.As(new(shared.ImageUploader))),
		fx.Annotate(googleint.NewGoogleVerifier, fx.As(new(shared.GoogleVerifier))),
	),
)
