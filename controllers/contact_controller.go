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
	"log/slog"

	"github.com/alehson-uz/alehson/dtos"
	"github.com/alehson-uz/alehson/monitoring"
	"github.com/alehson-uz/alehson/shared"
	"github.com/alehson-uz/alehson/transformer"
	"github.com/labstack/echo/v4"
)

type ContactController struct {
	contactRepository shared.ContactMessageRepository
	notifier          shared.Notifier
}

func NewContactController(contactRepository shared.ContactMessageRepository, notifier shared.Notifier) *ContactController {
	return &ContactController{
		contactRepository: contactRepository,
		notifier:          notifier,
	}
}

// Create stores an inbox message and pushes a telegram notification. The
// push is best effort, a dead bot never breaks the contact form.
func (controller *ContactController) Create(ctx shared.Context) error {
	var req dtos.ContactCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	message := transformer.ContactCreateRequestToModel(req)
	if err := controller.contactRepository.Create(nil, &message); err != nil {
		return echo.NewHTTPError(500, "could not save contact message").WithInternal(err)
	}

	if controller.notifier != nil {
		text := fmt.Sprintf("New contact message from %s <%s>\n%s\n\n%s", message.FullName, message.Email, message.Theme, message.Message)
		if err := controller.notifier.Send(ctx.Request().Context(), text); err != nil {
			monitoring.TelegramNotificationErrors.Inc()
			slog.Warn("could not push contact notification", "err", err)
		}
	}

	return ctx.JSON(201, message)
}

func (controller *ContactController) List(ctx shared.Context) error {
	messages, err := controller.contactRepository.ListNewestFirst()
	if err != nil {
		return echo.NewHTTPError(500, "could not list contact messages").WithInternal(err)
	}
	return ctx.JSON(200, messages)
}

func (controller *ContactController) Read(ctx shared.Context) error {
	id, err := shared.GetIDParam(ctx, "id")
	if err != nil {
		return echo.NewHTTPError(400, "could not parse id").WithInternal(err)
	}

	message, err := controller.contactRepository.Read(id)
	if err != nil {
		return notFoundOr500(err, "contact message not found", "could not read contact message")
	}
	return ctx.JSON(200, message)
}

func (controller *ContactController) Delete(ctx shared.Context) error {
	id, err := shared.GetIDParam(ctx, "id")
	if err != nil {
		return echo.NewHTTPError(400, "could not parse id").WithInternal(err)
	}

	if _, err := controller.contactRepository.Read(id); err != nil {
		return notFoundOr500(err, "contact message not found", "could not read contact message")
	}

	if err := controller.contactRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(500, "could not delete contact message").WithInternal(err)
	}
	return ctx.NoContent(204)
}

func (controller *ContactController) MarkRead(ctx shared.Context) error {
	id, err := shared.GetIDParam(ctx, "id")
	if err != nil {
		return echo.NewHTTPError(400, "could not parse id").WithInternal(err)
	}

	if _, err := controller.contactRepository.Read(id); err != nil {
		return notFoundOr500(err, "contact message not found", "could not read contact message")
	}

	if err := controller.contactRepository.MarkRead(id); err != nil {
		return echo.NewHTTPError(500, "could not mark contact message as read").WithInternal(err)
	}

	return ctx.JSON(200, echo.Map{"detail": "marked as read"})
}
