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

package shared

import (
	"fmt"

	"github.com/google/uuid"
)

type AuthSession interface {
	GetUserID() uuid.UUID
	GetEmail() string
	IsStaff() bool
}

type session struct {
	userID uuid.UUID
	email  string
	staff  bool
}

func (s session) GetUserID() uuid.UUID {
	return s.userID
}

func (s session) GetEmail() string {
	return s.email
}

func (s session) IsStaff() bool {
	return s.staff
}

func NewSession(userID uuid.UUID, email string, staff bool) AuthSession {
	return session{userID: userID, email: email, staff: staff}
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, s AuthSession) {
	ctx.Set("session", s)
}

func HasSession(ctx Context) bool {
	_, ok := ctx.Get("session").(AuthSession)
	return ok
}

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		fallback := ctx.Get(param)
		if fallback == nil {
			return ""
		}
		return fallback.(string)
	}
	return v
}

func GetSlugParam(ctx Context) (string, error) {
	slug := SanitizeParam(GetParam(ctx, "slug"))
	if slug == "" {
		return "", fmt.Errorf("could not get slug")
	}
	return slug, nil
}

func GetIDParam(ctx Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(SanitizeParam(GetParam(ctx, param)))
	if err != nil {
		return uuid.Nil, fmt.Errorf("could not parse %s: %w", param, err)
	}
	return id, nil
}
