// Copyright (C) 2025 Tim Bastin, l3montree GmbH
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
	"github.com/auditforge/auditforge/database/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthSession is whatever the session middleware could establish about the
// caller. The gateway in front of this service handles authentication, we
// only carry the identity along.
type AuthSession struct {
	userID string
}

func NewSession(userID string) AuthSession {
	return AuthSession{userID: userID}
}

func (s AuthSession) GetUserID() string {
	return s.userID
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func GetSession(ctx Context) AuthSession {
	session, ok := ctx.Get("session").(AuthSession)
	if !ok {
		return AuthSession{}
	}
	return session
}

// Actor is the identity every mutating service call gets attributed to.
type Actor struct {
	UserID string
	IP     string
}

func GetActor(ctx Context) Actor {
	return Actor{
		UserID: GetSession(ctx).GetUserID(),
		IP:     ctx.RealIP(),
	}
}

func SetAssessment(ctx Context, assessment models.Assessment) {
	ctx.Set("assessment", assessment)
}

// GetAssessment panics if no assessment middleware ran before. Routes which
// use it are always mounted behind the middleware.
func GetAssessment(ctx Context) models.Assessment {
	assessment, ok := ctx.Get("assessment").(models.Assessment)
	if !ok {
		panic("assessment not set in context")
	}
	return assessment
}

// ParseUUIDParam reads and parses a uuid path parameter, returning a 400 for
// anything which is not a uuid.
func ParseUUIDParam(ctx Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(400, "invalid "+name).WithInternal(err)
	}
	return id, nil
}
