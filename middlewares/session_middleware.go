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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package middlewares

import (
	"github.com/auditforge/auditforge/shared"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware establishes the caller's identity. Authentication itself
// happens at the gateway in front of this service, which forwards the
// authenticated user id in the X-User-ID header. Requests without the header
// are rejected.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			userID := ctx.Request().Header.Get("X-User-ID")
			if userID == "" {
				return echo.NewHTTPError(401, "no user provided")
			}

			shared.SetSession(ctx, shared.NewSession(userID))
			return next(ctx)
		}
	}
}
