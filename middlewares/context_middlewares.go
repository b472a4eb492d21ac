// Copyright (C) 2025 l3montree GmbH
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

package middlewares

import (
	"github.com/auditforge/auditforge/shared"
	"github.com/labstack/echo/v4"
)

// all middlewares which modify the current request context and fetch some data from the database

// AssessmentMiddleware resolves the :assessmentID path parameter and puts
// the assessment into the request context. Soft deleted assessments resolve
// to a 404.
func AssessmentMiddleware(repository shared.AssessmentRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			assessmentID, err := shared.ParseUUIDParam(ctx, "assessmentID")
			if err != nil {
				return err
			}

			assessment, err := repository.Read(assessmentID)
			if err != nil {
				return echo.NewHTTPError(404, "assessment not found").WithInternal(err)
			}

			shared.SetAssessment(ctx, assessment)
			return next(ctx)
		}
	}
}
