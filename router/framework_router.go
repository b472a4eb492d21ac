// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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

package router

import (
	"github.com/auditforge/auditforge/controllers"
	"github.com/labstack/echo/v4"
)

type FrameworkRouter struct {
	*echo.Group
}

func NewFrameworkRouter(
	sessionGroup SessionRouter,
	frameworkController *controllers.FrameworkController,
) FrameworkRouter {
	frameworkRouter := sessionGroup.Group.Group("/frameworks")
	frameworkRouter.GET("/", frameworkController.List)
	frameworkRouter.POST("/", frameworkController.Create)
	frameworkRouter.GET("/:frameworkSlug/", frameworkController.Read)

	frameworkScopedRouter := frameworkRouter.Group("/id/:frameworkID")
	frameworkScopedRouter.GET("/versions/", frameworkController.ListVersions)
	frameworkScopedRouter.POST("/versions/", frameworkController.CreateVersion)

	return FrameworkRouter{Group: frameworkRouter}
}
