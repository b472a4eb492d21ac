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

type OrgRouter struct {
	*echo.Group
}

func NewOrgRouter(
	sessionGroup SessionRouter,
	orgController *controllers.OrgController,
	assessmentController *controllers.AssessmentController,
) OrgRouter {
	/**
	Organization router
	*/
	orgRouter := sessionGroup.Group.Group("/organizations")
	orgRouter.GET("/", orgController.List)
	orgRouter.POST("/", orgController.Create)
	orgRouter.GET("/:organizationSlug/", orgController.Read)

	/**
	Organization scoped router
	All routes below this line are scoped to a specific organization.
	*/
	organizationRouter := orgRouter.Group("/id/:organizationID")

	organizationRouter.DELETE("/", orgController.Delete)
	organizationRouter.GET("/departments/", orgController.ListDepartments)
	organizationRouter.POST("/departments/", orgController.CreateDepartment)
	organizationRouter.GET("/assessments/", assessmentController.List)
	organizationRouter.GET("/assessments/status-summary/", assessmentController.StatusSummary)

	return OrgRouter{Group: organizationRouter}
}
