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
	"github.com/auditforge/auditforge/middlewares"
	"github.com/auditforge/auditforge/shared"
	"github.com/labstack/echo/v4"
)

type AssessmentRouter struct {
	*echo.Group
}

func NewAssessmentRouter(
	sessionGroup SessionRouter,
	assessmentController *controllers.AssessmentController,
	gapAnalysisController *controllers.GapAnalysisController,
	documentController *controllers.DocumentController,
	assessmentRepository shared.AssessmentRepository,
) AssessmentRouter {
	assessmentsRouter := sessionGroup.Group.Group("/assessments")
	assessmentsRouter.POST("/", assessmentController.Create)

	/**
	Assessment scoped router
	All routes below this line resolve :assessmentID through the
	assessment middleware.
	*/
	assessmentRouter := assessmentsRouter.Group("/:assessmentID",
		middlewares.AssessmentMiddleware(assessmentRepository),
	)

	assessmentRouter.GET("/", assessmentController.Read)
	assessmentRouter.PATCH("/", assessmentController.Update)
	assessmentRouter.DELETE("/", assessmentController.Delete)
	assessmentRouter.GET("/compliance-summary/", assessmentController.ComplianceSummary)

	// gap analysis endpoints, always computed on the fly
	assessmentRouter.GET("/gap-analysis/", gapAnalysisController.Generate)
	assessmentRouter.GET("/gap-analysis/categories/", gapAnalysisController.ByCategory)
	assessmentRouter.GET("/gap-analysis/departments/:departmentID/", gapAnalysisController.ByDepartment)

	assessmentRouter.PATCH("/items/:itemID/", assessmentController.UpdateItem)
	assessmentRouter.DELETE("/items/:itemID/", assessmentController.DeleteItem)
	assessmentRouter.PUT("/items/:itemID/answers/", assessmentController.UpdateChecklistAnswer)

	assessmentRouter.POST("/items/:itemID/documents/", documentController.Upload)
	assessmentRouter.GET("/items/:itemID/documents/", documentController.List)
	assessmentRouter.GET("/documents/:documentID/", documentController.Download)
	assessmentRouter.DELETE("/documents/:documentID/", documentController.Delete)

	return AssessmentRouter{Group: assessmentRouter}
}
