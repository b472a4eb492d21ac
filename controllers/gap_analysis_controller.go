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

package controllers

import (
	"github.com/auditforge/auditforge/monitoring"
	"github.com/auditforge/auditforge/shared"
)

type GapAnalysisController struct {
	gapAnalysisService shared.GapAnalysisService
}

func NewGapAnalysisController(gapAnalysisService shared.GapAnalysisService) *GapAnalysisController {
	return &GapAnalysisController{gapAnalysisService: gapAnalysisService}
}

func (controller *GapAnalysisController) Generate(ctx shared.Context) error {
	assessment := shared.GetAssessment(ctx)

	result, err := controller.gapAnalysisService.Generate(assessment)
	if err != nil {
		return err
	}

	monitoring.GapAnalysisGenerated.Inc()
	return ctx.JSON(200, result)
}

func (controller *GapAnalysisController) ByDepartment(ctx shared.Context) error {
	assessment := shared.GetAssessment(ctx)

	departmentID, err := shared.ParseUUIDParam(ctx, "departmentID")
	if err != nil {
		return err
	}

	result, err := controller.gapAnalysisService.ByDepartment(assessment, departmentID)
	if err != nil {
		return err
	}

	monitoring.GapAnalysisGenerated.Inc()
	return ctx.JSON(200, result)
}

func (controller *GapAnalysisController) ByCategory(ctx shared.Context) error {
	assessment := shared.GetAssessment(ctx)

	result, err := controller.gapAnalysisService.ByCategory(assessment)
	if err != nil {
		return err
	}

	monitoring.GapAnalysisGenerated.Inc()
	return ctx.JSON(200, result)
}
