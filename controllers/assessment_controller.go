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
	"fmt"

	"github.com/auditforge/auditforge/dtos"
	"github.com/auditforge/auditforge/shared"
	"github.com/auditforge/auditforge/transformer"
	"github.com/auditforge/auditforge/utils"
	"github.com/labstack/echo/v4"
)

type AssessmentController struct {
	assessmentService    shared.AssessmentService
	assessmentRepository shared.AssessmentRepository
}

func NewAssessmentController(assessmentService shared.AssessmentService, assessmentRepository shared.AssessmentRepository) *AssessmentController {
	return &AssessmentController{
		assessmentService:    assessmentService,
		assessmentRepository: assessmentRepository,
	}
}

func (controller *AssessmentController) Create(ctx shared.Context) error {
	var req dtos.AssessmentCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	assessment, err := controller.assessmentService.CreateAssessment(shared.GetActor(ctx), req)
	if err != nil {
		return err
	}

	return ctx.JSON(201, transformer.AssessmentDTOFromModel(assessment))
}

func (controller *AssessmentController) List(ctx shared.Context) error {
	organizationID, err := shared.ParseUUIDParam(ctx, "organizationID")
	if err != nil {
		return err
	}

	assessments, err := controller.assessmentRepository.FindByOrg(organizationID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list assessments").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(assessments, transformer.AssessmentDTOFromModel))
}

func (controller *AssessmentController) Read(ctx shared.Context) error {
	assessment := shared.GetAssessment(ctx)

	// reload with the item set, the middleware only fetches the bare row
	withItems, err := controller.assessmentRepository.ReadWithItems(assessment.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not read assessment").WithInternal(err)
	}

	return ctx.JSON(200, transformer.AssessmentDTOFromModel(withItems))
}

func (controller *AssessmentController) Update(ctx shared.Context) error {
	assessment := shared.GetAssessment(ctx)

	var req dtos.AssessmentUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated, err := controller.assessmentService.UpdateAssessment(shared.GetActor(ctx), assessment, req)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.AssessmentDTOFromModel(updated))
}

func (controller *AssessmentController) Delete(ctx shared.Context) error {
	assessment := shared.GetAssessment(ctx)

	if err := controller.assessmentService.DeleteAssessment(shared.GetActor(ctx), assessment); err != nil {
		return err
	}

	return ctx.NoContent(200)
}

func (controller *AssessmentController) UpdateItem(ctx shared.Context) error {
	itemID, err := shared.ParseUUIDParam(ctx, "itemID")
	if err != nil {
		return err
	}

	var req dtos.AssessmentItemUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	item, err := controller.assessmentService.UpdateAssessmentItem(shared.GetActor(ctx), itemID, req)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.AssessmentItemDTOFromModel(item))
}

func (controller *AssessmentController) DeleteItem(ctx shared.Context) error {
	itemID, err := shared.ParseUUIDParam(ctx, "itemID")
	if err != nil {
		return err
	}

	if err := controller.assessmentService.DeleteAssessmentItem(shared.GetActor(ctx), itemID); err != nil {
		return err
	}

	return ctx.NoContent(200)
}

func (controller *AssessmentController) UpdateChecklistAnswer(ctx shared.Context) error {
	itemID, err := shared.ParseUUIDParam(ctx, "itemID")
	if err != nil {
		return err
	}

	var req dtos.ChecklistAnswerUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	answer, err := controller.assessmentService.UpdateChecklistAnswer(shared.GetActor(ctx), itemID, req)
	if err != nil {
		return err
	}

	return ctx.JSON(200, answer)
}

func (controller *AssessmentController) StatusSummary(ctx shared.Context) error {
	organizationID, err := shared.ParseUUIDParam(ctx, "organizationID")
	if err != nil {
		return err
	}

	summary, err := controller.assessmentService.StatusSummary(organizationID)
	if err != nil {
		return err
	}

	return ctx.JSON(200, summary)
}

func (controller *AssessmentController) ComplianceSummary(ctx shared.Context) error {
	assessment := shared.GetAssessment(ctx)

	summary, err := controller.assessmentService.ComplianceSummary(assessment.ID)
	if err != nil {
		return err
	}

	return ctx.JSON(200, summary)
}
