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
	"github.com/auditforge/auditforge/services"
	"github.com/auditforge/auditforge/shared"
	"github.com/auditforge/auditforge/transformer"
	"github.com/auditforge/auditforge/utils"
	"github.com/labstack/echo/v4"
)

type OrgController struct {
	organizationRepository shared.OrganizationRepository
	departmentRepository   shared.DepartmentRepository
	orgService             *services.OrgService
}

func NewOrganizationController(
	organizationRepository shared.OrganizationRepository,
	departmentRepository shared.DepartmentRepository,
	orgService *services.OrgService,
) *OrgController {
	return &OrgController{
		organizationRepository: organizationRepository,
		departmentRepository:   departmentRepository,
		orgService:             orgService,
	}
}

func (controller *OrgController) Create(ctx shared.Context) error {
	var req dtos.OrgCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	organization, err := controller.orgService.CreateOrganization(shared.GetActor(ctx), req)
	if err != nil {
		return err
	}

	return ctx.JSON(201, transformer.OrgDTOFromModel(organization))
}

func (controller *OrgController) List(ctx shared.Context) error {
	organizations, err := controller.organizationRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list organizations").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(organizations, transformer.OrgDTOFromModel))
}

func (controller *OrgController) Read(ctx shared.Context) error {
	organization, err := controller.orgService.ReadBySlug(shared.SanitizeParam(ctx.Param("organizationSlug")))
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.OrgDTOFromModel(organization))
}

func (controller *OrgController) Delete(ctx shared.Context) error {
	organizationID, err := shared.ParseUUIDParam(ctx, "organizationID")
	if err != nil {
		return err
	}

	if err := controller.organizationRepository.Delete(nil, organizationID); err != nil {
		return echo.NewHTTPError(500, "could not delete organization").WithInternal(err)
	}

	return ctx.NoContent(200)
}

func (controller *OrgController) CreateDepartment(ctx shared.Context) error {
	organizationID, err := shared.ParseUUIDParam(ctx, "organizationID")
	if err != nil {
		return err
	}

	var req dtos.DepartmentCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	department, err := controller.orgService.CreateDepartment(shared.GetActor(ctx), organizationID, req)
	if err != nil {
		return err
	}

	return ctx.JSON(201, transformer.DepartmentDTOFromModel(department))
}

func (controller *OrgController) ListDepartments(ctx shared.Context) error {
	organizationID, err := shared.ParseUUIDParam(ctx, "organizationID")
	if err != nil {
		return err
	}

	departments, err := controller.departmentRepository.FindByOrg(organizationID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list departments").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(departments, transformer.DepartmentDTOFromModel))
}
