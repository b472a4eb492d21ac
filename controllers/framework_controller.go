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

type FrameworkController struct {
	frameworkRepository shared.FrameworkRepository
	frameworkService    *services.FrameworkService
}

func NewFrameworkController(frameworkRepository shared.FrameworkRepository, frameworkService *services.FrameworkService) *FrameworkController {
	return &FrameworkController{
		frameworkRepository: frameworkRepository,
		frameworkService:    frameworkService,
	}
}

func (controller *FrameworkController) Create(ctx shared.Context) error {
	var req dtos.FrameworkCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	framework, err := controller.frameworkService.CreateFramework(shared.GetActor(ctx), req)
	if err != nil {
		return err
	}

	return ctx.JSON(201, transformer.FrameworkDTOFromModel(framework))
}

func (controller *FrameworkController) List(ctx shared.Context) error {
	frameworks, err := controller.frameworkRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list frameworks").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(frameworks, transformer.FrameworkDTOFromModel))
}

func (controller *FrameworkController) Read(ctx shared.Context) error {
	framework, err := controller.frameworkRepository.ReadBySlug(shared.SanitizeParam(ctx.Param("frameworkSlug")))
	if err != nil {
		return echo.NewHTTPError(404, "framework not found").WithInternal(err)
	}

	return ctx.JSON(200, transformer.FrameworkDTOFromModel(framework))
}

func (controller *FrameworkController) CreateVersion(ctx shared.Context) error {
	frameworkID, err := shared.ParseUUIDParam(ctx, "frameworkID")
	if err != nil {
		return err
	}

	var req dtos.FrameworkVersionCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	version, err := controller.frameworkService.CreateVersion(shared.GetActor(ctx), frameworkID, req)
	if err != nil {
		return err
	}

	return ctx.JSON(201, transformer.FrameworkVersionDTOFromModel(version))
}

func (controller *FrameworkController) ListVersions(ctx shared.Context) error {
	frameworkID, err := shared.ParseUUIDParam(ctx, "frameworkID")
	if err != nil {
		return err
	}

	versions, err := controller.frameworkRepository.VersionsOf(frameworkID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list framework versions").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(versions, transformer.FrameworkVersionDTOFromModel))
}
