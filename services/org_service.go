// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"strings"

	"github.com/auditforge/auditforge/database/models"
	"github.com/auditforge/auditforge/dtos"
	"github.com/auditforge/auditforge/shared"
	"github.com/auditforge/auditforge/transformer"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type OrgService struct {
	organizationRepository shared.OrganizationRepository
	departmentRepository   shared.DepartmentRepository
	auditSink              shared.AuditSink
}

func NewOrgService(
	organizationRepository shared.OrganizationRepository,
	departmentRepository shared.DepartmentRepository,
	auditSink shared.AuditSink,
) *OrgService {
	return &OrgService{
		organizationRepository: organizationRepository,
		departmentRepository:   departmentRepository,
		auditSink:              auditSink,
	}
}

func (o *OrgService) CreateOrganization(actor shared.Actor, req dtos.OrgCreateRequest) (models.Org, error) {
	organization := transformer.OrgCreateRequestToModel(req)

	err := o.organizationRepository.Create(nil, &organization)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return models.Org{}, echo.NewHTTPError(409, "organization with that name already exists").WithInternal(err)
		}
		return models.Org{}, echo.NewHTTPError(500, "could not create organization").WithInternal(err)
	}

	o.auditSink.Record(actor, "organization", organization.ID, dtos.AuditActionAdd, map[string]any{
		"name": organization.Name,
	})
	return organization, nil
}

func (o *OrgService) ReadBySlug(slug string) (models.Org, error) {
	if slug == "" {
		return models.Org{}, echo.NewHTTPError(400, "slug is required")
	}

	org, err := o.organizationRepository.ReadBySlug(slug)
	if err != nil {
		return models.Org{}, echo.NewHTTPError(404, "organization not found").WithInternal(err)
	}
	return org, nil
}

func (o *OrgService) CreateDepartment(actor shared.Actor, orgID uuid.UUID, req dtos.DepartmentCreateRequest) (models.OrganizationDepartment, error) {
	if _, err := o.organizationRepository.Read(orgID); err != nil {
		return models.OrganizationDepartment{}, echo.NewHTTPError(404, "organization not found").WithInternal(err)
	}

	department := models.OrganizationDepartment{
		OrganizationID: orgID,
		Name:           req.Name,
	}
	if err := o.departmentRepository.Create(nil, &department); err != nil {
		return models.OrganizationDepartment{}, echo.NewHTTPError(500, "could not create department").WithInternal(err)
	}

	o.auditSink.Record(actor, "department", department.ID, dtos.AuditActionAdd, map[string]any{
		"organizationId": orgID.String(),
		"name":           department.Name,
	})
	return department, nil
}
