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

// FrameworkService manages frameworks, their versions and the catalog tree
// below a version. Published versions are read only from the assessment
// engine's point of view.
type FrameworkService struct {
	frameworkRepository shared.FrameworkRepository
	catalogRepository   shared.CatalogRepository
	auditSink           shared.AuditSink
}

func NewFrameworkService(
	frameworkRepository shared.FrameworkRepository,
	catalogRepository shared.CatalogRepository,
	auditSink shared.AuditSink,
) *FrameworkService {
	return &FrameworkService{
		frameworkRepository: frameworkRepository,
		catalogRepository:   catalogRepository,
		auditSink:           auditSink,
	}
}

func (s *FrameworkService) CreateFramework(actor shared.Actor, req dtos.FrameworkCreateRequest) (models.Framework, error) {
	framework := transformer.FrameworkCreateRequestToModel(req)

	if err := s.frameworkRepository.Create(nil, &framework); err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return models.Framework{}, echo.NewHTTPError(409, "framework with that name already exists").WithInternal(err)
		}
		return models.Framework{}, echo.NewHTTPError(500, "could not create framework").WithInternal(err)
	}

	s.auditSink.Record(actor, "framework", framework.ID, dtos.AuditActionAdd, map[string]any{
		"name": framework.Name,
	})
	return framework, nil
}

func (s *FrameworkService) CreateVersion(actor shared.Actor, frameworkID uuid.UUID, req dtos.FrameworkVersionCreateRequest) (models.FrameworkVersion, error) {
	if _, err := s.frameworkRepository.Read(frameworkID); err != nil {
		return models.FrameworkVersion{}, echo.NewHTTPError(404, "framework not found").WithInternal(err)
	}

	version := models.FrameworkVersion{
		FrameworkID: frameworkID,
		Name:        req.Name,
		PublishedAt: req.PublishedAt,
	}
	if err := s.frameworkRepository.CreateVersion(nil, &version); err != nil {
		return models.FrameworkVersion{}, echo.NewHTTPError(500, "could not create framework version").WithInternal(err)
	}

	s.auditSink.Record(actor, "frameworkVersion", version.ID, dtos.AuditActionAdd, map[string]any{
		"frameworkId": frameworkID.String(),
		"name":        version.Name,
	})
	return version, nil
}
