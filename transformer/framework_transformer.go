// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package transformer

import (
	"github.com/auditforge/auditforge/database/models"
	"github.com/auditforge/auditforge/dtos"
	"github.com/auditforge/auditforge/utils"
	"github.com/gosimple/slug"
)

func FrameworkCreateRequestToModel(c dtos.FrameworkCreateRequest) models.Framework {
	return models.Framework{
		Name:        c.Name,
		Slug:        slug.Make(c.Name),
		Description: c.Description,
	}
}

func FrameworkDTOFromModel(framework models.Framework) dtos.FrameworkDTO {
	return dtos.FrameworkDTO{
		ID:          framework.ID,
		Name:        framework.Name,
		Slug:        framework.Slug,
		Description: framework.Description,
		CreatedAt:   framework.CreatedAt,

		Versions: utils.Map(framework.Versions, FrameworkVersionDTOFromModel),
	}
}

func FrameworkVersionDTOFromModel(version models.FrameworkVersion) dtos.FrameworkVersionDTO {
	return dtos.FrameworkVersionDTO{
		ID:          version.ID,
		FrameworkID: version.FrameworkID,
		Name:        version.Name,
		PublishedAt: version.PublishedAt,
	}
}
