// Copyright (C) 2025 l3montree GmbH
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package transformer

import (
	"github.com/auditforge/auditforge/database/models"
	"github.com/auditforge/auditforge/dtos"
	"github.com/auditforge/auditforge/utils"
	"github.com/gosimple/slug"
)

func OrgCreateRequestToModel(c dtos.OrgCreateRequest) models.Org {
	return models.Org{
		Name:        c.Name,
		Slug:        slug.Make(c.Name),
		Description: c.Description,
		Status:      dtos.OrgStatusActive,
	}
}

func OrgDTOFromModel(org models.Org) dtos.OrgDTO {
	return dtos.OrgDTO{
		ID:          org.ID,
		Name:        org.Name,
		Slug:        org.Slug,
		Description: org.Description,
		Status:      org.Status,
		CreatedAt:   org.CreatedAt,

		Departments: utils.Map(org.Departments, DepartmentDTOFromModel),
	}
}

func DepartmentDTOFromModel(department models.OrganizationDepartment) dtos.DepartmentDTO {
	return dtos.DepartmentDTO{
		ID:   department.ID,
		Name: department.Name,
	}
}
