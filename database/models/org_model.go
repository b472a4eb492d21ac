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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package models

import (
	"github.com/auditforge/auditforge/dtos"
	"github.com/google/uuid"
)

type Org struct {
	Model
	Name        string         `json:"name" gorm:"uniqueIndex;not null"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Description string         `json:"description"`
	Status      dtos.OrgStatus `json:"status" gorm:"type:text;not null;default:'active'"`

	Departments []OrganizationDepartment `json:"departments,omitempty" gorm:"foreignKey:OrganizationID"`
}

func (m Org) TableName() string {
	return "organizations"
}

// IsAssessable reports whether new assessments may be created for the org.
func (m Org) IsAssessable() bool {
	return m.Status == dtos.OrgStatusActive
}

type OrganizationDepartment struct {
	Model
	OrganizationID uuid.UUID `json:"organizationId" gorm:"not null;index"`
	Organization   *Org      `json:"-" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE;"`
	Name           string    `json:"name" gorm:"not null"`
}

func (m OrganizationDepartment) TableName() string {
	return "organization_departments"
}
