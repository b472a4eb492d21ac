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
	"time"

	"github.com/auditforge/auditforge/dtos"
	"github.com/google/uuid"
)

// Assessment is one compliance evaluation run of an organization against one
// framework version. Its item set is fixed at creation time by the expander.
type Assessment struct {
	Model
	OrganizationID     uuid.UUID         `json:"organizationId" gorm:"not null;index"`
	Organization       *Org              `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE;"`
	FrameworkVersionID uuid.UUID         `json:"frameworkVersionId" gorm:"not null;index"`
	FrameworkVersion   *FrameworkVersion `json:"frameworkVersion,omitempty" gorm:"foreignKey:FrameworkVersionID;references:ID;constraint:OnDelete:CASCADE;"`

	Status         dtos.AssessmentStatus `json:"status" gorm:"type:text;not null;default:'draft'"`
	StartDate      time.Time             `json:"startDate" gorm:"not null"`
	CompletionDate *time.Time            `json:"completionDate"`
	Notes          string                `json:"notes" gorm:"type:text"`

	CreatedBy string `json:"createdBy"`
	UpdatedBy string `json:"updatedBy"`

	Items []AssessmentItem `json:"items,omitempty" gorm:"foreignKey:AssessmentID"`
}

func (m Assessment) TableName() string {
	return "assessments"
}
