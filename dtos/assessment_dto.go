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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type AssessmentCreateRequest struct {
	OrganizationID     uuid.UUID `json:"organizationId" validate:"required"`
	FrameworkID        uuid.UUID `json:"frameworkId" validate:"required"`
	FrameworkVersionID uuid.UUID `json:"frameworkVersionId" validate:"required"`
	Notes              string    `json:"notes"`
}

// AssessmentUpdateRequest is a patch: nil fields stay untouched.
type AssessmentUpdateRequest struct {
	Status         *AssessmentStatus `json:"status" validate:"omitempty,oneof=draft inProgress completed cancelled"`
	Notes          *string           `json:"notes"`
	CompletionDate *time.Time        `json:"completionDate"`
}

type AssessmentItemUpdateRequest struct {
	Status               *ComplianceStatus `json:"status" validate:"omitempty,oneof=notAssessed conformity conformityWithNotes nonConformity"`
	Notes                *string           `json:"notes"`
	CorrectiveActions    *string           `json:"correctiveActions"`
	AssignedDepartmentID *uuid.UUID        `json:"assignedDepartmentId"`
	DueDate              *time.Time        `json:"dueDate"`
}

type ChecklistAnswerUpdateRequest struct {
	ChecklistItemID uuid.UUID `json:"checklistItemId" validate:"required"`
	Checked         bool      `json:"checked"`
	Notes           string    `json:"notes"`
}

type AssessmentDTO struct {
	ID                 uuid.UUID        `json:"id"`
	OrganizationID     uuid.UUID        `json:"organizationId"`
	FrameworkVersionID uuid.UUID        `json:"frameworkVersionId"`
	Status             AssessmentStatus `json:"status"`
	StartDate          time.Time        `json:"startDate"`
	CompletionDate     *time.Time       `json:"completionDate,omitempty"`
	Notes              string           `json:"notes"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`

	Items []AssessmentItemDTO `json:"items,omitempty"`
}

type AssessmentItemDTO struct {
	ID                   uuid.UUID        `json:"id"`
	AssessmentID         uuid.UUID        `json:"assessmentId"`
	ClauseID             uuid.UUID        `json:"clauseId"`
	ClauseCode           string           `json:"clauseCode,omitempty"`
	ClauseTitle          string           `json:"clauseTitle,omitempty"`
	Status               ComplianceStatus `json:"status"`
	Notes                string           `json:"notes"`
	CorrectiveActions    string           `json:"correctiveActions"`
	AssignedDepartmentID *uuid.UUID       `json:"assignedDepartmentId,omitempty"`
	DueDate              *time.Time       `json:"dueDate,omitempty"`
	UpdatedAt            time.Time        `json:"updatedAt"`
}
