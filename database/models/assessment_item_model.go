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

// AssessmentItem is one clause's compliance record within an assessment.
// Exactly one item exists per (assessment, clause) pair; the expander
// deduplicates clauses that are linked under several categories.
type AssessmentItem struct {
	Model
	AssessmentID uuid.UUID `json:"assessmentId" gorm:"not null;index"`
	ClauseID     uuid.UUID `json:"clauseId" gorm:"not null;index"`
	Clause       *Clause   `json:"clause,omitempty" gorm:"foreignKey:ClauseID;references:ID;constraint:OnDelete:CASCADE;"`

	Status            dtos.ComplianceStatus `json:"status" gorm:"type:text;not null;default:'notAssessed'"`
	Notes             string                `json:"notes" gorm:"type:text"`
	CorrectiveActions string                `json:"correctiveActions" gorm:"type:text"`

	AssignedDepartmentID *uuid.UUID              `json:"assignedDepartmentId"`
	AssignedDepartment   *OrganizationDepartment `json:"assignedDepartment,omitempty" gorm:"foreignKey:AssignedDepartmentID;references:ID;"`
	DueDate              *time.Time              `json:"dueDate"`

	CreatedBy string `json:"createdBy"`
	UpdatedBy string `json:"updatedBy"`

	Answers   []AssessmentItemChecklistAnswer `json:"answers,omitempty" gorm:"foreignKey:AssessmentItemID"`
	Documents []AssessmentItemDocument        `json:"documents,omitempty" gorm:"foreignKey:AssessmentItemID"`
}

func (m AssessmentItem) TableName() string {
	return "assessment_items"
}

// AssessmentItemChecklistAnswer is one checklist item's answer within an
// assessment item. The (assessment_item_id, checklist_item_id) pair is unique
// at the database level; writes go through an on-conflict upsert.
type AssessmentItemChecklistAnswer struct {
	Model
	AssessmentItemID uuid.UUID      `json:"assessmentItemId" gorm:"not null;index:idx_answers_item_checklist,unique,where:deleted_at IS NULL"`
	ChecklistItemID  uuid.UUID      `json:"checklistItemId" gorm:"not null;index:idx_answers_item_checklist,unique,where:deleted_at IS NULL"`
	ChecklistItem    *ChecklistItem `json:"checklistItem,omitempty" gorm:"foreignKey:ChecklistItemID;references:ID;constraint:OnDelete:CASCADE;"`

	Checked bool   `json:"checked" gorm:"not null;default:false"`
	Notes   string `json:"notes" gorm:"type:text"`

	CreatedBy string `json:"createdBy"`
	UpdatedBy string `json:"updatedBy"`
}

func (m AssessmentItemChecklistAnswer) TableName() string {
	return "assessment_item_checklist_answers"
}
