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

package transformer

import (
	"github.com/auditforge/auditforge/database/models"
	"github.com/auditforge/auditforge/dtos"
	"github.com/auditforge/auditforge/utils"
)

func AssessmentDTOFromModel(assessment models.Assessment) dtos.AssessmentDTO {
	return dtos.AssessmentDTO{
		ID:                 assessment.ID,
		OrganizationID:     assessment.OrganizationID,
		FrameworkVersionID: assessment.FrameworkVersionID,
		Status:             assessment.Status,
		StartDate:          assessment.StartDate,
		CompletionDate:     assessment.CompletionDate,
		Notes:              assessment.Notes,
		CreatedAt:          assessment.CreatedAt,
		UpdatedAt:          assessment.UpdatedAt,

		Items: utils.Map(assessment.Items, AssessmentItemDTOFromModel),
	}
}

func AssessmentItemDTOFromModel(item models.AssessmentItem) dtos.AssessmentItemDTO {
	dto := dtos.AssessmentItemDTO{
		ID:                   item.ID,
		AssessmentID:         item.AssessmentID,
		ClauseID:             item.ClauseID,
		Status:               item.Status,
		Notes:                item.Notes,
		CorrectiveActions:    item.CorrectiveActions,
		AssignedDepartmentID: item.AssignedDepartmentID,
		DueDate:              item.DueDate,
		UpdatedAt:            item.UpdatedAt,
	}
	if item.Clause != nil {
		dto.ClauseCode = item.Clause.Code
		dto.ClauseTitle = item.Clause.Title
	}
	return dto
}

// ApplyAssessmentPatchRequestToModel copies the non nil patch fields onto
// the model and reports whether anything changed.
func ApplyAssessmentPatchRequestToModel(p dtos.AssessmentUpdateRequest, assessment *models.Assessment) bool {
	updated := false

	if p.Status != nil {
		updated = true
		assessment.Status = *p.Status
	}

	if p.Notes != nil {
		updated = true
		assessment.Notes = *p.Notes
	}

	if p.CompletionDate != nil {
		updated = true
		assessment.CompletionDate = p.CompletionDate
	}

	return updated
}

func ApplyAssessmentItemPatchRequestToModel(p dtos.AssessmentItemUpdateRequest, item *models.AssessmentItem) bool {
	updated := false

	if p.Status != nil {
		updated = true
		item.Status = *p.Status
	}

	if p.Notes != nil {
		updated = true
		item.Notes = *p.Notes
	}

	if p.CorrectiveActions != nil {
		updated = true
		item.CorrectiveActions = *p.CorrectiveActions
	}

	if p.AssignedDepartmentID != nil {
		updated = true
		item.AssignedDepartmentID = p.AssignedDepartmentID
	}

	if p.DueDate != nil {
		updated = true
		item.DueDate = p.DueDate
	}

	return updated
}

func DocumentDTOFromModel(document models.AssessmentItemDocument) dtos.DocumentDTO {
	return dtos.DocumentDTO{
		ID:               document.ID,
		AssessmentItemID: document.AssessmentItemID,
		FileName:         document.FileName,
		ContentType:      document.ContentType,
		Size:             document.Size,
		DocumentType:     document.DocumentType,
		ReleaseDate:      document.ReleaseDate,
		DepartmentID:     document.DepartmentID,
		CreatedAt:        document.CreatedAt,
	}
}
