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

	"github.com/google/uuid"
)

// AssessmentItemDocument is one uploaded file bound to an assessment item.
// StorageKey is the opaque blob-store key: a fresh UUID plus the original
// file extension, so filename reuse can never collide. Soft-deleting the row
// keeps the underlying bytes (retention decision, see DESIGN.md).
type AssessmentItemDocument struct {
	Model
	AssessmentItemID uuid.UUID `json:"assessmentItemId" gorm:"not null;index"`

	FileName    string `json:"fileName" gorm:"not null"`
	StorageKey  string `json:"-" gorm:"uniqueIndex;not null"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`

	DocumentType *string    `json:"documentType"`
	ReleaseDate  *time.Time `json:"releaseDate"`

	DepartmentID *uuid.UUID              `json:"departmentId"`
	Department   *OrganizationDepartment `json:"department,omitempty" gorm:"foreignKey:DepartmentID;references:ID;"`

	CreatedBy string `json:"createdBy"`
	UpdatedBy string `json:"updatedBy"`
}

func (m AssessmentItemDocument) TableName() string {
	return "assessment_item_documents"
}
