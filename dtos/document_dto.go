// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package dtos

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// DocumentUpload carries the metadata and the content stream of one upload.
type DocumentUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader

	DocumentType *string
	ReleaseDate  *time.Time
	DepartmentID *uuid.UUID
}

type DocumentDTO struct {
	ID               uuid.UUID  `json:"id"`
	AssessmentItemID uuid.UUID  `json:"assessmentItemId"`
	FileName         string     `json:"fileName"`
	ContentType      string     `json:"contentType"`
	Size             int64      `json:"size"`
	DocumentType     *string    `json:"documentType,omitempty"`
	ReleaseDate      *time.Time `json:"releaseDate,omitempty"`
	DepartmentID     *uuid.UUID `json:"departmentId,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}
