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

package services

import (
	"context"
	"io"
	"path/filepath"

	"github.com/auditforge/auditforge/database/models"
	"github.com/auditforge/auditforge/dtos"
	"github.com/auditforge/auditforge/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type DocumentService struct {
	assessmentItemRepository shared.AssessmentItemRepository
	departmentRepository     shared.DepartmentRepository
	documentRepository       shared.DocumentRepository
	objectStorage            shared.ObjectStorage
	auditSink                shared.AuditSink
}

func NewDocumentService(
	assessmentItemRepository shared.AssessmentItemRepository,
	departmentRepository shared.DepartmentRepository,
	documentRepository shared.DocumentRepository,
	objectStorage shared.ObjectStorage,
	auditSink shared.AuditSink,
) *DocumentService {
	return &DocumentService{
		assessmentItemRepository: assessmentItemRepository,
		departmentRepository:     departmentRepository,
		documentRepository:       documentRepository,
		objectStorage:            objectStorage,
		auditSink:                auditSink,
	}
}

// Upload stores the content in the blob store under a fresh key and inserts
// the metadata row afterwards. The bytes go first: a database failure can
// leave an orphaned blob behind, but never a record pointing at missing
// bytes.
func (s *DocumentService) Upload(ctx context.Context, actor shared.Actor, itemID uuid.UUID, upload dtos.DocumentUpload) (models.AssessmentItemDocument, error) {
	item, err := s.assessmentItemRepository.Read(itemID)
	if err != nil {
		return models.AssessmentItemDocument{}, echo.NewHTTPError(404, "assessment item not found").WithInternal(err)
	}

	if upload.DepartmentID != nil {
		if _, err := s.departmentRepository.Read(*upload.DepartmentID); err != nil {
			return models.AssessmentItemDocument{}, echo.NewHTTPError(404, "department not found").WithInternal(err)
		}
	}

	// the storage key is a fresh uuid plus the original extension, so
	// filename reuse can never collide.
	storageKey := uuid.NewString() + filepath.Ext(upload.FileName)

	if err := s.objectStorage.Put(ctx, storageKey, upload.Content); err != nil {
		return models.AssessmentItemDocument{}, echo.NewHTTPError(500, "could not store document").WithInternal(err)
	}

	document := models.AssessmentItemDocument{
		AssessmentItemID: item.ID,
		FileName:         upload.FileName,
		StorageKey:       storageKey,
		ContentType:      upload.ContentType,
		Size:             upload.Size,
		DocumentType:     upload.DocumentType,
		ReleaseDate:      upload.ReleaseDate,
		DepartmentID:     upload.DepartmentID,
		CreatedBy:        actor.UserID,
		UpdatedBy:        actor.UserID,
	}

	if err := s.documentRepository.Create(nil, &document); err != nil {
		return models.AssessmentItemDocument{}, echo.NewHTTPError(500, "could not save document record").WithInternal(err)
	}

	s.auditSink.Record(actor, "document", document.ID, dtos.AuditActionAdd, map[string]any{
		"assessmentItemId": item.ID.String(),
		"fileName":         document.FileName,
		"size":             document.Size,
	})
	return document, nil
}

// Download returns the metadata row and a reader over the stored bytes. A
// record whose bytes are gone from the store is reported as not found
// instead of being silently swallowed.
func (s *DocumentService) Download(ctx context.Context, documentID uuid.UUID) (models.AssessmentItemDocument, io.ReadCloser, error) {
	document, err := s.documentRepository.Read(documentID)
	if err != nil {
		return models.AssessmentItemDocument{}, nil, echo.NewHTTPError(404, "document not found").WithInternal(err)
	}

	content, err := s.objectStorage.Get(ctx, document.StorageKey)
	if err != nil {
		return models.AssessmentItemDocument{}, nil, echo.NewHTTPError(404, "document content not found").WithInternal(err)
	}

	return document, content, nil
}

// Delete soft deletes the metadata row. The stored bytes are kept for
// retention.
func (s *DocumentService) Delete(ctx context.Context, actor shared.Actor, documentID uuid.UUID) error {
	document, err := s.documentRepository.Read(documentID)
	if err != nil {
		return echo.NewHTTPError(404, "document not found").WithInternal(err)
	}

	if err := s.documentRepository.Delete(nil, document.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete document").WithInternal(err)
	}

	s.auditSink.Record(actor, "document", document.ID, dtos.AuditActionDelete, map[string]any{
		"fileName": document.FileName,
	})
	return nil
}
