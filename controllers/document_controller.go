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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package controllers

import (
	"fmt"
	"time"

	"github.com/auditforge/auditforge/dtos"
	"github.com/auditforge/auditforge/monitoring"
	"github.com/auditforge/auditforge/shared"
	"github.com/auditforge/auditforge/transformer"
	"github.com/auditforge/auditforge/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type DocumentController struct {
	documentService    shared.DocumentService
	documentRepository shared.DocumentRepository
}

func NewDocumentController(documentService shared.DocumentService, documentRepository shared.DocumentRepository) *DocumentController {
	return &DocumentController{
		documentService:    documentService,
		documentRepository: documentRepository,
	}
}

// Upload accepts a multipart form with a "file" part plus optional
// documentType, releaseDate (RFC 3339) and departmentId fields.
func (controller *DocumentController) Upload(ctx shared.Context) error {
	itemID, err := shared.ParseUUIDParam(ctx, "itemID")
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(400, "no file provided").WithInternal(err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(400, "could not open uploaded file").WithInternal(err)
	}
	defer file.Close()

	upload := dtos.DocumentUpload{
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Content:      file,
		DocumentType: utils.EmptyThenNil(ctx.FormValue("documentType")),
	}

	if releaseDate := ctx.FormValue("releaseDate"); releaseDate != "" {
		parsed, err := time.Parse(time.RFC3339, releaseDate)
		if err != nil {
			return echo.NewHTTPError(400, fmt.Sprintf("could not parse release date: %s", err.Error()))
		}
		upload.ReleaseDate = &parsed
	}

	if departmentID := ctx.FormValue("departmentId"); departmentID != "" {
		parsed, err := uuid.Parse(departmentID)
		if err != nil {
			return echo.NewHTTPError(400, "invalid departmentId").WithInternal(err)
		}
		upload.DepartmentID = &parsed
	}

	document, err := controller.documentService.Upload(ctx.Request().Context(), shared.GetActor(ctx), itemID, upload)
	if err != nil {
		return err
	}

	monitoring.DocumentsUploaded.Inc()
	monitoring.DocumentUploadBytes.Add(float64(document.Size))
	return ctx.JSON(201, transformer.DocumentDTOFromModel(document))
}

func (controller *DocumentController) List(ctx shared.Context) error {
	itemID, err := shared.ParseUUIDParam(ctx, "itemID")
	if err != nil {
		return err
	}

	documents, err := controller.documentRepository.FindByItem(itemID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list documents").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(documents, transformer.DocumentDTOFromModel))
}

func (controller *DocumentController) Download(ctx shared.Context) error {
	documentID, err := shared.ParseUUIDParam(ctx, "documentID")
	if err != nil {
		return err
	}

	document, content, err := controller.documentService.Download(ctx.Request().Context(), documentID)
	if err != nil {
		return err
	}
	defer content.Close()

	ctx.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", document.FileName))
	contentType := document.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return ctx.Stream(200, contentType, content)
}

func (controller *DocumentController) Delete(ctx shared.Context) error {
	documentID, err := shared.ParseUUIDParam(ctx, "documentID")
	if err != nil {
		return err
	}

	if err := controller.documentService.Delete(ctx.Request().Context(), shared.GetActor(ctx), documentID); err != nil {
		return err
	}

	return ctx.NoContent(200)
}
