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

package shared

import (
	"context"
	"io"

	"github.com/auditforge/auditforge/database/models"
	"github.com/auditforge/auditforge/dtos"
	"github.com/google/uuid"
)

type OrganizationRepository interface {
	Create(tx DB, org *models.Org) error
	Read(id uuid.UUID) (models.Org, error)
	ReadBySlug(slug string) (models.Org, error)
	Update(tx DB, org *models.Org) error
	Delete(tx DB, id uuid.UUID) error
	All() ([]models.Org, error)
}

type DepartmentRepository interface {
	Create(tx DB, department *models.OrganizationDepartment) error
	Read(id uuid.UUID) (models.OrganizationDepartment, error)
	FindByOrg(orgID uuid.UUID) ([]models.OrganizationDepartment, error)
	Delete(tx DB, id uuid.UUID) error
}

type FrameworkRepository interface {
	Create(tx DB, framework *models.Framework) error
	Read(id uuid.UUID) (models.Framework, error)
	ReadBySlug(slug string) (models.Framework, error)
	All() ([]models.Framework, error)
	CreateVersion(tx DB, version *models.FrameworkVersion) error
	ReadVersion(id uuid.UUID) (models.FrameworkVersion, error)
	VersionsOf(frameworkID uuid.UUID) ([]models.FrameworkVersion, error)
}

// CatalogRepository serves the category/clause/checklist tree of a framework
// version. The expander and the gap analysis both read through it.
type CatalogRepository interface {
	CategoryLinks(frameworkVersionID uuid.UUID) ([]models.FrameworkVersionCategory, error)
	ClauseLinks(frameworkVersionCategoryID uuid.UUID) ([]models.CategoryClause, error)
	ChecklistItemsOf(clauseID uuid.UUID) ([]models.ChecklistItem, error)
	ReadChecklistItem(id uuid.UUID) (models.ChecklistItem, error)
	// CategoriesOfClauses returns one row per (clause, category) membership
	// inside the given framework version, restricted to the given clauses.
	CategoriesOfClauses(frameworkVersionID uuid.UUID, clauseIDs []uuid.UUID) ([]models.ClauseCategory, error)

	CreateCategory(tx DB, category *models.Category) error
	CreateClause(tx DB, clause *models.Clause) error
	CreateChecklistItem(tx DB, item *models.ChecklistItem) error
	LinkCategory(tx DB, link *models.FrameworkVersionCategory) error
	LinkClause(tx DB, link *models.CategoryClause) error
}

type AssessmentRepository interface {
	Transaction(f func(tx DB) error) error
	Create(tx DB, assessment *models.Assessment) error
	Read(id uuid.UUID) (models.Assessment, error)
	ReadWithItems(id uuid.UUID) (models.Assessment, error)
	// FindActive returns the non terminal assessments of the organization
	// for the given framework version.
	FindActive(organizationID, frameworkVersionID uuid.UUID) ([]models.Assessment, error)
	FindByOrg(organizationID uuid.UUID) ([]models.Assessment, error)
	Update(tx DB, assessment *models.Assessment) error
	Delete(tx DB, id uuid.UUID) error
}

type AssessmentItemRepository interface {
	CreateBatch(tx DB, items []models.AssessmentItem) error
	Read(id uuid.UUID) (models.AssessmentItem, error)
	FindByAssessment(assessmentID uuid.UUID) ([]models.AssessmentItem, error)
	Update(tx DB, item *models.AssessmentItem) error
	Delete(tx DB, id uuid.UUID) error
	DeleteByAssessment(tx DB, assessmentID uuid.UUID) error
}

type ChecklistAnswerRepository interface {
	CreateBatch(tx DB, answers []models.AssessmentItemChecklistAnswer) error
	FindByItem(assessmentItemID uuid.UUID) ([]models.AssessmentItemChecklistAnswer, error)
	FindByItemAndChecklistItem(assessmentItemID, checklistItemID uuid.UUID) (models.AssessmentItemChecklistAnswer, error)
	// Upsert writes the answer keyed by (assessment item, checklist item).
	// Concurrent writers for the same key both succeed, last write wins.
	Upsert(tx DB, answer *models.AssessmentItemChecklistAnswer) error
	DeleteByItem(tx DB, assessmentItemID uuid.UUID) error
	DeleteByAssessment(tx DB, assessmentID uuid.UUID) error
}

type DocumentRepository interface {
	Create(tx DB, document *models.AssessmentItemDocument) error
	Read(id uuid.UUID) (models.AssessmentItemDocument, error)
	FindByItem(assessmentItemID uuid.UUID) ([]models.AssessmentItemDocument, error)
	Delete(tx DB, id uuid.UUID) error
	DeleteByItem(tx DB, assessmentItemID uuid.UUID) error
	DeleteByAssessment(tx DB, assessmentID uuid.UUID) error
}

type AuditEventRepository interface {
	Create(tx DB, event *models.AuditEvent) error
	FindByEntity(entityType, entityID string) ([]models.AuditEvent, error)
}

// ObjectStorage abstracts the blob store documents get written to.
type ObjectStorage interface {
	Put(ctx context.Context, key string, content io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// AuditSink records audit events. Implementations must never fail the
// calling operation, a lost audit event gets logged and swallowed.
type AuditSink interface {
	Record(actor Actor, entityType string, entityID uuid.UUID, action dtos.AuditAction, details map[string]any)
}

type AssessmentService interface {
	CreateAssessment(actor Actor, req dtos.AssessmentCreateRequest) (models.Assessment, error)
	UpdateAssessment(actor Actor, assessment models.Assessment, req dtos.AssessmentUpdateRequest) (models.Assessment, error)
	DeleteAssessment(actor Actor, assessment models.Assessment) error
	UpdateAssessmentItem(actor Actor, itemID uuid.UUID, req dtos.AssessmentItemUpdateRequest) (models.AssessmentItem, error)
	DeleteAssessmentItem(actor Actor, itemID uuid.UUID) error
	UpdateChecklistAnswer(actor Actor, itemID uuid.UUID, req dtos.ChecklistAnswerUpdateRequest) (models.AssessmentItemChecklistAnswer, error)
	StatusSummary(organizationID uuid.UUID) (map[dtos.AssessmentStatus]int, error)
	ComplianceSummary(assessmentID uuid.UUID) (map[dtos.ComplianceStatus]int, error)
}

type GapAnalysisService interface {
	Generate(assessment models.Assessment) (dtos.GapAnalysisResult, error)
	ByDepartment(assessment models.Assessment, departmentID uuid.UUID) (dtos.DepartmentGap, error)
	ByCategory(assessment models.Assessment) ([]dtos.CategoryGap, error)
}

type DocumentService interface {
	Upload(ctx context.Context, actor Actor, itemID uuid.UUID, upload dtos.DocumentUpload) (models.AssessmentItemDocument, error)
	Download(ctx context.Context, documentID uuid.UUID) (models.AssessmentItemDocument, io.ReadCloser, error)
	Delete(ctx context.Context, actor Actor, documentID uuid.UUID) error
}
