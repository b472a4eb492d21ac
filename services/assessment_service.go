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
	"time"

	"github.com/auditforge/auditforge/database/models"
	"github.com/auditforge/auditforge/dtos"
	"github.com/auditforge/auditforge/monitoring"
	"github.com/auditforge/auditforge/shared"
	"github.com/auditforge/auditforge/transformer"
	"github.com/auditforge/auditforge/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AssessmentService struct {
	organizationRepository    shared.OrganizationRepository
	departmentRepository      shared.DepartmentRepository
	frameworkRepository       shared.FrameworkRepository
	catalogRepository         shared.CatalogRepository
	assessmentRepository      shared.AssessmentRepository
	assessmentItemRepository  shared.AssessmentItemRepository
	checklistAnswerRepository shared.ChecklistAnswerRepository
	documentRepository        shared.DocumentRepository
	auditSink                 shared.AuditSink
}

func NewAssessmentService(
	organizationRepository shared.OrganizationRepository,
	departmentRepository shared.DepartmentRepository,
	frameworkRepository shared.FrameworkRepository,
	catalogRepository shared.CatalogRepository,
	assessmentRepository shared.AssessmentRepository,
	assessmentItemRepository shared.AssessmentItemRepository,
	checklistAnswerRepository shared.ChecklistAnswerRepository,
	documentRepository shared.DocumentRepository,
	auditSink shared.AuditSink,
) *AssessmentService {
	return &AssessmentService{
		organizationRepository:    organizationRepository,
		departmentRepository:      departmentRepository,
		frameworkRepository:       frameworkRepository,
		catalogRepository:         catalogRepository,
		assessmentRepository:      assessmentRepository,
		assessmentItemRepository:  assessmentItemRepository,
		checklistAnswerRepository: checklistAnswerRepository,
		documentRepository:        documentRepository,
		auditSink:                 auditSink,
	}
}

// CreateAssessment materializes a new assessment from the framework
// version's catalog tree: one item per reachable clause, one unchecked
// answer per checklist item of each clause. The whole expansion runs in a
// single transaction, a failure anywhere leaves no rows behind.
func (s *AssessmentService) CreateAssessment(actor shared.Actor, req dtos.AssessmentCreateRequest) (models.Assessment, error) {
	org, err := s.organizationRepository.Read(req.OrganizationID)
	if err != nil {
		return models.Assessment{}, echo.NewHTTPError(404, "organization not found").WithInternal(err)
	}
	if !org.IsAssessable() {
		return models.Assessment{}, echo.NewHTTPError(404, "organization not found")
	}

	if _, err = s.frameworkRepository.Read(req.FrameworkID); err != nil {
		return models.Assessment{}, echo.NewHTTPError(404, "framework not found").WithInternal(err)
	}

	version, err := s.frameworkRepository.ReadVersion(req.FrameworkVersionID)
	if err != nil {
		return models.Assessment{}, echo.NewHTTPError(404, "framework version not found").WithInternal(err)
	}
	if version.FrameworkID != req.FrameworkID {
		return models.Assessment{}, echo.NewHTTPError(400, "framework version does not belong to the given framework")
	}

	active, err := s.assessmentRepository.FindActive(req.OrganizationID, req.FrameworkVersionID)
	if err != nil {
		return models.Assessment{}, echo.NewHTTPError(500, "could not check for active assessments").WithInternal(err)
	}
	if len(active) > 0 {
		return models.Assessment{}, echo.NewHTTPError(409, "there is already an active assessment for this organization and framework version")
	}

	clauses, err := s.collectClauses(req.FrameworkVersionID)
	if err != nil {
		return models.Assessment{}, echo.NewHTTPError(500, "could not read framework catalog").WithInternal(err)
	}

	assessment := models.Assessment{
		OrganizationID:     req.OrganizationID,
		FrameworkVersionID: req.FrameworkVersionID,
		Status:             dtos.AssessmentStatusDraft,
		StartDate:          time.Now(),
		Notes:              req.Notes,
		CreatedBy:          actor.UserID,
		UpdatedBy:          actor.UserID,
	}

	err = s.assessmentRepository.Transaction(func(tx shared.DB) error {
		if err := s.assessmentRepository.Create(tx, &assessment); err != nil {
			return err
		}

		// items get client side ids so the answers can reference them
		// inside the same transaction.
		items := make([]models.AssessmentItem, 0, len(clauses))
		answers := make([]models.AssessmentItemChecklistAnswer, 0)
		for _, clause := range clauses {
			item := models.AssessmentItem{
				Model:        models.Model{ID: uuid.New()},
				AssessmentID: assessment.ID,
				ClauseID:     clause.ID,
				Status:       dtos.ComplianceStatusNotAssessed,
				CreatedBy:    actor.UserID,
				UpdatedBy:    actor.UserID,
			}
			items = append(items, item)

			for _, checklistItem := range clause.ChecklistItems {
				answers = append(answers, models.AssessmentItemChecklistAnswer{
					AssessmentItemID: item.ID,
					ChecklistItemID:  checklistItem.ID,
					Checked:          false,
					CreatedBy:        actor.UserID,
					UpdatedBy:        actor.UserID,
				})
			}
		}

		if err := s.assessmentItemRepository.CreateBatch(tx, items); err != nil {
			return err
		}
		return s.checklistAnswerRepository.CreateBatch(tx, answers)
	})
	if err != nil {
		monitoring.Alert("could not create assessment", err)
		return models.Assessment{}, echo.NewHTTPError(500, "could not create assessment").WithInternal(err)
	}

	monitoring.AssessmentsCreated.Inc()
	s.auditSink.Record(actor, "assessment", assessment.ID, dtos.AuditActionAdd, map[string]any{
		"organizationId":     assessment.OrganizationID.String(),
		"frameworkVersionId": assessment.FrameworkVersionID.String(),
		"itemCount":          len(clauses),
	})

	return s.assessmentRepository.ReadWithItems(assessment.ID)
}

// collectClauses walks the category tree of the framework version and
// returns the reachable clauses, each exactly once. A clause linked under
// several categories must not produce duplicate assessment items.
func (s *AssessmentService) collectClauses(frameworkVersionID uuid.UUID) ([]models.Clause, error) {
	categoryLinks, err := s.catalogRepository.CategoryLinks(frameworkVersionID)
	if err != nil {
		return nil, err
	}

	clauses := make([]models.Clause, 0)
	for _, categoryLink := range categoryLinks {
		clauseLinks, err := s.catalogRepository.ClauseLinks(categoryLink.ID)
		if err != nil {
			return nil, err
		}
		for _, clauseLink := range clauseLinks {
			if clauseLink.Clause == nil {
				continue
			}
			clauses = append(clauses, *clauseLink.Clause)
		}
	}

	return utils.DeduplicateSlice(clauses, func(c models.Clause) string {
		return c.ID.String()
	}), nil
}

func (s *AssessmentService) UpdateAssessment(actor shared.Actor, assessment models.Assessment, req dtos.AssessmentUpdateRequest) (models.Assessment, error) {
	updated := transformer.ApplyAssessmentPatchRequestToModel(req, &assessment)
	if !updated {
		return assessment, nil
	}

	if req.Status != nil && *req.Status == dtos.AssessmentStatusCompleted && assessment.CompletionDate == nil {
		assessment.CompletionDate = utils.Ptr(time.Now())
	}
	assessment.UpdatedBy = actor.UserID

	if err := s.assessmentRepository.Update(nil, &assessment); err != nil {
		return models.Assessment{}, echo.NewHTTPError(500, "could not update assessment").WithInternal(err)
	}

	s.auditSink.Record(actor, "assessment", assessment.ID, dtos.AuditActionEdit, map[string]any{
		"status": string(assessment.Status),
	})
	return assessment, nil
}

// DeleteAssessment soft deletes the assessment together with its items,
// answers and document records. Stored document bytes are kept.
func (s *AssessmentService) DeleteAssessment(actor shared.Actor, assessment models.Assessment) error {
	err := s.assessmentRepository.Transaction(func(tx shared.DB) error {
		if err := s.checklistAnswerRepository.DeleteByAssessment(tx, assessment.ID); err != nil {
			return err
		}
		if err := s.documentRepository.DeleteByAssessment(tx, assessment.ID); err != nil {
			return err
		}
		if err := s.assessmentItemRepository.DeleteByAssessment(tx, assessment.ID); err != nil {
			return err
		}
		return s.assessmentRepository.Delete(tx, assessment.ID)
	})
	if err != nil {
		return echo.NewHTTPError(500, "could not delete assessment").WithInternal(err)
	}

	s.auditSink.Record(actor, "assessment", assessment.ID, dtos.AuditActionDelete, nil)
	return nil
}

func (s *AssessmentService) UpdateAssessmentItem(actor shared.Actor, itemID uuid.UUID, req dtos.AssessmentItemUpdateRequest) (models.AssessmentItem, error) {
	item, err := s.assessmentItemRepository.Read(itemID)
	if err != nil {
		return models.AssessmentItem{}, echo.NewHTTPError(404, "assessment item not found").WithInternal(err)
	}

	if req.AssignedDepartmentID != nil {
		department, err := s.departmentRepository.Read(*req.AssignedDepartmentID)
		if err != nil {
			return models.AssessmentItem{}, echo.NewHTTPError(404, "department not found").WithInternal(err)
		}

		assessment, err := s.assessmentRepository.Read(item.AssessmentID)
		if err != nil {
			return models.AssessmentItem{}, echo.NewHTTPError(404, "assessment not found").WithInternal(err)
		}
		if department.OrganizationID != assessment.OrganizationID {
			return models.AssessmentItem{}, echo.NewHTTPError(400, "department does not belong to the assessed organization")
		}
	}

	updated := transformer.ApplyAssessmentItemPatchRequestToModel(req, &item)
	if !updated {
		return item, nil
	}
	item.UpdatedBy = actor.UserID

	if err := s.assessmentItemRepository.Update(nil, &item); err != nil {
		return models.AssessmentItem{}, echo.NewHTTPError(500, "could not update assessment item").WithInternal(err)
	}

	s.auditSink.Record(actor, "assessmentItem", item.ID, dtos.AuditActionEdit, map[string]any{
		"status": string(item.Status),
	})
	return item, nil
}

func (s *AssessmentService) DeleteAssessmentItem(actor shared.Actor, itemID uuid.UUID) error {
	item, err := s.assessmentItemRepository.Read(itemID)
	if err != nil {
		return echo.NewHTTPError(404, "assessment item not found").WithInternal(err)
	}

	err = s.assessmentRepository.Transaction(func(tx shared.DB) error {
		if err := s.checklistAnswerRepository.DeleteByItem(tx, item.ID); err != nil {
			return err
		}
		if err := s.documentRepository.DeleteByItem(tx, item.ID); err != nil {
			return err
		}
		return s.assessmentItemRepository.Delete(tx, item.ID)
	})
	if err != nil {
		return echo.NewHTTPError(500, "could not delete assessment item").WithInternal(err)
	}

	s.auditSink.Record(actor, "assessmentItem", item.ID, dtos.AuditActionDelete, nil)
	return nil
}

// UpdateChecklistAnswer writes the answer keyed by (assessment item,
// checklist item). The write itself is a database level upsert, the
// preceding read only decides which audit verb to log.
func (s *AssessmentService) UpdateChecklistAnswer(actor shared.Actor, itemID uuid.UUID, req dtos.ChecklistAnswerUpdateRequest) (models.AssessmentItemChecklistAnswer, error) {
	item, err := s.assessmentItemRepository.Read(itemID)
	if err != nil {
		return models.AssessmentItemChecklistAnswer{}, echo.NewHTTPError(404, "assessment item not found").WithInternal(err)
	}

	checklistItem, err := s.catalogRepository.ReadChecklistItem(req.ChecklistItemID)
	if err != nil {
		return models.AssessmentItemChecklistAnswer{}, echo.NewHTTPError(404, "checklist item not found").WithInternal(err)
	}
	if checklistItem.ClauseID != item.ClauseID {
		return models.AssessmentItemChecklistAnswer{}, echo.NewHTTPError(400, "checklist item does not belong to the item's clause")
	}

	action := dtos.AuditActionAdd
	answer := models.AssessmentItemChecklistAnswer{
		AssessmentItemID: item.ID,
		ChecklistItemID:  checklistItem.ID,
		CreatedBy:        actor.UserID,
	}
	existing, err := s.checklistAnswerRepository.FindByItemAndChecklistItem(item.ID, checklistItem.ID)
	if err == nil {
		action = dtos.AuditActionEdit
		answer = existing
	}

	answer.Checked = req.Checked
	answer.Notes = req.Notes
	answer.UpdatedBy = actor.UserID

	if err := s.checklistAnswerRepository.Upsert(nil, &answer); err != nil {
		return models.AssessmentItemChecklistAnswer{}, echo.NewHTTPError(500, "could not update checklist answer").WithInternal(err)
	}

	s.auditSink.Record(actor, "checklistAnswer", answer.ID, action, map[string]any{
		"assessmentItemId": item.ID.String(),
		"checklistItemId":  checklistItem.ID.String(),
		"checked":          req.Checked,
	})
	return answer, nil
}

// StatusSummary counts the organization's assessments per status. Every
// status is present in the result, zero counts included.
func (s *AssessmentService) StatusSummary(organizationID uuid.UUID) (map[dtos.AssessmentStatus]int, error) {
	if _, err := s.organizationRepository.Read(organizationID); err != nil {
		return nil, echo.NewHTTPError(404, "organization not found").WithInternal(err)
	}

	assessments, err := s.assessmentRepository.FindByOrg(organizationID)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not read assessments").WithInternal(err)
	}

	summary := make(map[dtos.AssessmentStatus]int, len(dtos.AssessmentStatuses()))
	for _, status := range dtos.AssessmentStatuses() {
		summary[status] = 0
	}
	for _, assessment := range assessments {
		summary[assessment.Status]++
	}
	return summary, nil
}

// ComplianceSummary counts the assessment's items per compliance status.
// Every status is present in the result, zero counts included.
func (s *AssessmentService) ComplianceSummary(assessmentID uuid.UUID) (map[dtos.ComplianceStatus]int, error) {
	if _, err := s.assessmentRepository.Read(assessmentID); err != nil {
		return nil, echo.NewHTTPError(404, "assessment not found").WithInternal(err)
	}

	items, err := s.assessmentItemRepository.FindByAssessment(assessmentID)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not read assessment items").WithInternal(err)
	}

	summary := make(map[dtos.ComplianceStatus]int, len(dtos.ComplianceStatuses()))
	for _, status := range dtos.ComplianceStatuses() {
		summary[status] = 0
	}
	for _, item := range items {
		summary[item.Status]++
	}
	return summary, nil
}
