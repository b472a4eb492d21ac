package services

import (
	"fmt"
	"testing"

	"github.com/auditforge/auditforge/database/models"
	"github.com/auditforge/auditforge/dtos"
	"github.com/auditforge/auditforge/mocks"
	"github.com/auditforge/auditforge/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	assert.Equal(t, code, httpErr.Code)
}

func activeOrg(id uuid.UUID) models.Org {
	return models.Org{
		Model:  models.Model{ID: id},
		Name:   "Acme Corp",
		Slug:   "acme-corp",
		Status: dtos.OrgStatusActive,
	}
}

func catalogFixture() (models.FrameworkVersionCategory, models.FrameworkVersionCategory, []models.Clause) {
	clause1 := models.Clause{Model: models.Model{ID: uuid.New()}, Code: "AC-1", Title: "Access control policy",
		ChecklistItems: []models.ChecklistItem{
			{Model: models.Model{ID: uuid.New()}, Text: "Policy documented"},
			{Model: models.Model{ID: uuid.New()}, Text: "Policy approved"},
		}}
	clause2 := models.Clause{Model: models.Model{ID: uuid.New()}, Code: "AC-2", Title: "Account management",
		ChecklistItems: []models.ChecklistItem{
			{Model: models.Model{ID: uuid.New()}, Text: "Joiner process exists"},
		}}
	clause3 := models.Clause{Model: models.Model{ID: uuid.New()}, Code: "OP-1", Title: "Change management"}

	categoryLink1 := models.FrameworkVersionCategory{Model: models.Model{ID: uuid.New()}}
	categoryLink2 := models.FrameworkVersionCategory{Model: models.Model{ID: uuid.New()}}

	return categoryLink1, categoryLink2, []models.Clause{clause1, clause2, clause3}
}

func TestCreateAssessment(t *testing.T) {
	actor := shared.Actor{UserID: "user-1"}

	orgID := uuid.New()
	frameworkID := uuid.New()
	versionID := uuid.New()
	req := dtos.AssessmentCreateRequest{
		OrganizationID:     orgID,
		FrameworkID:        frameworkID,
		FrameworkVersionID: versionID,
	}

	t.Run("should fail with 404 if the organization does not exist", func(t *testing.T) {
		organizationRepository := mocks.NewOrganizationRepository(t)
		organizationRepository.On("Read", orgID).Return(models.Org{}, fmt.Errorf("record not found"))

		s := NewAssessmentService(organizationRepository, nil, nil, nil, nil, nil, nil, nil, nil)

		_, err := s.CreateAssessment(actor, req)
		assertHTTPError(t, err, 404)
	})

	t.Run("should treat a suspended organization like a missing one", func(t *testing.T) {
		organizationRepository := mocks.NewOrganizationRepository(t)
		org := activeOrg(orgID)
		org.Status = dtos.OrgStatusSuspended
		organizationRepository.On("Read", orgID).Return(org, nil)

		s := NewAssessmentService(organizationRepository, nil, nil, nil, nil, nil, nil, nil, nil)

		_, err := s.CreateAssessment(actor, req)
		assertHTTPError(t, err, 404)
	})

	t.Run("should fail with 400 if the version belongs to another framework", func(t *testing.T) {
		organizationRepository := mocks.NewOrganizationRepository(t)
		organizationRepository.On("Read", orgID).Return(activeOrg(orgID), nil)

		frameworkRepository := mocks.NewFrameworkRepository(t)
		frameworkRepository.On("Read", frameworkID).Return(models.Framework{Model: models.Model{ID: frameworkID}}, nil)
		frameworkRepository.On("ReadVersion", versionID).Return(models.FrameworkVersion{
			Model:       models.Model{ID: versionID},
			FrameworkID: uuid.New(),
		}, nil)

		s := NewAssessmentService(organizationRepository, nil, frameworkRepository, nil, nil, nil, nil, nil, nil)

		_, err := s.CreateAssessment(actor, req)
		assertHTTPError(t, err, 400)
	})

	t.Run("should fail with 409 if an active assessment already exists", func(t *testing.T) {
		organizationRepository := mocks.NewOrganizationRepository(t)
		organizationRepository.On("Read", orgID).Return(activeOrg(orgID), nil)

		frameworkRepository := mocks.NewFrameworkRepository(t)
		frameworkRepository.On("Read", frameworkID).Return(models.Framework{Model: models.Model{ID: frameworkID}}, nil)
		frameworkRepository.On("ReadVersion", versionID).Return(models.FrameworkVersion{
			Model:       models.Model{ID: versionID},
			FrameworkID: frameworkID,
		}, nil)

		assessmentRepository := mocks.NewAssessmentRepository(t)
		assessmentRepository.On("FindActive", orgID, versionID).Return([]models.Assessment{
			{Status: dtos.AssessmentStatusInProgress},
		}, nil)

		s := NewAssessmentService(organizationRepository, nil, frameworkRepository, nil, assessmentRepository, nil, nil, nil, nil)

		_, err := s.CreateAssessment(actor, req)
		assertHTTPError(t, err, 409)
	})

	t.Run("should expand one item per clause and one answer per checklist item, deduplicating shared clauses", func(t *testing.T) {
		organizationRepository := mocks.NewOrganizationRepository(t)
		organizationRepository.On("Read", orgID).Return(activeOrg(orgID), nil)

		frameworkRepository := mocks.NewFrameworkRepository(t)
		frameworkRepository.On("Read", frameworkID).Return(models.Framework{Model: models.Model{ID: frameworkID}}, nil)
		frameworkRepository.On("ReadVersion", versionID).Return(models.FrameworkVersion{
			Model:       models.Model{ID: versionID},
			FrameworkID: frameworkID,
		}, nil)

		categoryLink1, categoryLink2, clauses := catalogFixture()
		clause1, clause2, clause3 := clauses[0], clauses[1], clauses[2]

		catalogRepository := mocks.NewCatalogRepository(t)
		catalogRepository.On("CategoryLinks", versionID).Return([]models.FrameworkVersionCategory{categoryLink1, categoryLink2}, nil)
		// clause2 appears under both categories but must only expand once
		catalogRepository.On("ClauseLinks", categoryLink1.ID).Return([]models.CategoryClause{
			{Clause: &clause1}, {Clause: &clause2},
		}, nil)
		catalogRepository.On("ClauseLinks", categoryLink2.ID).Return([]models.CategoryClause{
			{Clause: &clause2}, {Clause: &clause3},
		}, nil)

		assessmentRepository := mocks.NewAssessmentRepository(t)
		assessmentRepository.On("FindActive", orgID, versionID).Return([]models.Assessment{}, nil)
		assessmentRepository.On("Transaction", mock.Anything).Return(func(f func(shared.DB) error) error {
			return f(nil)
		})
		assessmentRepository.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			assessment := args.Get(1).(*models.Assessment)
			assessment.ID = uuid.New()
		}).Return(nil)
		assessmentRepository.On("ReadWithItems", mock.Anything).Return(models.Assessment{}, nil)

		var createdItems []models.AssessmentItem
		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("CreateBatch", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			createdItems = args.Get(1).([]models.AssessmentItem)
		}).Return(nil)

		var createdAnswers []models.AssessmentItemChecklistAnswer
		checklistAnswerRepository := mocks.NewChecklistAnswerRepository(t)
		checklistAnswerRepository.On("CreateBatch", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			createdAnswers = args.Get(1).([]models.AssessmentItemChecklistAnswer)
		}).Return(nil)

		auditSink := mocks.NewAuditSink(t)
		auditSink.On("Record", actor, "assessment", mock.Anything, dtos.AuditActionAdd, mock.Anything)

		s := NewAssessmentService(organizationRepository, nil, frameworkRepository, catalogRepository,
			assessmentRepository, assessmentItemRepository, checklistAnswerRepository, nil, auditSink)

		_, err := s.CreateAssessment(actor, req)
		assert.Nil(t, err)

		assert.Len(t, createdItems, 3)
		for _, item := range createdItems {
			assert.NotEqual(t, uuid.Nil, item.ID)
			assert.Equal(t, dtos.ComplianceStatusNotAssessed, item.Status)
		}

		// clause1 has two checklist items, clause2 one, clause3 none
		assert.Len(t, createdAnswers, 3)
		for _, answer := range createdAnswers {
			assert.False(t, answer.Checked)
			assert.NotEqual(t, uuid.Nil, answer.AssessmentItemID)
		}

		expandedClauses := map[uuid.UUID]bool{}
		for _, item := range createdItems {
			expandedClauses[item.ClauseID] = true
		}
		assert.True(t, expandedClauses[clause1.ID])
		assert.True(t, expandedClauses[clause2.ID])
		assert.True(t, expandedClauses[clause3.ID])
	})

	t.Run("should not record an audit event when the expansion fails", func(t *testing.T) {
		organizationRepository := mocks.NewOrganizationRepository(t)
		organizationRepository.On("Read", orgID).Return(activeOrg(orgID), nil)

		frameworkRepository := mocks.NewFrameworkRepository(t)
		frameworkRepository.On("Read", frameworkID).Return(models.Framework{Model: models.Model{ID: frameworkID}}, nil)
		frameworkRepository.On("ReadVersion", versionID).Return(models.FrameworkVersion{
			Model:       models.Model{ID: versionID},
			FrameworkID: frameworkID,
		}, nil)

		categoryLink1, _, clauses := catalogFixture()
		clause1 := clauses[0]

		catalogRepository := mocks.NewCatalogRepository(t)
		catalogRepository.On("CategoryLinks", versionID).Return([]models.FrameworkVersionCategory{categoryLink1}, nil)
		catalogRepository.On("ClauseLinks", categoryLink1.ID).Return([]models.CategoryClause{{Clause: &clause1}}, nil)

		assessmentRepository := mocks.NewAssessmentRepository(t)
		assessmentRepository.On("FindActive", orgID, versionID).Return([]models.Assessment{}, nil)
		assessmentRepository.On("Transaction", mock.Anything).Return(func(f func(shared.DB) error) error {
			return f(nil)
		})
		assessmentRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)

		checklistAnswerRepository := mocks.NewChecklistAnswerRepository(t)
		checklistAnswerRepository.On("CreateBatch", mock.Anything, mock.Anything).Return(fmt.Errorf("disk full"))

		auditSink := mocks.NewAuditSink(t)

		s := NewAssessmentService(organizationRepository, nil, frameworkRepository, catalogRepository,
			assessmentRepository, assessmentItemRepository, checklistAnswerRepository, nil, auditSink)

		_, err := s.CreateAssessment(actor, req)
		assertHTTPError(t, err, 500)
		auditSink.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateAssessmentItem(t *testing.T) {
	actor := shared.Actor{UserID: "user-1"}
	itemID := uuid.New()

	t.Run("should fail with 400 if the department belongs to another organization", func(t *testing.T) {
		assessmentID := uuid.New()
		departmentID := uuid.New()

		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("Read", itemID).Return(models.AssessmentItem{
			Model:        models.Model{ID: itemID},
			AssessmentID: assessmentID,
		}, nil)

		departmentRepository := mocks.NewDepartmentRepository(t)
		departmentRepository.On("Read", departmentID).Return(models.OrganizationDepartment{
			Model:          models.Model{ID: departmentID},
			OrganizationID: uuid.New(),
		}, nil)

		assessmentRepository := mocks.NewAssessmentRepository(t)
		assessmentRepository.On("Read", assessmentID).Return(models.Assessment{
			Model:          models.Model{ID: assessmentID},
			OrganizationID: uuid.New(),
		}, nil)

		s := NewAssessmentService(nil, departmentRepository, nil, nil, assessmentRepository, assessmentItemRepository, nil, nil, nil)

		_, err := s.UpdateAssessmentItem(actor, itemID, dtos.AssessmentItemUpdateRequest{
			AssignedDepartmentID: &departmentID,
		})
		assertHTTPError(t, err, 400)
	})

	t.Run("should update the status and record an edit", func(t *testing.T) {
		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("Read", itemID).Return(models.AssessmentItem{
			Model:  models.Model{ID: itemID},
			Status: dtos.ComplianceStatusNotAssessed,
		}, nil)
		assessmentItemRepository.On("Update", mock.Anything, mock.Anything).Return(nil)

		auditSink := mocks.NewAuditSink(t)
		auditSink.On("Record", actor, "assessmentItem", itemID, dtos.AuditActionEdit, mock.Anything)

		s := NewAssessmentService(nil, nil, nil, nil, nil, assessmentItemRepository, nil, nil, auditSink)

		status := dtos.ComplianceStatusConformity
		item, err := s.UpdateAssessmentItem(actor, itemID, dtos.AssessmentItemUpdateRequest{Status: &status})
		assert.Nil(t, err)
		assert.Equal(t, dtos.ComplianceStatusConformity, item.Status)
		assert.Equal(t, "user-1", item.UpdatedBy)
	})
}

func TestUpdateChecklistAnswer(t *testing.T) {
	actor := shared.Actor{UserID: "user-1"}
	itemID := uuid.New()
	clauseID := uuid.New()
	checklistItemID := uuid.New()

	item := models.AssessmentItem{
		Model:    models.Model{ID: itemID},
		ClauseID: clauseID,
	}
	checklistItem := models.ChecklistItem{
		Model:    models.Model{ID: checklistItemID},
		ClauseID: clauseID,
	}
	req := dtos.ChecklistAnswerUpdateRequest{
		ChecklistItemID: checklistItemID,
		Checked:         true,
		Notes:           "verified on site",
	}

	t.Run("should fail with 400 if the checklist item belongs to another clause", func(t *testing.T) {
		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("Read", itemID).Return(item, nil)

		catalogRepository := mocks.NewCatalogRepository(t)
		catalogRepository.On("ReadChecklistItem", checklistItemID).Return(models.ChecklistItem{
			Model:    models.Model{ID: checklistItemID},
			ClauseID: uuid.New(),
		}, nil)

		s := NewAssessmentService(nil, nil, nil, catalogRepository, nil, assessmentItemRepository, nil, nil, nil)

		_, err := s.UpdateChecklistAnswer(actor, itemID, req)
		assertHTTPError(t, err, 400)
	})

	t.Run("should record ADD when no answer exists yet", func(t *testing.T) {
		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("Read", itemID).Return(item, nil)

		catalogRepository := mocks.NewCatalogRepository(t)
		catalogRepository.On("ReadChecklistItem", checklistItemID).Return(checklistItem, nil)

		checklistAnswerRepository := mocks.NewChecklistAnswerRepository(t)
		checklistAnswerRepository.On("FindByItemAndChecklistItem", itemID, checklistItemID).
			Return(models.AssessmentItemChecklistAnswer{}, fmt.Errorf("record not found"))
		checklistAnswerRepository.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		auditSink := mocks.NewAuditSink(t)
		auditSink.On("Record", actor, "checklistAnswer", mock.Anything, dtos.AuditActionAdd, mock.Anything)

		s := NewAssessmentService(nil, nil, nil, catalogRepository, nil, assessmentItemRepository, checklistAnswerRepository, nil, auditSink)

		answer, err := s.UpdateChecklistAnswer(actor, itemID, req)
		assert.Nil(t, err)
		assert.True(t, answer.Checked)
		assert.Equal(t, "verified on site", answer.Notes)
	})

	t.Run("should record EDIT and reuse the row when the answer exists", func(t *testing.T) {
		existingID := uuid.New()

		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("Read", itemID).Return(item, nil)

		catalogRepository := mocks.NewCatalogRepository(t)
		catalogRepository.On("ReadChecklistItem", checklistItemID).Return(checklistItem, nil)

		checklistAnswerRepository := mocks.NewChecklistAnswerRepository(t)
		checklistAnswerRepository.On("FindByItemAndChecklistItem", itemID, checklistItemID).
			Return(models.AssessmentItemChecklistAnswer{
				Model:            models.Model{ID: existingID},
				AssessmentItemID: itemID,
				ChecklistItemID:  checklistItemID,
				Checked:          false,
			}, nil)
		checklistAnswerRepository.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		auditSink := mocks.NewAuditSink(t)
		auditSink.On("Record", actor, "checklistAnswer", existingID, dtos.AuditActionEdit, mock.Anything)

		s := NewAssessmentService(nil, nil, nil, catalogRepository, nil, assessmentItemRepository, checklistAnswerRepository, nil, auditSink)

		answer, err := s.UpdateChecklistAnswer(actor, itemID, req)
		assert.Nil(t, err)
		assert.Equal(t, existingID, answer.ID)
		assert.True(t, answer.Checked)
	})
}

func TestStatusSummary(t *testing.T) {
	orgID := uuid.New()

	t.Run("should contain every status even at zero count", func(t *testing.T) {
		organizationRepository := mocks.NewOrganizationRepository(t)
		organizationRepository.On("Read", orgID).Return(activeOrg(orgID), nil)

		assessmentRepository := mocks.NewAssessmentRepository(t)
		assessmentRepository.On("FindByOrg", orgID).Return([]models.Assessment{
			{Status: dtos.AssessmentStatusDraft},
			{Status: dtos.AssessmentStatusDraft},
			{Status: dtos.AssessmentStatusCompleted},
		}, nil)

		s := NewAssessmentService(organizationRepository, nil, nil, nil, assessmentRepository, nil, nil, nil, nil)

		summary, err := s.StatusSummary(orgID)
		assert.Nil(t, err)
		assert.Len(t, summary, 4)
		assert.Equal(t, 2, summary[dtos.AssessmentStatusDraft])
		assert.Equal(t, 0, summary[dtos.AssessmentStatusInProgress])
		assert.Equal(t, 1, summary[dtos.AssessmentStatusCompleted])
		assert.Equal(t, 0, summary[dtos.AssessmentStatusCancelled])
	})
}

func TestComplianceSummary(t *testing.T) {
	assessmentID := uuid.New()

	t.Run("should contain every compliance status even at zero count", func(t *testing.T) {
		assessmentRepository := mocks.NewAssessmentRepository(t)
		assessmentRepository.On("Read", assessmentID).Return(models.Assessment{Model: models.Model{ID: assessmentID}}, nil)

		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("FindByAssessment", assessmentID).Return([]models.AssessmentItem{
			{Status: dtos.ComplianceStatusConformity},
			{Status: dtos.ComplianceStatusNonConformity},
			{Status: dtos.ComplianceStatusNonConformity},
		}, nil)

		s := NewAssessmentService(nil, nil, nil, nil, assessmentRepository, assessmentItemRepository, nil, nil, nil)

		summary, err := s.ComplianceSummary(assessmentID)
		assert.Nil(t, err)
		assert.Len(t, summary, 4)
		assert.Equal(t, 1, summary[dtos.ComplianceStatusConformity])
		assert.Equal(t, 2, summary[dtos.ComplianceStatusNonConformity])
		assert.Equal(t, 0, summary[dtos.ComplianceStatusConformityWithNotes])
		assert.Equal(t, 0, summary[dtos.ComplianceStatusNotAssessed])
	})
}

func TestDeleteAssessment(t *testing.T) {
	actor := shared.Actor{UserID: "user-1"}
	assessmentID := uuid.New()
	assessment := models.Assessment{Model: models.Model{ID: assessmentID}}

	t.Run("should delete answers and documents before the items", func(t *testing.T) {
		var order []string

		assessmentRepository := mocks.NewAssessmentRepository(t)
		assessmentRepository.On("Transaction", mock.Anything).Return(func(f func(shared.DB) error) error {
			return f(nil)
		})
		assessmentRepository.On("Delete", mock.Anything, assessmentID).Run(func(mock.Arguments) {
			order = append(order, "assessment")
		}).Return(nil)

		checklistAnswerRepository := mocks.NewChecklistAnswerRepository(t)
		checklistAnswerRepository.On("DeleteByAssessment", mock.Anything, assessmentID).Run(func(mock.Arguments) {
			order = append(order, "answers")
		}).Return(nil)

		documentRepository := mocks.NewDocumentRepository(t)
		documentRepository.On("DeleteByAssessment", mock.Anything, assessmentID).Run(func(mock.Arguments) {
			order = append(order, "documents")
		}).Return(nil)

		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("DeleteByAssessment", mock.Anything, assessmentID).Run(func(mock.Arguments) {
			order = append(order, "items")
		}).Return(nil)

		auditSink := mocks.NewAuditSink(t)
		auditSink.On("Record", actor, "assessment", assessmentID, dtos.AuditActionDelete, mock.Anything)

		s := NewAssessmentService(nil, nil, nil, nil, assessmentRepository, assessmentItemRepository, checklistAnswerRepository, documentRepository, auditSink)

		err := s.DeleteAssessment(actor, assessment)
		assert.Nil(t, err)
		assert.Equal(t, []string{"answers", "documents", "items", "assessment"}, order)
	})
}
