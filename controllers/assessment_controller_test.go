package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
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

func newTestContext(method, body string) (shared.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	shared.SetSession(ctx, shared.NewSession("user-1"))
	return ctx, rec
}

func TestAssessmentControllerCreate(t *testing.T) {
	t.Run("should return 400 if required fields are missing", func(t *testing.T) {
		assessmentService := mocks.NewAssessmentService(t)
		controller := NewAssessmentController(assessmentService, nil)

		ctx, _ := newTestContext(http.MethodPost, `{"notes":"missing ids"}`)

		err := controller.Create(ctx)
		if err == nil {
			t.Fail()
		}
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})

	t.Run("should return 201 with the expanded assessment", func(t *testing.T) {
		orgID := uuid.New()
		frameworkID := uuid.New()
		versionID := uuid.New()

		assessmentService := mocks.NewAssessmentService(t)
		assessmentService.On("CreateAssessment", mock.Anything, mock.Anything).Return(models.Assessment{
			Model:              models.Model{ID: uuid.New()},
			OrganizationID:     orgID,
			FrameworkVersionID: versionID,
			Status:             dtos.AssessmentStatusDraft,
		}, nil)

		controller := NewAssessmentController(assessmentService, nil)

		ctx, rec := newTestContext(http.MethodPost,
			`{"organizationId":"`+orgID.String()+`","frameworkId":"`+frameworkID.String()+`","frameworkVersionId":"`+versionID.String()+`"}`)

		err := controller.Create(ctx)
		assert.Nil(t, err)
		assert.Equal(t, 201, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"draft"`)
	})

	t.Run("should pass the service error through", func(t *testing.T) {
		orgID := uuid.New()
		frameworkID := uuid.New()
		versionID := uuid.New()

		assessmentService := mocks.NewAssessmentService(t)
		assessmentService.On("CreateAssessment", mock.Anything, mock.Anything).Return(models.Assessment{},
			echo.NewHTTPError(409, "there is already an active assessment for this organization and framework version"))

		controller := NewAssessmentController(assessmentService, nil)

		ctx, _ := newTestContext(http.MethodPost,
			`{"organizationId":"`+orgID.String()+`","frameworkId":"`+frameworkID.String()+`","frameworkVersionId":"`+versionID.String()+`"}`)

		err := controller.Create(ctx)
		if err == nil {
			t.Fail()
		}
		assert.Equal(t, 409, err.(*echo.HTTPError).Code)
	})
}

func TestAssessmentControllerUpdateItem(t *testing.T) {
	t.Run("should return 400 for a non uuid item id", func(t *testing.T) {
		assessmentService := mocks.NewAssessmentService(t)
		controller := NewAssessmentController(assessmentService, nil)

		ctx, _ := newTestContext(http.MethodPatch, `{"status":"conformity"}`)
		ctx.SetParamNames("itemID")
		ctx.SetParamValues("not-a-uuid")

		err := controller.UpdateItem(ctx)
		if err == nil {
			t.Fail()
		}
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})

	t.Run("should return 400 for an unknown status value", func(t *testing.T) {
		assessmentService := mocks.NewAssessmentService(t)
		controller := NewAssessmentController(assessmentService, nil)

		ctx, _ := newTestContext(http.MethodPatch, `{"status":"fullyCompliant"}`)
		ctx.SetParamNames("itemID")
		ctx.SetParamValues(uuid.NewString())

		err := controller.UpdateItem(ctx)
		if err == nil {
			t.Fail()
		}
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})

	t.Run("should return the updated item", func(t *testing.T) {
		itemID := uuid.New()

		assessmentService := mocks.NewAssessmentService(t)
		assessmentService.On("UpdateAssessmentItem", mock.Anything, itemID, mock.Anything).Return(models.AssessmentItem{
			Model:  models.Model{ID: itemID},
			Status: dtos.ComplianceStatusConformity,
		}, nil)

		controller := NewAssessmentController(assessmentService, nil)

		ctx, rec := newTestContext(http.MethodPatch, `{"status":"conformity"}`)
		ctx.SetParamNames("itemID")
		ctx.SetParamValues(itemID.String())

		err := controller.UpdateItem(ctx)
		assert.Nil(t, err)
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"conformity"`)
	})
}

func TestAssessmentControllerUpdateChecklistAnswer(t *testing.T) {
	t.Run("should return 400 if the checklist item id is missing", func(t *testing.T) {
		assessmentService := mocks.NewAssessmentService(t)
		controller := NewAssessmentController(assessmentService, nil)

		ctx, _ := newTestContext(http.MethodPut, `{"checked":true}`)
		ctx.SetParamNames("itemID")
		ctx.SetParamValues(uuid.NewString())

		err := controller.UpdateChecklistAnswer(ctx)
		if err == nil {
			t.Fail()
		}
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})

	t.Run("should return the stored answer", func(t *testing.T) {
		itemID := uuid.New()
		checklistItemID := uuid.New()

		assessmentService := mocks.NewAssessmentService(t)
		assessmentService.On("UpdateChecklistAnswer", mock.Anything, itemID, dtos.ChecklistAnswerUpdateRequest{
			ChecklistItemID: checklistItemID,
			Checked:         true,
			Notes:           "verified",
		}).Return(models.AssessmentItemChecklistAnswer{
			AssessmentItemID: itemID,
			ChecklistItemID:  checklistItemID,
			Checked:          true,
			Notes:            "verified",
		}, nil)

		controller := NewAssessmentController(assessmentService, nil)

		ctx, rec := newTestContext(http.MethodPut,
			`{"checklistItemId":"`+checklistItemID.String()+`","checked":true,"notes":"verified"}`)
		ctx.SetParamNames("itemID")
		ctx.SetParamValues(itemID.String())

		err := controller.UpdateChecklistAnswer(ctx)
		assert.Nil(t, err)
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), `"checked":true`)
	})
}

func TestAssessmentControllerComplianceSummary(t *testing.T) {
	t.Run("should return the per status counts", func(t *testing.T) {
		assessmentID := uuid.New()

		assessmentService := mocks.NewAssessmentService(t)
		assessmentService.On("ComplianceSummary", assessmentID).Return(map[dtos.ComplianceStatus]int{
			dtos.ComplianceStatusNotAssessed:         3,
			dtos.ComplianceStatusConformity:          1,
			dtos.ComplianceStatusConformityWithNotes: 0,
			dtos.ComplianceStatusNonConformity:       0,
		}, nil)

		controller := NewAssessmentController(assessmentService, nil)

		ctx, rec := newTestContext(http.MethodGet, "")
		shared.SetAssessment(ctx, models.Assessment{Model: models.Model{ID: assessmentID}})

		err := controller.ComplianceSummary(ctx)
		assert.Nil(t, err)
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), `"notAssessed":3`)
		assert.Contains(t, rec.Body.String(), `"conformityWithNotes":0`)
	})
}
