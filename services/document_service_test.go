package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/auditforge/auditforge/database/models"
	"github.com/auditforge/auditforge/dtos"
	"github.com/auditforge/auditforge/mocks"
	"github.com/auditforge/auditforge/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUploadDocument(t *testing.T) {
	actor := shared.Actor{UserID: "user-1"}
	itemID := uuid.New()
	item := models.AssessmentItem{Model: models.Model{ID: itemID}}

	upload := dtos.DocumentUpload{
		FileName:    "evidence report.pdf",
		ContentType: "application/pdf",
		Size:        12,
		Content:     bytes.NewBufferString("pdf content."),
	}

	t.Run("should fail with 404 if the assessment item does not exist", func(t *testing.T) {
		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("Read", itemID).Return(models.AssessmentItem{}, fmt.Errorf("record not found"))

		s := NewDocumentService(assessmentItemRepository, nil, nil, nil, nil)

		_, err := s.Upload(context.Background(), actor, itemID, upload)
		assertHTTPError(t, err, 404)
	})

	t.Run("should store the bytes before inserting the record", func(t *testing.T) {
		var order []string
		var storageKey string

		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("Read", itemID).Return(item, nil)

		objectStorage := mocks.NewObjectStorage(t)
		objectStorage.On("Put", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			order = append(order, "put")
			storageKey = args.Get(1).(string)
		}).Return(nil)

		documentRepository := mocks.NewDocumentRepository(t)
		documentRepository.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			order = append(order, "create")
		}).Return(nil)

		auditSink := mocks.NewAuditSink(t)
		auditSink.On("Record", actor, "document", mock.Anything, dtos.AuditActionAdd, mock.Anything)

		s := NewDocumentService(assessmentItemRepository, nil, documentRepository, objectStorage, auditSink)

		document, err := s.Upload(context.Background(), actor, itemID, upload)
		assert.Nil(t, err)
		assert.Equal(t, []string{"put", "create"}, order)

		// key is a fresh uuid carrying only the original extension
		assert.True(t, strings.HasSuffix(storageKey, ".pdf"))
		assert.NotContains(t, storageKey, "evidence")
		_, parseErr := uuid.Parse(strings.TrimSuffix(storageKey, ".pdf"))
		assert.Nil(t, parseErr)

		assert.Equal(t, storageKey, document.StorageKey)
		assert.Equal(t, "evidence report.pdf", document.FileName)
	})

	t.Run("should not insert a record when the blob store rejects the bytes", func(t *testing.T) {
		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("Read", itemID).Return(item, nil)

		objectStorage := mocks.NewObjectStorage(t)
		objectStorage.On("Put", mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("bucket unavailable"))

		documentRepository := mocks.NewDocumentRepository(t)

		s := NewDocumentService(assessmentItemRepository, nil, documentRepository, objectStorage, nil)

		_, err := s.Upload(context.Background(), actor, itemID, upload)
		assertHTTPError(t, err, 500)
		documentRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should fail with 404 if the department does not exist", func(t *testing.T) {
		departmentID := uuid.New()

		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("Read", itemID).Return(item, nil)

		departmentRepository := mocks.NewDepartmentRepository(t)
		departmentRepository.On("Read", departmentID).Return(models.OrganizationDepartment{}, fmt.Errorf("record not found"))

		s := NewDocumentService(assessmentItemRepository, departmentRepository, nil, nil, nil)

		withDepartment := upload
		withDepartment.DepartmentID = &departmentID

		_, err := s.Upload(context.Background(), actor, itemID, withDepartment)
		assertHTTPError(t, err, 404)
	})
}

func TestDownloadDocument(t *testing.T) {
	documentID := uuid.New()

	t.Run("should fail with 404 if the record does not exist", func(t *testing.T) {
		documentRepository := mocks.NewDocumentRepository(t)
		documentRepository.On("Read", documentID).Return(models.AssessmentItemDocument{}, fmt.Errorf("record not found"))

		s := NewDocumentService(nil, nil, documentRepository, nil, nil)

		_, _, err := s.Download(context.Background(), documentID)
		assertHTTPError(t, err, 404)
	})

	t.Run("should fail with 404 if the bytes are gone from the store", func(t *testing.T) {
		documentRepository := mocks.NewDocumentRepository(t)
		documentRepository.On("Read", documentID).Return(models.AssessmentItemDocument{
			Model:      models.Model{ID: documentID},
			StorageKey: "deadbeef.pdf",
		}, nil)

		objectStorage := mocks.NewObjectStorage(t)
		objectStorage.On("Get", mock.Anything, "deadbeef.pdf").Return(nil, fmt.Errorf("object does not exist"))

		s := NewDocumentService(nil, nil, documentRepository, objectStorage, nil)

		_, _, err := s.Download(context.Background(), documentID)
		assertHTTPError(t, err, 404)
	})

	t.Run("should return the record together with a reader", func(t *testing.T) {
		documentRepository := mocks.NewDocumentRepository(t)
		documentRepository.On("Read", documentID).Return(models.AssessmentItemDocument{
			Model:      models.Model{ID: documentID},
			FileName:   "evidence.pdf",
			StorageKey: "deadbeef.pdf",
		}, nil)

		objectStorage := mocks.NewObjectStorage(t)
		objectStorage.On("Get", mock.Anything, "deadbeef.pdf").Return(io.NopCloser(strings.NewReader("pdf content.")), nil)

		s := NewDocumentService(nil, nil, documentRepository, objectStorage, nil)

		document, content, err := s.Download(context.Background(), documentID)
		assert.Nil(t, err)
		assert.Equal(t, "evidence.pdf", document.FileName)

		defer content.Close()
		data, readErr := io.ReadAll(content)
		assert.Nil(t, readErr)
		assert.Equal(t, "pdf content.", string(data))
	})
}

func TestDeleteDocument(t *testing.T) {
	actor := shared.Actor{UserID: "user-1"}
	documentID := uuid.New()

	t.Run("should soft delete the record and keep the stored bytes", func(t *testing.T) {
		documentRepository := mocks.NewDocumentRepository(t)
		documentRepository.On("Read", documentID).Return(models.AssessmentItemDocument{
			Model:      models.Model{ID: documentID},
			FileName:   "evidence.pdf",
			StorageKey: "deadbeef.pdf",
		}, nil)
		documentRepository.On("Delete", mock.Anything, documentID).Return(nil)

		objectStorage := mocks.NewObjectStorage(t)

		auditSink := mocks.NewAuditSink(t)
		auditSink.On("Record", actor, "document", documentID, dtos.AuditActionDelete, mock.Anything)

		s := NewDocumentService(nil, nil, documentRepository, objectStorage, auditSink)

		err := s.Delete(context.Background(), actor, documentID)
		assert.Nil(t, err)
		objectStorage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
