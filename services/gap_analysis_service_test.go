package services

import (
	"fmt"
	"testing"

	"github.com/auditforge/auditforge/database/models"
	"github.com/auditforge/auditforge/dtos"
	"github.com/auditforge/auditforge/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAggregate(t *testing.T) {
	t.Run("should return zero percentage for an empty bucket", func(t *testing.T) {
		counts := aggregate([]models.AssessmentItem{})
		assert.Equal(t, 0, counts.TotalItems)
		assert.True(t, counts.ConformityPercentage.Equal(decimal.Zero))
	})

	t.Run("should compute the share of fully conforming items", func(t *testing.T) {
		counts := aggregate([]models.AssessmentItem{
			{Status: dtos.ComplianceStatusConformity},
			{Status: dtos.ComplianceStatusNonConformity},
		})
		assert.Equal(t, 2, counts.TotalItems)
		assert.Equal(t, 1, counts.Conforming)
		assert.Equal(t, 1, counts.NonConforming)
		assert.True(t, counts.ConformityPercentage.Equal(decimal.NewFromInt(50)))
	})

	t.Run("should count conformity with notes as partially conforming only", func(t *testing.T) {
		counts := aggregate([]models.AssessmentItem{
			{Status: dtos.ComplianceStatusConformityWithNotes},
			{Status: dtos.ComplianceStatusConformityWithNotes},
			{Status: dtos.ComplianceStatusNotAssessed},
		})
		assert.Equal(t, 2, counts.PartiallyConforming)
		assert.Equal(t, 0, counts.Conforming)
		assert.Equal(t, 1, counts.NotAssessed)
		assert.True(t, counts.ConformityPercentage.Equal(decimal.Zero))
	})

	t.Run("should not truncate uneven shares", func(t *testing.T) {
		counts := aggregate([]models.AssessmentItem{
			{Status: dtos.ComplianceStatusConformity},
			{Status: dtos.ComplianceStatusNonConformity},
			{Status: dtos.ComplianceStatusNotAssessed},
		})
		// 100/3 rounded to two decimals
		assert.True(t, counts.ConformityPercentage.Equal(decimal.RequireFromString("33.33")))
	})
}

func TestGenerate(t *testing.T) {
	assessmentID := uuid.New()
	orgID := uuid.New()
	versionID := uuid.New()
	frameworkID := uuid.New()
	assessment := models.Assessment{
		Model:              models.Model{ID: assessmentID},
		OrganizationID:     orgID,
		FrameworkVersionID: versionID,
	}

	t.Run("should carry the resolved names and breakdowns", func(t *testing.T) {
		departmentID := uuid.New()
		clauseID := uuid.New()

		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("FindByAssessment", assessmentID).Return([]models.AssessmentItem{
			{Model: models.Model{ID: uuid.New()}, ClauseID: clauseID, Status: dtos.ComplianceStatusConformity, AssignedDepartmentID: &departmentID},
		}, nil)

		organizationRepository := mocks.NewOrganizationRepository(t)
		organizationRepository.On("Read", orgID).Return(models.Org{Model: models.Model{ID: orgID}, Name: "Acme Corp"}, nil)

		frameworkRepository := mocks.NewFrameworkRepository(t)
		frameworkRepository.On("ReadVersion", versionID).Return(models.FrameworkVersion{
			Model:       models.Model{ID: versionID},
			FrameworkID: frameworkID,
			Name:        "2026",
		}, nil)
		frameworkRepository.On("Read", frameworkID).Return(models.Framework{
			Model: models.Model{ID: frameworkID},
			Name:  "Demo Security Framework",
		}, nil)

		departmentRepository := mocks.NewDepartmentRepository(t)
		departmentRepository.On("Read", departmentID).Return(models.OrganizationDepartment{
			Model: models.Model{ID: departmentID},
			Name:  "IT Operations",
		}, nil)

		catalogRepository := mocks.NewCatalogRepository(t)
		catalogRepository.On("CategoriesOfClauses", versionID, []uuid.UUID{clauseID}).Return([]models.ClauseCategory{
			{ClauseID: clauseID, CategoryID: uuid.New(), CategoryName: "Access Control"},
		}, nil)

		s := NewGapAnalysisService(organizationRepository, departmentRepository, frameworkRepository, catalogRepository, assessmentItemRepository)

		result, err := s.Generate(assessment)
		assert.Nil(t, err)
		assert.Equal(t, "Acme Corp", result.OrganizationName)
		assert.Equal(t, "Demo Security Framework", result.FrameworkName)
		assert.Equal(t, "2026", result.FrameworkVersionName)
		assert.False(t, result.GeneratedAt.IsZero())
		assert.Equal(t, 1, result.TotalItems)

		if assert.Len(t, result.Departments, 1) {
			assert.Equal(t, "IT Operations", result.Departments[0].DepartmentName)
			assert.Equal(t, 1, result.Departments[0].TotalItems)
		}
		if assert.Len(t, result.Categories, 1) {
			assert.Equal(t, "Access Control", result.Categories[0].CategoryName)
		}
	})

	t.Run("should not fail when the name lookups fail", func(t *testing.T) {
		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("FindByAssessment", assessmentID).Return([]models.AssessmentItem{}, nil)

		organizationRepository := mocks.NewOrganizationRepository(t)
		organizationRepository.On("Read", orgID).Return(models.Org{}, fmt.Errorf("record not found"))

		frameworkRepository := mocks.NewFrameworkRepository(t)
		frameworkRepository.On("ReadVersion", versionID).Return(models.FrameworkVersion{}, fmt.Errorf("record not found"))

		s := NewGapAnalysisService(organizationRepository, nil, frameworkRepository, nil, assessmentItemRepository)

		result, err := s.Generate(assessment)
		assert.Nil(t, err)
		assert.Empty(t, result.OrganizationName)
		assert.Empty(t, result.FrameworkName)
		assert.Empty(t, result.FrameworkVersionName)
		assert.Equal(t, 0, result.TotalItems)
		assert.Empty(t, result.Departments)
		assert.Empty(t, result.Categories)
	})

	t.Run("should skip unassigned items in the department breakdown and fall back on unresolvable names", func(t *testing.T) {
		departmentID := uuid.New()
		clauseID := uuid.New()

		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("FindByAssessment", assessmentID).Return([]models.AssessmentItem{
			{Model: models.Model{ID: uuid.New()}, ClauseID: clauseID, Status: dtos.ComplianceStatusConformity, AssignedDepartmentID: &departmentID},
			{Model: models.Model{ID: uuid.New()}, ClauseID: clauseID, Status: dtos.ComplianceStatusNonConformity},
		}, nil)

		organizationRepository := mocks.NewOrganizationRepository(t)
		organizationRepository.On("Read", orgID).Return(models.Org{Name: "Acme Corp"}, nil)

		frameworkRepository := mocks.NewFrameworkRepository(t)
		frameworkRepository.On("ReadVersion", versionID).Return(models.FrameworkVersion{}, fmt.Errorf("record not found"))

		departmentRepository := mocks.NewDepartmentRepository(t)
		departmentRepository.On("Read", departmentID).Return(models.OrganizationDepartment{}, fmt.Errorf("record not found"))

		catalogRepository := mocks.NewCatalogRepository(t)
		catalogRepository.On("CategoriesOfClauses", versionID, mock.Anything).Return([]models.ClauseCategory{}, nil)

		s := NewGapAnalysisService(organizationRepository, departmentRepository, frameworkRepository, catalogRepository, assessmentItemRepository)

		result, err := s.Generate(assessment)
		assert.Nil(t, err)
		assert.Equal(t, 2, result.TotalItems)
		if assert.Len(t, result.Departments, 1) {
			assert.Equal(t, unknownDepartmentName, result.Departments[0].DepartmentName)
			assert.Equal(t, 1, result.Departments[0].TotalItems)
		}
	})
}

func TestByDepartment(t *testing.T) {
	assessmentID := uuid.New()
	assessment := models.Assessment{Model: models.Model{ID: assessmentID}}
	departmentID := uuid.New()

	t.Run("should fail with 404 when no items are assigned to the department", func(t *testing.T) {
		otherDepartment := uuid.New()

		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("FindByAssessment", assessmentID).Return([]models.AssessmentItem{
			{Status: dtos.ComplianceStatusConformity, AssignedDepartmentID: &otherDepartment},
			{Status: dtos.ComplianceStatusConformity},
		}, nil)

		s := NewGapAnalysisService(nil, nil, nil, nil, assessmentItemRepository)

		_, err := s.ByDepartment(assessment, departmentID)
		assertHTTPError(t, err, 404)
	})

	t.Run("should aggregate only the department's items", func(t *testing.T) {
		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("FindByAssessment", assessmentID).Return([]models.AssessmentItem{
			{Status: dtos.ComplianceStatusConformity, AssignedDepartmentID: &departmentID},
			{Status: dtos.ComplianceStatusNonConformity, AssignedDepartmentID: &departmentID},
			{Status: dtos.ComplianceStatusNonConformity},
		}, nil)

		departmentRepository := mocks.NewDepartmentRepository(t)
		departmentRepository.On("Read", departmentID).Return(models.OrganizationDepartment{
			Model: models.Model{ID: departmentID},
			Name:  "IT Operations",
		}, nil)

		s := NewGapAnalysisService(nil, departmentRepository, nil, nil, assessmentItemRepository)

		gap, err := s.ByDepartment(assessment, departmentID)
		assert.Nil(t, err)
		assert.Equal(t, "IT Operations", gap.DepartmentName)
		assert.Equal(t, 2, gap.TotalItems)
		assert.Equal(t, 1, gap.Conforming)
		assert.True(t, gap.ConformityPercentage.Equal(decimal.NewFromInt(50)))
	})
}

func TestByCategory(t *testing.T) {
	assessmentID := uuid.New()
	versionID := uuid.New()
	assessment := models.Assessment{
		Model:              models.Model{ID: assessmentID},
		FrameworkVersionID: versionID,
	}

	t.Run("should count a shared clause once per category", func(t *testing.T) {
		clause1 := uuid.New()
		clause2 := uuid.New()
		category1 := uuid.New()
		category2 := uuid.New()

		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("FindByAssessment", assessmentID).Return([]models.AssessmentItem{
			{Model: models.Model{ID: uuid.New()}, ClauseID: clause1, Status: dtos.ComplianceStatusConformity},
			{Model: models.Model{ID: uuid.New()}, ClauseID: clause2, Status: dtos.ComplianceStatusNonConformity},
		}, nil)

		catalogRepository := mocks.NewCatalogRepository(t)
		// clause2 sits in both categories
		catalogRepository.On("CategoriesOfClauses", versionID, mock.Anything).Return([]models.ClauseCategory{
			{ClauseID: clause1, CategoryID: category1, CategoryName: "Access Control"},
			{ClauseID: clause2, CategoryID: category1, CategoryName: "Access Control"},
			{ClauseID: clause2, CategoryID: category2, CategoryName: "Operations"},
		}, nil)

		s := NewGapAnalysisService(nil, nil, nil, catalogRepository, assessmentItemRepository)

		categories, err := s.ByCategory(assessment)
		assert.Nil(t, err)
		if assert.Len(t, categories, 2) {
			// sorted by name
			assert.Equal(t, "Access Control", categories[0].CategoryName)
			assert.Equal(t, 2, categories[0].TotalItems)
			assert.Equal(t, "Operations", categories[1].CategoryName)
			assert.Equal(t, 1, categories[1].TotalItems)
		}
	})

	t.Run("should return an empty breakdown for an empty assessment", func(t *testing.T) {
		assessmentItemRepository := mocks.NewAssessmentItemRepository(t)
		assessmentItemRepository.On("FindByAssessment", assessmentID).Return([]models.AssessmentItem{}, nil)

		s := NewGapAnalysisService(nil, nil, nil, nil, assessmentItemRepository)

		categories, err := s.ByCategory(assessment)
		assert.Nil(t, err)
		assert.Empty(t, categories)
	})
}
