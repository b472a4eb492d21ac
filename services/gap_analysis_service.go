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
	"sort"
	"time"

	"github.com/auditforge/auditforge/database/models"
	"github.com/auditforge/auditforge/dtos"
	"github.com/auditforge/auditforge/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// unknownDepartmentName is used when a department referenced by an item can
// not be resolved anymore. The report still gets generated.
const unknownDepartmentName = "Unknown department"

type GapAnalysisService struct {
	organizationRepository   shared.OrganizationRepository
	departmentRepository     shared.DepartmentRepository
	frameworkRepository      shared.FrameworkRepository
	catalogRepository        shared.CatalogRepository
	assessmentItemRepository shared.AssessmentItemRepository
}

func NewGapAnalysisService(
	organizationRepository shared.OrganizationRepository,
	departmentRepository shared.DepartmentRepository,
	frameworkRepository shared.FrameworkRepository,
	catalogRepository shared.CatalogRepository,
	assessmentItemRepository shared.AssessmentItemRepository,
) *GapAnalysisService {
	return &GapAnalysisService{
		organizationRepository:   organizationRepository,
		departmentRepository:     departmentRepository,
		frameworkRepository:      frameworkRepository,
		catalogRepository:        catalogRepository,
		assessmentItemRepository: assessmentItemRepository,
	}
}

// aggregate counts the items by compliance status. The percentage is the
// share of fully conforming items, zero for an empty bucket.
func aggregate(items []models.AssessmentItem) dtos.GapCounts {
	counts := dtos.GapCounts{
		TotalItems:           len(items),
		ConformityPercentage: decimal.Zero,
	}

	for _, item := range items {
		switch item.Status {
		case dtos.ComplianceStatusConformity:
			counts.Conforming++
		case dtos.ComplianceStatusConformityWithNotes:
			counts.PartiallyConforming++
		case dtos.ComplianceStatusNonConformity:
			counts.NonConforming++
		default:
			counts.NotAssessed++
		}
	}

	if counts.TotalItems > 0 {
		counts.ConformityPercentage = decimal.NewFromInt(int64(counts.Conforming) * 100).
			DivRound(decimal.NewFromInt(int64(counts.TotalItems)), 2)
	}

	return counts
}

// Generate computes the full gap analysis of the assessment: overall counts
// plus the department and category breakdowns.
func (s *GapAnalysisService) Generate(assessment models.Assessment) (dtos.GapAnalysisResult, error) {
	items, err := s.assessmentItemRepository.FindByAssessment(assessment.ID)
	if err != nil {
		return dtos.GapAnalysisResult{}, echo.NewHTTPError(500, "could not read assessment items").WithInternal(err)
	}

	result := dtos.GapAnalysisResult{
		AssessmentID: assessment.ID,
		GeneratedAt:  time.Now(),
		GapCounts:    aggregate(items),
	}

	// the names are decoration, a missing lookup never fails the report.
	if org, err := s.organizationRepository.Read(assessment.OrganizationID); err == nil {
		result.OrganizationName = org.Name
	}
	if version, err := s.frameworkRepository.ReadVersion(assessment.FrameworkVersionID); err == nil {
		result.FrameworkVersionName = version.Name
		if framework, err := s.frameworkRepository.Read(version.FrameworkID); err == nil {
			result.FrameworkName = framework.Name
		}
	}

	result.Departments = s.departmentBreakdown(items)

	categories, err := s.categoryBreakdown(assessment.FrameworkVersionID, items)
	if err != nil {
		return dtos.GapAnalysisResult{}, err
	}
	result.Categories = categories

	return result, nil
}

// ByDepartment restricts the aggregation to the items assigned to one
// department. An empty subset is a not found condition, not a zero valued
// report.
func (s *GapAnalysisService) ByDepartment(assessment models.Assessment, departmentID uuid.UUID) (dtos.DepartmentGap, error) {
	items, err := s.assessmentItemRepository.FindByAssessment(assessment.ID)
	if err != nil {
		return dtos.DepartmentGap{}, echo.NewHTTPError(500, "could not read assessment items").WithInternal(err)
	}

	subset := make([]models.AssessmentItem, 0)
	for _, item := range items {
		if item.AssignedDepartmentID != nil && *item.AssignedDepartmentID == departmentID {
			subset = append(subset, item)
		}
	}
	if len(subset) == 0 {
		return dtos.DepartmentGap{}, echo.NewHTTPError(404, "no assessment items assigned to this department")
	}

	return dtos.DepartmentGap{
		DepartmentID:   departmentID,
		DepartmentName: s.departmentName(departmentID),
		GapCounts:      aggregate(subset),
	}, nil
}

// ByCategory aggregates per category of the assessed framework version. A
// clause appearing under several categories counts once per category, so
// the category totals may exceed the overall item count.
func (s *GapAnalysisService) ByCategory(assessment models.Assessment) ([]dtos.CategoryGap, error) {
	items, err := s.assessmentItemRepository.FindByAssessment(assessment.ID)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not read assessment items").WithInternal(err)
	}

	return s.categoryBreakdown(assessment.FrameworkVersionID, items)
}

func (s *GapAnalysisService) departmentBreakdown(items []models.AssessmentItem) []dtos.DepartmentGap {
	grouped := make(map[uuid.UUID][]models.AssessmentItem)
	for _, item := range items {
		if item.AssignedDepartmentID == nil {
			continue
		}
		grouped[*item.AssignedDepartmentID] = append(grouped[*item.AssignedDepartmentID], item)
	}

	result := make([]dtos.DepartmentGap, 0, len(grouped))
	for departmentID, subset := range grouped {
		result = append(result, dtos.DepartmentGap{
			DepartmentID:   departmentID,
			DepartmentName: s.departmentName(departmentID),
			GapCounts:      aggregate(subset),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].DepartmentName < result[j].DepartmentName
	})
	return result
}

func (s *GapAnalysisService) categoryBreakdown(frameworkVersionID uuid.UUID, items []models.AssessmentItem) ([]dtos.CategoryGap, error) {
	if len(items) == 0 {
		return []dtos.CategoryGap{}, nil
	}

	clauseIDs := make([]uuid.UUID, 0, len(items))
	itemsByClause := make(map[uuid.UUID]models.AssessmentItem, len(items))
	for _, item := range items {
		clauseIDs = append(clauseIDs, item.ClauseID)
		itemsByClause[item.ClauseID] = item
	}

	memberships, err := s.catalogRepository.CategoriesOfClauses(frameworkVersionID, clauseIDs)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not resolve clause categories").WithInternal(err)
	}

	grouped := make(map[uuid.UUID][]models.AssessmentItem)
	names := make(map[uuid.UUID]string)
	for _, membership := range memberships {
		item, ok := itemsByClause[membership.ClauseID]
		if !ok {
			continue
		}
		grouped[membership.CategoryID] = append(grouped[membership.CategoryID], item)
		names[membership.CategoryID] = membership.CategoryName
	}

	result := make([]dtos.CategoryGap, 0, len(grouped))
	for categoryID, subset := range grouped {
		result = append(result, dtos.CategoryGap{
			CategoryID:   categoryID,
			CategoryName: names[categoryID],
			GapCounts:    aggregate(subset),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CategoryName < result[j].CategoryName
	})
	return result, nil
}

func (s *GapAnalysisService) departmentName(departmentID uuid.UUID) string {
	department, err := s.departmentRepository.Read(departmentID)
	if err != nil {
		return unknownDepartmentName
	}
	return department.Name
}
