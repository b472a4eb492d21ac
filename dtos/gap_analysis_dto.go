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

package dtos

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GapCounts is one aggregation bucket. The percentage is the share of fully
// conforming items, rounded to two decimal places and zero when the bucket
// is empty.
type GapCounts struct {
	TotalItems           int             `json:"totalItems"`
	Conforming           int             `json:"conforming"`
	PartiallyConforming  int             `json:"partiallyConforming"`
	NonConforming        int             `json:"nonConforming"`
	NotAssessed          int             `json:"notAssessed"`
	ConformityPercentage decimal.Decimal `json:"conformityPercentage"`
}

// GapAnalysisResult is computed fresh on every request and never persisted.
type GapAnalysisResult struct {
	AssessmentID         uuid.UUID `json:"assessmentId"`
	OrganizationName     string    `json:"organizationName"`
	FrameworkName        string    `json:"frameworkName"`
	FrameworkVersionName string    `json:"frameworkVersionName"`
	GeneratedAt          time.Time `json:"generatedAt"`

	GapCounts

	Departments []DepartmentGap `json:"departments"`
	Categories  []CategoryGap   `json:"categories"`
}

// DepartmentGap aggregates the items assigned to one department. Items
// without a department are excluded from the breakdown.
type DepartmentGap struct {
	DepartmentID   uuid.UUID `json:"departmentId"`
	DepartmentName string    `json:"departmentName"`

	GapCounts
}

// CategoryGap aggregates over the clauses linked under one category of the
// assessed framework version. A clause counts once per category it appears
// under, so category totals may exceed the overall item count.
type CategoryGap struct {
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName"`

	GapCounts
}
