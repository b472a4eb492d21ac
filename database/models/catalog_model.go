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

package models

import "github.com/google/uuid"

// Category groups clauses. The same category (and the same clause) can be
// reused by several framework versions, so membership is expressed through
// the two link tables below instead of direct foreign keys.
type Category struct {
	Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
}

func (m Category) TableName() string {
	return "categories"
}

// FrameworkVersionCategory links a category into a framework version.
type FrameworkVersionCategory struct {
	Model
	FrameworkVersionID uuid.UUID `json:"frameworkVersionId" gorm:"not null;index"`
	CategoryID         uuid.UUID `json:"categoryId" gorm:"not null;index"`
	Category           *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE;"`
	SortOrder          int       `json:"sortOrder" gorm:"not null;default:0"`

	ClauseLinks []CategoryClause `json:"clauseLinks,omitempty" gorm:"foreignKey:FrameworkVersionCategoryID"`
}

func (m FrameworkVersionCategory) TableName() string {
	return "framework_version_categories"
}

// CategoryClause links a clause under a category link. A clause may appear
// under several category links of the same framework version.
type CategoryClause struct {
	Model
	FrameworkVersionCategoryID uuid.UUID `json:"frameworkVersionCategoryId" gorm:"not null;index"`
	ClauseID                   uuid.UUID `json:"clauseId" gorm:"not null;index"`
	Clause                     *Clause   `json:"clause,omitempty" gorm:"foreignKey:ClauseID;references:ID;constraint:OnDelete:CASCADE;"`
	SortOrder                  int       `json:"sortOrder" gorm:"not null;default:0"`
}

func (m CategoryClause) TableName() string {
	return "category_clauses"
}

// Clause is the atomic control being assessed.
type Clause struct {
	Model
	Code        string `json:"code" gorm:"not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`

	ChecklistItems []ChecklistItem `json:"checklistItems,omitempty" gorm:"foreignKey:ClauseID"`
}

func (m Clause) TableName() string {
	return "clauses"
}

// ChecklistItem is a sub-checkbox template attached to a clause. It gets
// answered per assessment item.
type ChecklistItem struct {
	Model
	ClauseID  uuid.UUID `json:"clauseId" gorm:"not null;index"`
	Text      string    `json:"text" gorm:"not null"`
	SortOrder int       `json:"sortOrder" gorm:"not null;default:0"`
}

func (m ChecklistItem) TableName() string {
	return "checklist_items"
}

// ClauseCategory is a read model produced by the catalog repository: one row
// per (clause, category) membership within a framework version. It backs the
// category breakdown of the gap analysis and is never persisted.
type ClauseCategory struct {
	ClauseID     uuid.UUID `json:"clauseId" gorm:"column:clause_id"`
	CategoryID   uuid.UUID `json:"categoryId" gorm:"column:category_id"`
	CategoryName string    `json:"categoryName" gorm:"column:category_name"`
}
