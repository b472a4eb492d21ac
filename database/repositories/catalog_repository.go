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

package repositories

import (
	"github.com/auditforge/auditforge/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// catalogRepository reads and writes the category/clause/checklist tree of
// framework versions.
type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *catalogRepository {
	return &catalogRepository{db: db}
}

func (g *catalogRepository) CategoryLinks(frameworkVersionID uuid.UUID) ([]models.FrameworkVersionCategory, error) {
	var links []models.FrameworkVersionCategory
	err := g.db.Model(models.FrameworkVersionCategory{}).
		Preload("Category").
		Where("framework_version_id = ?", frameworkVersionID).
		Order("sort_order ASC").
		Find(&links).Error
	return links, err
}

func (g *catalogRepository) ClauseLinks(frameworkVersionCategoryID uuid.UUID) ([]models.CategoryClause, error) {
	var links []models.CategoryClause
	err := g.db.Model(models.CategoryClause{}).
		Preload("Clause").
		Preload("Clause.ChecklistItems").
		Where("framework_version_category_id = ?", frameworkVersionCategoryID).
		Order("sort_order ASC").
		Find(&links).Error
	return links, err
}

func (g *catalogRepository) ChecklistItemsOf(clauseID uuid.UUID) ([]models.ChecklistItem, error) {
	var items []models.ChecklistItem
	err := g.db.Where("clause_id = ?", clauseID).Order("sort_order ASC").Find(&items).Error
	return items, err
}

func (g *catalogRepository) ReadChecklistItem(id uuid.UUID) (models.ChecklistItem, error) {
	var item models.ChecklistItem
	err := g.db.First(&item, "id = ?", id).Error
	return item, err
}

// CategoriesOfClauses returns one row per (clause, category) membership
// inside the framework version, restricted to the given clause ids. A clause
// linked twice under the same category yields a single row.
func (g *catalogRepository) CategoriesOfClauses(frameworkVersionID uuid.UUID, clauseIDs []uuid.UUID) ([]models.ClauseCategory, error) {
	if len(clauseIDs) == 0 {
		return []models.ClauseCategory{}, nil
	}

	var rows []models.ClauseCategory
	err := g.db.Raw(`
		SELECT DISTINCT cc.clause_id AS clause_id, c.id AS category_id, c.name AS category_name
		FROM category_clauses cc
		JOIN framework_version_categories fvc ON fvc.id = cc.framework_version_category_id
		JOIN categories c ON c.id = fvc.category_id
		WHERE fvc.framework_version_id = ?
		  AND cc.clause_id IN ?
		  AND cc.deleted_at IS NULL
		  AND fvc.deleted_at IS NULL
		  AND c.deleted_at IS NULL`,
		frameworkVersionID, clauseIDs).Scan(&rows).Error
	return rows, err
}

func (g *catalogRepository) CreateCategory(tx *gorm.DB, category *models.Category) error {
	return g.getDB(tx).Create(category).Error
}

func (g *catalogRepository) CreateClause(tx *gorm.DB, clause *models.Clause) error {
	return g.getDB(tx).Create(clause).Error
}

func (g *catalogRepository) CreateChecklistItem(tx *gorm.DB, item *models.ChecklistItem) error {
	return g.getDB(tx).Create(item).Error
}

func (g *catalogRepository) LinkCategory(tx *gorm.DB, link *models.FrameworkVersionCategory) error {
	return g.getDB(tx).Create(link).Error
}

func (g *catalogRepository) LinkClause(tx *gorm.DB, link *models.CategoryClause) error {
	return g.getDB(tx).Create(link).Error
}

func (g *catalogRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return g.db
}
