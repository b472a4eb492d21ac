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

type documentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.AssessmentItemDocument]
}

func NewDocumentRepository(db *gorm.DB) *documentRepository {
	return &documentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.AssessmentItemDocument](db),
	}
}

func (g *documentRepository) FindByItem(assessmentItemID uuid.UUID) ([]models.AssessmentItemDocument, error) {
	var documents []models.AssessmentItemDocument
	err := g.db.Where("assessment_item_id = ?", assessmentItemID).
		Order("created_at DESC").
		Find(&documents).Error
	return documents, err
}

func (g *documentRepository) DeleteByItem(tx *gorm.DB, assessmentItemID uuid.UUID) error {
	return g.GetDB(tx).Where("assessment_item_id = ?", assessmentItemID).
		Delete(&models.AssessmentItemDocument{}).Error
}

func (g *documentRepository) DeleteByAssessment(tx *gorm.DB, assessmentID uuid.UUID) error {
	return g.GetDB(tx).Where(
		"assessment_item_id IN (?)",
		g.GetDB(tx).Session(&gorm.Session{NewDB: true}).
			Model(&models.AssessmentItem{}).
			Select("id").
			Where("assessment_id = ?", assessmentID),
	).Delete(&models.AssessmentItemDocument{}).Error
}
