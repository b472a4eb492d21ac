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

type assessmentItemRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.AssessmentItem]
}

func NewAssessmentItemRepository(db *gorm.DB) *assessmentItemRepository {
	return &assessmentItemRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.AssessmentItem](db),
	}
}

func (g *assessmentItemRepository) FindByAssessment(assessmentID uuid.UUID) ([]models.AssessmentItem, error) {
	var items []models.AssessmentItem
	err := g.db.Model(models.AssessmentItem{}).
		Preload("Clause").
		Where("assessment_id = ?", assessmentID).
		Find(&items).Error
	return items, err
}

func (g *assessmentItemRepository) DeleteByAssessment(tx *gorm.DB, assessmentID uuid.UUID) error {
	return g.GetDB(tx).Where("assessment_id = ?", assessmentID).Delete(&models.AssessmentItem{}).Error
}
