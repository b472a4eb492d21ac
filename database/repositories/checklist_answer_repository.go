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
	"gorm.io/gorm/clause"
)

type checklistAnswerRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.AssessmentItemChecklistAnswer]
}

func NewChecklistAnswerRepository(db *gorm.DB) *checklistAnswerRepository {
	return &checklistAnswerRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.AssessmentItemChecklistAnswer](db),
	}
}

func (g *checklistAnswerRepository) FindByItem(assessmentItemID uuid.UUID) ([]models.AssessmentItemChecklistAnswer, error) {
	var answers []models.AssessmentItemChecklistAnswer
	err := g.db.Where("assessment_item_id = ?", assessmentItemID).Find(&answers).Error
	return answers, err
}

func (g *checklistAnswerRepository) FindByItemAndChecklistItem(assessmentItemID, checklistItemID uuid.UUID) (models.AssessmentItemChecklistAnswer, error) {
	var answer models.AssessmentItemChecklistAnswer
	err := g.db.Where("assessment_item_id = ? AND checklist_item_id = ?", assessmentItemID, checklistItemID).
		First(&answer).Error
	return answer, err
}

// Upsert writes the answer keyed by (assessment_item_id, checklist_item_id).
// The partial unique index on that pair turns a concurrent double insert
// into an update, so both writers succeed and the last one wins.
func (g *checklistAnswerRepository) Upsert(tx *gorm.DB, answer *models.AssessmentItemChecklistAnswer) error {
	return g.GetDB(tx).Clauses(clause.OnConflict{
		Columns:     []clause.Column{{Name: "assessment_item_id"}, {Name: "checklist_item_id"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "deleted_at IS NULL"}}},
		DoUpdates: clause.AssignmentColumns([]string{
			"checked", "notes", "updated_by", "updated_at",
		}),
	}).Create(answer).Error
}

func (g *checklistAnswerRepository) DeleteByItem(tx *gorm.DB, assessmentItemID uuid.UUID) error {
	return g.GetDB(tx).Where("assessment_item_id = ?", assessmentItemID).
		Delete(&models.AssessmentItemChecklistAnswer{}).Error
}

func (g *checklistAnswerRepository) DeleteByAssessment(tx *gorm.DB, assessmentID uuid.UUID) error {
	return g.GetDB(tx).Where(
		"assessment_item_id IN (?)",
		g.GetDB(tx).Session(&gorm.Session{NewDB: true}).
			Model(&models.AssessmentItem{}).
			Select("id").
			Where("assessment_id = ?", assessmentID),
	).Delete(&models.AssessmentItemChecklistAnswer{}).Error
}
