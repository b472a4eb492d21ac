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
	"github.com/auditforge/auditforge/dtos"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type assessmentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Assessment]
}

func NewAssessmentRepository(db *gorm.DB) *assessmentRepository {
	return &assessmentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Assessment](db),
	}
}

func (g *assessmentRepository) ReadWithItems(id uuid.UUID) (models.Assessment, error) {
	var assessment models.Assessment
	err := g.db.Model(models.Assessment{}).
		Preload("Items").
		Preload("Items.Clause").
		Where("id = ?", id).
		First(&assessment).Error
	return assessment, err
}

// FindActive returns the organization's non terminal assessments for the
// given framework version. Terminal means completed or cancelled.
func (g *assessmentRepository) FindActive(organizationID, frameworkVersionID uuid.UUID) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := g.db.Where(
		"organization_id = ? AND framework_version_id = ? AND status NOT IN ?",
		organizationID, frameworkVersionID,
		[]dtos.AssessmentStatus{dtos.AssessmentStatusCompleted, dtos.AssessmentStatusCancelled},
	).Find(&assessments).Error
	return assessments, err
}

func (g *assessmentRepository) FindByOrg(organizationID uuid.UUID) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := g.db.Where("organization_id = ?", organizationID).Order("created_at DESC").Find(&assessments).Error
	return assessments, err
}
