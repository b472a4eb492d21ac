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

type frameworkRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Framework]
}

func NewFrameworkRepository(db *gorm.DB) *frameworkRepository {
	return &frameworkRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Framework](db),
	}
}

func (g *frameworkRepository) ReadBySlug(slug string) (models.Framework, error) {
	var framework models.Framework
	err := g.db.Model(models.Framework{}).Preload("Versions").Where("slug = ?", slug).First(&framework).Error
	return framework, err
}

func (g *frameworkRepository) CreateVersion(tx *gorm.DB, version *models.FrameworkVersion) error {
	return g.GetDB(tx).Create(version).Error
}

func (g *frameworkRepository) ReadVersion(id uuid.UUID) (models.FrameworkVersion, error) {
	var version models.FrameworkVersion
	err := g.db.First(&version, "id = ?", id).Error
	return version, err
}

func (g *frameworkRepository) VersionsOf(frameworkID uuid.UUID) ([]models.FrameworkVersion, error) {
	var versions []models.FrameworkVersion
	err := g.db.Where("framework_id = ?", frameworkID).Order("created_at DESC").Find(&versions).Error
	return versions, err
}
