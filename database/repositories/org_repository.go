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
	"fmt"

	"github.com/auditforge/auditforge/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orgRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Org]
}

func NewOrgRepository(db *gorm.DB) *orgRepository {
	return &orgRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Org](db),
	}
}

// Create persists the organization under the first free slug derived from
// its current one, appending -1, -2, ... on collisions.
func (g *orgRepository) Create(tx *gorm.DB, org *models.Org) error {
	firstFreeSlug, err := g.firstFreeSlug(org.Slug)
	if err != nil {
		return fmt.Errorf("could not generate next slug: %w", err)
	}
	org.Slug = firstFreeSlug

	return g.GetDB(tx).Create(org).Error
}

func (g *orgRepository) Read(id uuid.UUID) (models.Org, error) {
	var org models.Org
	err := g.db.Model(models.Org{}).Preload("Departments").Where("id = ?", id).First(&org).Error
	return org, err
}

func (g *orgRepository) ReadBySlug(slug string) (models.Org, error) {
	var org models.Org
	err := g.db.Model(models.Org{}).Preload("Departments").Where("slug = ?", slug).First(&org).Error
	return org, err
}

func (g *orgRepository) firstFreeSlug(organizationSlug string) (string, error) {
	var slugs []string
	err := g.db.Model(&models.Org{}).
		Where("slug LIKE ?", organizationSlug+"%").
		Pluck("slug", &slugs).Error
	if err != nil {
		return "", err
	}

	baseTaken := false
	existing := make(map[string]bool)
	for _, s := range slugs {
		existing[s] = true
		if s == organizationSlug {
			baseTaken = true
		}
	}

	if !baseTaken {
		return organizationSlug, nil
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", organizationSlug, i)
		if !existing[candidate] {
			return candidate, nil
		}
	}
}

type departmentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.OrganizationDepartment]
}

func NewDepartmentRepository(db *gorm.DB) *departmentRepository {
	return &departmentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.OrganizationDepartment](db),
	}
}

func (g *departmentRepository) FindByOrg(orgID uuid.UUID) ([]models.OrganizationDepartment, error) {
	var departments []models.OrganizationDepartment
	err := g.db.Where("organization_id = ?", orgID).Order("name ASC").Find(&departments).Error
	return departments, err
}
