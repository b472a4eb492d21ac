// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package repositories

import (
	"github.com/auditforge/auditforge/database/models"
	"gorm.io/gorm"
)

type auditEventRepository struct {
	db *gorm.DB
}

func NewAuditEventRepository(db *gorm.DB) *auditEventRepository {
	return &auditEventRepository{db: db}
}

func (g *auditEventRepository) Create(tx *gorm.DB, event *models.AuditEvent) error {
	if tx != nil {
		return tx.Create(event).Error
	}
	return g.db.Create(event).Error
}

func (g *auditEventRepository) FindByEntity(entityType, entityID string) ([]models.AuditEvent, error) {
	var events []models.AuditEvent
	err := g.db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}
