// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"log/slog"

	"github.com/auditforge/auditforge/database/models"
	"github.com/auditforge/auditforge/dtos"
	"github.com/auditforge/auditforge/shared"
	"github.com/google/uuid"
)

// AuditService writes audit events fire and forget. A failed insert is
// logged and swallowed, observability must never block a business operation.
type AuditService struct {
	auditEventRepository shared.AuditEventRepository
}

func NewAuditService(auditEventRepository shared.AuditEventRepository) *AuditService {
	return &AuditService{auditEventRepository: auditEventRepository}
}

func (s *AuditService) Record(actor shared.Actor, entityType string, entityID uuid.UUID, action dtos.AuditAction, details map[string]any) {
	event := models.AuditEvent{
		EntityType: entityType,
		EntityID:   entityID.String(),
		Action:     action,
		UserID:     actor.UserID,
		IP:         actor.IP,
	}
	if details != nil {
		event.SetArbitraryJSONData(details)
	}

	if err := s.auditEventRepository.Create(nil, &event); err != nil {
		slog.Error("could not record audit event",
			"err", err, "entityType", entityType, "entityID", entityID, "action", action)
	}
}
