// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package models

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/auditforge/auditforge/dtos"
	"github.com/google/uuid"
)

// AuditEvent records who did what to which entity. Writing audit events is
// fire and forget: a failed insert is logged but never fails the operation
// that produced it.
type AuditEvent struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`

	EntityType string           `json:"entityType" gorm:"not null;index:idx_audit_events_entity"`
	EntityID   string           `json:"entityId" gorm:"not null;index:idx_audit_events_entity"`
	Action     dtos.AuditAction `json:"action" gorm:"type:text;not null"`

	UserID string `json:"userId"`
	IP     string `json:"ip"`

	ArbitraryJSONData string `json:"arbitraryJSONData" gorm:"type:text"`
	arbitraryJSONData map[string]any
}

func (event AuditEvent) TableName() string {
	return "audit_events"
}

func (event *AuditEvent) GetArbitraryJSONData() map[string]any {
	if event.ArbitraryJSONData == "" {
		return make(map[string]any)
	}
	if event.arbitraryJSONData == nil {
		event.arbitraryJSONData = make(map[string]any)
		err := json.Unmarshal([]byte(event.ArbitraryJSONData), &event.arbitraryJSONData)
		if err != nil {
			slog.Error("could not parse audit event details", "err", err, "auditEventID", event.ID)
		}
	}
	return event.arbitraryJSONData
}

func (event *AuditEvent) SetArbitraryJSONData(data map[string]any) {
	event.arbitraryJSONData = data
	dataBytes, err := json.Marshal(event.arbitraryJSONData)
	if err != nil {
		slog.Error("could not marshal audit event details", "err", err, "auditEventID", event.ID)
	}
	event.ArbitraryJSONData = string(dataBytes)
}
