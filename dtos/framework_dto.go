// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package dtos

import (
	"time"

	"github.com/google/uuid"
)

type FrameworkCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type FrameworkVersionCreateRequest struct {
	Name        string     `json:"name" validate:"required"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type FrameworkDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`

	Versions []FrameworkVersionDTO `json:"versions,omitempty"`
}

type FrameworkVersionDTO struct {
	ID          uuid.UUID  `json:"id"`
	FrameworkID uuid.UUID  `json:"frameworkId"`
	Name        string     `json:"name"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}
