// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package dtos

import (
	"time"

	"github.com/google/uuid"
)

type OrgCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type DepartmentCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

type OrgDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Status      OrgStatus `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`

	Departments []DepartmentDTO `json:"departments,omitempty"`
}

type DepartmentDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
