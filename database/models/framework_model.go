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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Framework is a named regulatory standard (e.g. ISO 27001). The actual
// category/clause tree hangs off one of its versions.
type Framework struct {
	Model
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`

	Versions []FrameworkVersion `json:"versions,omitempty" gorm:"foreignKey:FrameworkID"`
}

func (m Framework) TableName() string {
	return "frameworks"
}

// FrameworkVersion is one dated revision of a framework. Once published its
// category/clause tree is read-only from the assessment engine's perspective.
type FrameworkVersion struct {
	Model
	FrameworkID uuid.UUID  `json:"frameworkId" gorm:"not null;index"`
	Framework   *Framework `json:"framework,omitempty" gorm:"foreignKey:FrameworkID;references:ID;constraint:OnDelete:CASCADE;"`
	Name        string     `json:"name" gorm:"not null"`
	PublishedAt *time.Time `json:"publishedAt"`

	CategoryLinks []FrameworkVersionCategory `json:"categoryLinks,omitempty" gorm:"foreignKey:FrameworkVersionID"`
}

func (m FrameworkVersion) TableName() string {
	return "framework_versions"
}
