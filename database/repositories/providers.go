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
	"github.com/auditforge/auditforge/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewOrgRepository, fx.As(new(shared.OrganizationRepository)))),
	fx.Provide(fx.Annotate(NewDepartmentRepository, fx.As(new(shared.DepartmentRepository)))),
	fx.Provide(fx.Annotate(NewFrameworkRepository, fx.As(new(shared.FrameworkRepository)))),
	fx.Provide(fx.Annotate(NewCatalogRepository, fx.As(new(shared.CatalogRepository)))),
	fx.Provide(fx.Annotate(NewAssessmentRepository, fx.As(new(shared.AssessmentRepository)))),
	fx.Provide(fx.Annotate(NewAssessmentItemRepository, fx.As(new(shared.AssessmentItemRepository)))),
	fx.Provide(fx.Annotate(NewChecklistAnswerRepository, fx.As(new(shared.ChecklistAnswerRepository)))),
	fx.Provide(fx.Annotate(NewDocumentRepository, fx.As(new(shared.DocumentRepository)))),
	fx.Provide(fx.Annotate(NewAuditEventRepository, fx.As(new(shared.AuditEventRepository)))),
)
