package services

import (
	"github.com/auditforge/auditforge/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewAuditService, fx.As(new(shared.AuditSink)))),
	fx.Provide(fx.Annotate(NewAssessmentService, fx.As(new(shared.AssessmentService)))),
	fx.Provide(fx.Annotate(NewGapAnalysisService, fx.As(new(shared.GapAnalysisService)))),
	fx.Provide(fx.Annotate(NewDocumentService, fx.As(new(shared.DocumentService)))),
	fx.Provide(NewOrgService),
	fx.Provide(NewFrameworkService),
)
