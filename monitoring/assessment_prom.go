// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AssessmentsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "auditforge_assessments_created_total",
	Help: "The total number of assessments created",
})

var GapAnalysisGenerated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "auditforge_gap_analysis_generated_total",
	Help: "The total number of gap analysis reports generated",
})

var DocumentsUploaded = promauto.NewCounter(prometheus.CounterOpts{
	Name: "auditforge_documents_uploaded_total",
	Help: "The total number of documents uploaded",
})

var DocumentUploadBytes = promauto.NewCounter(prometheus.CounterOpts{
	Name: "auditforge_document_upload_bytes_total",
	Help: "The total number of document bytes written to the object storage",
})
