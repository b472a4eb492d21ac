// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package dtos

// AssessmentStatus is the lifecycle status of an assessment run.
type AssessmentStatus string

const (
	AssessmentStatusDraft      AssessmentStatus = "draft"
	AssessmentStatusInProgress AssessmentStatus = "inProgress"
	AssessmentStatusCompleted  AssessmentStatus = "completed"
	AssessmentStatusCancelled  AssessmentStatus = "cancelled"
)

// IsTerminal reports whether the status ends the assessment lifecycle. Only
// one non-terminal assessment may exist per (organization, framework version)
// pair.
func (s AssessmentStatus) IsTerminal() bool {
	return s == AssessmentStatusCompleted || s == AssessmentStatusCancelled
}

func AssessmentStatuses() []AssessmentStatus {
	return []AssessmentStatus{
		AssessmentStatusDraft,
		AssessmentStatusInProgress,
		AssessmentStatusCompleted,
		AssessmentStatusCancelled,
	}
}

// ComplianceStatus is the per-clause compliance verdict of an assessment item.
type ComplianceStatus string

const (
	ComplianceStatusNotAssessed         ComplianceStatus = "notAssessed"
	ComplianceStatusConformity          ComplianceStatus = "conformity"
	ComplianceStatusConformityWithNotes ComplianceStatus = "conformityWithNotes"
	ComplianceStatusNonConformity       ComplianceStatus = "nonConformity"
)

func ComplianceStatuses() []ComplianceStatus {
	return []ComplianceStatus{
		ComplianceStatusNotAssessed,
		ComplianceStatusConformity,
		ComplianceStatusConformityWithNotes,
		ComplianceStatusNonConformity,
	}
}

// OrgStatus tells whether an organization can still be assessed.
type OrgStatus string

const (
	OrgStatusActive    OrgStatus = "active"
	OrgStatusSuspended OrgStatus = "suspended"
	OrgStatusClosed    OrgStatus = "closed"
)

// AuditAction is the verb recorded with an audit event.
type AuditAction string

const (
	AuditActionAdd    AuditAction = "ADD"
	AuditActionEdit   AuditAction = "EDIT"
	AuditActionDelete AuditAction = "DELETE"
)
