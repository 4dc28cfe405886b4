package models

import (
	"time"
)

// Audit actions recorded by the ledger.
const (
	AuditActionClientRegistered   = "client_registered"
	AuditActionClientUpdated      = "client_updated"
	AuditActionClientDeactivated  = "client_deactivated"
	AuditActionClientReactivated  = "client_reactivated"
	AuditActionMessageCreated     = "message_created"
	AuditActionMessageTransition  = "message_transition"
	AuditActionDocumentUploaded   = "document_uploaded"
	AuditActionShareCreated       = "share_created"
	AuditActionDocumentAccessed   = "document_accessed"
)

// Resource types referenced by audit events.
const (
	ResourceTypeClient   = "client"
	ResourceTypeMessage  = "message"
	ResourceTypeDocument = "document"
)

// AuditEvent is an immutable record of an action taken against a client's
// resources. Rows are only ever inserted, and only the retention sweeper
// deletes them. Timestamp is assigned by the audit recorder, not the caller,
// and is non-decreasing across the whole table.
type AuditEvent struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	ClientID     string    `gorm:"size:50;index;not null"`
	Action       string    `gorm:"size:100;not null"`
	ResourceType string    `gorm:"size:50;not null"`
	ResourceID   string    `gorm:"size:100;not null"`
	Timestamp    time.Time `gorm:"index;not null"`
	IPAddress    string    `gorm:"size:45"`
	UserAgent    string    `gorm:"size:500"`
	Metadata     JSON      `gorm:"type:json"`
}

// TableName overrides the table name for AuditEvent
func (AuditEvent) TableName() string {
	return "audit_logs"
}
