package models

import (
	"time"
)

// Document types accepted on upload.
const (
	DocumentTypeEnrollmentForm  = "enrollment_form"
	DocumentTypeClaimsForm      = "claims_form"
	DocumentTypeBeneficiaryForm = "beneficiary_form"
	DocumentTypePolicyDocument  = "policy_document"
	DocumentTypePaymentReceipt  = "payment_receipt"
	DocumentTypeAuditReport     = "audit_report"
)

// Document represents a stored file record, optionally exposed through a
// time-limited share link. SharedLink non-empty implies ExpiresAt non-nil;
// a lapsed ExpiresAt invalidates the link lazily, without mutation.
type Document struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	DocumentID   string `gorm:"size:100;uniqueIndex;not null"`
	ClientID     string `gorm:"size:50;index;not null"`
	DocumentType string `gorm:"size:50;not null"`
	FilePath     string `gorm:"size:500;not null"`
	FileSize     int64  `gorm:"not null"`
	SharedLink   string `gorm:"size:1000"`
	ExpiresAt    *time.Time
	AccessCount  int64 `gorm:"not null;default:0"`
	CreatedAt    time.Time
	Metadata     JSON `gorm:"type:json"`
}

// TableName overrides the table name for Document
func (Document) TableName() string {
	return "documents"
}

// ShareActive reports whether the document has a share link that has not
// lapsed as of now.
func (d *Document) ShareActive(now time.Time) bool {
	return d.SharedLink != "" && d.ExpiresAt != nil && now.Before(*d.ExpiresAt)
}

// ValidDocumentType reports whether t is one of the known document types.
func ValidDocumentType(t string) bool {
	switch t {
	case DocumentTypeEnrollmentForm, DocumentTypeClaimsForm, DocumentTypeBeneficiaryForm,
		DocumentTypePolicyDocument, DocumentTypePaymentReceipt, DocumentTypeAuditReport:
		return true
	}
	return false
}
