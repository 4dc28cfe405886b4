package models

import (
	"time"
)

// Message delivery statuses. Transitions are forward-only:
// pending -> sent -> delivered, with failed reachable from pending or sent.
// Delivered and failed are terminal.
const (
	MessageStatusPending   = "pending"
	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusFailed    = "failed"
)

// Message types accepted by the notification pipeline.
const (
	MessageTypeDocumentRequest        = "document_request"
	MessageTypeClaimUpdate            = "claim_update"
	MessageTypePaymentReminder        = "payment_reminder"
	MessageTypeEnrollmentNotification = "enrollment_notification"
	MessageTypeBeneficiaryUpdate      = "beneficiary_update"
	MessageTypeSystemAlert            = "system_alert"
)

// Message represents a unit of outbound communication with a delivery
// lifecycle. DeliveredAt is non-nil exactly when Status is delivered.
type Message struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	MessageID   string `gorm:"size:100;uniqueIndex;not null"`
	ClientID    string `gorm:"size:50;index;not null"`
	MessageType string `gorm:"size:50;not null"`
	Content     string `gorm:"type:text;not null"`
	Status      string `gorm:"size:20;not null;default:pending"`
	CreatedAt   time.Time
	DeliveredAt *time.Time
	Metadata    JSON `gorm:"type:json"`
}

// TableName overrides the table name for Message
func (Message) TableName() string {
	return "messages"
}

// ValidMessageType reports whether t is one of the known message types.
func ValidMessageType(t string) bool {
	switch t {
	case MessageTypeDocumentRequest, MessageTypeClaimUpdate, MessageTypePaymentReminder,
		MessageTypeEnrollmentNotification, MessageTypeBeneficiaryUpdate, MessageTypeSystemAlert:
		return true
	}
	return false
}
