package models

import (
	"time"
)

// Client represents a registered account whose activity the ledger tracks.
// Clients are never hard-deleted; deactivation flips IsActive only, since
// messages, documents and audit events keep referencing the client_id.
type Client struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	ClientID  string `gorm:"size:50;uniqueIndex;not null"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	Phone     string `gorm:"size:20"`
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	Metadata  JSON   `gorm:"type:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for Client
func (Client) TableName() string {
	return "clients"
}
