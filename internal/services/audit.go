package services

import (
	"context"
	"fmt"

	"github.com/centuriesmutual/activity-ledger/internal/models"
	"gorm.io/gorm"
)

// AuditInput describes an event to append to the audit trail. Timestamp is
// assigned by the recorder, never by the caller.
type AuditInput struct {
	ClientID     string
	Action       string
	ResourceType string
	ResourceID   string
	Meta         Meta
	Metadata     map[string]interface{}
}

// appendAudit inserts an audit event inside the caller's transaction. Every
// mutating operation funnels through here so the state change and its audit
// record commit or roll back together. The only precondition of the append
// itself is that the client exists.
func (l *Ledger) appendAudit(tx *gorm.DB, in AuditInput) (*models.AuditEvent, error) {
	ok, err := clientExists(tx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: client %q", ErrForeignKeyViolation, in.ClientID)
	}

	meta, err := models.NewJSON(in.Metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: audit metadata: %v", ErrInvalidArgument, err)
	}

	event := models.AuditEvent{
		ClientID:     in.ClientID,
		Action:       in.Action,
		ResourceType: in.ResourceType,
		ResourceID:   in.ResourceID,
		Timestamp:    l.nextAuditTime(),
		IPAddress:    in.Meta.IPAddress,
		UserAgent:    in.Meta.UserAgent,
		Metadata:     meta,
	}
	if err := tx.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// AppendAuditEvent appends a standalone audit event, outside any other
// mutation. It fails only when the referenced client does not exist.
func (l *Ledger) AppendAuditEvent(ctx context.Context, in AuditInput) (*models.AuditEvent, error) {
	var event *models.AuditEvent
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		event, err = l.appendAudit(tx, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// ListAuditEvents returns a client's audit trail, newest first, capped at
// limit (or all events when limit <= 0).
func (l *Ledger) ListAuditEvents(ctx context.Context, clientID string, limit int) ([]models.AuditEvent, error) {
	ok, err := clientExists(l.db.WithContext(ctx), clientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: client %q", ErrNotFound, clientID)
	}

	q := l.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("timestamp DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var events []models.AuditEvent
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
