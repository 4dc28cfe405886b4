package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/centuriesmutual/activity-ledger/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// messageTransitions is the forward-only status lattice. Absence means the
// transition is illegal; delivered and failed have no outgoing edges.
var messageTransitions = map[string][]string{
	models.MessageStatusPending: {models.MessageStatusSent, models.MessageStatusFailed},
	models.MessageStatusSent:    {models.MessageStatusDelivered, models.MessageStatusFailed},
}

func transitionAllowed(from, to string) bool {
	for _, s := range messageTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func validStatus(s string) bool {
	switch s {
	case models.MessageStatusPending, models.MessageStatusSent,
		models.MessageStatusDelivered, models.MessageStatusFailed:
		return true
	}
	return false
}

// CreateMessageInput carries the fields for message creation. MessageID is
// optional; a UUID is assigned when empty.
type CreateMessageInput struct {
	MessageID   string
	ClientID    string
	MessageType string
	Content     string
	Metadata    map[string]interface{}
}

// CreateMessage records a new outbound message in status pending and audits
// the creation. The referenced client must exist; the per-client daily
// message limit is enforced against messages created since UTC midnight.
func (l *Ledger) CreateMessage(ctx context.Context, in CreateMessageInput, meta Meta) (*models.Message, error) {
	if !models.ValidMessageType(in.MessageType) {
		return nil, fmt.Errorf("%w: unknown message type %q", ErrInvalidArgument, in.MessageType)
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidArgument)
	}

	messageID := in.MessageID
	if messageID == "" {
		messageID = uuid.New().String()
	}

	md, err := models.NewJSON(in.Metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: metadata: %v", ErrInvalidArgument, err)
	}

	msg := models.Message{
		MessageID:   messageID,
		ClientID:    in.ClientID,
		MessageType: in.MessageType,
		Content:     in.Content,
		Status:      models.MessageStatusPending,
		Metadata:    md,
	}

	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := clientExists(tx, in.ClientID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: client %q", ErrForeignKeyViolation, in.ClientID)
		}

		var n int64
		if err := tx.Model(&models.Message{}).Where("message_id = ?", messageID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: message %q", ErrDuplicateKey, messageID)
		}

		midnight := time.Now().UTC().Truncate(24 * time.Hour)
		var today int64
		if err := tx.Model(&models.Message{}).
			Where("client_id = ? AND created_at >= ?", in.ClientID, midnight).
			Count(&today).Error; err != nil {
			return err
		}
		if today >= int64(l.cfg.DailyMessageLimit) {
			return fmt.Errorf("%w: %d messages today for client %q", ErrRateLimited, today, in.ClientID)
		}

		if err := tx.Create(&msg).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: message %q", ErrDuplicateKey, messageID)
			}
			return err
		}

		_, err = l.appendAudit(tx, AuditInput{
			ClientID:     in.ClientID,
			Action:       models.AuditActionMessageCreated,
			ResourceType: models.ResourceTypeMessage,
			ResourceID:   messageID,
			Meta:         meta,
			Metadata:     map[string]interface{}{"message_type": in.MessageType},
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetMessage looks up a message by its message_id.
func (l *Ledger) GetMessage(ctx context.Context, messageID string) (*models.Message, error) {
	var msg models.Message
	err := l.db.WithContext(ctx).Where("message_id = ?", messageID).First(&msg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: message %q", ErrNotFound, messageID)
		}
		return nil, err
	}
	return &msg, nil
}

// ListClientMessages returns a client's messages, newest first.
func (l *Ledger) ListClientMessages(ctx context.Context, clientID string) ([]models.Message, error) {
	ok, err := clientExists(l.db.WithContext(ctx), clientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: client %q", ErrNotFound, clientID)
	}

	var msgs []models.Message
	err = l.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC, id DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// TransitionMessage moves a message along the delivery lattice and audits
// the change in the same transaction; either both land or neither does.
// delivered_at is set exactly on the transition into delivered. The status
// column itself is the optimistic guard: a concurrent transition on the same
// row loses the compare-and-set and is retried until the lock-wait bound.
func (l *Ledger) TransitionMessage(ctx context.Context, messageID, newStatus string, meta Meta) (*models.Message, error) {
	if !validStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, newStatus)
	}

	var out models.Message
	err := l.runWrite(ctx, func(tx *gorm.DB) error {
		var msg models.Message
		if err := tx.Where("message_id = ?", messageID).First(&msg).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: message %q", ErrNotFound, messageID)
			}
			return err
		}

		if !transitionAllowed(msg.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, msg.Status, newStatus)
		}

		updates := map[string]interface{}{"status": newStatus}
		if newStatus == models.MessageStatusDelivered {
			now := time.Now().UTC()
			updates["delivered_at"] = &now
		}

		res := tx.Model(&models.Message{}).
			Where("message_id = ? AND status = ?", messageID, msg.Status).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race to a concurrent transition; re-read and retry.
			return errWriteConflict
		}

		_, err := l.appendAudit(tx, AuditInput{
			ClientID:     msg.ClientID,
			Action:       models.AuditActionMessageTransition,
			ResourceType: models.ResourceTypeMessage,
			ResourceID:   messageID,
			Meta:         meta,
			Metadata:     map[string]interface{}{"from": msg.Status, "to": newStatus},
		})
		if err != nil {
			return err
		}

		return tx.Where("message_id = ?", messageID).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
