package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/centuriesmutual/activity-ledger/internal/models"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// CreateClientInput carries the fields for client registration.
type CreateClientInput struct {
	ClientID  string
	Email     string
	Phone     string
	FirstName string
	LastName  string
	Metadata  map[string]interface{}
}

// UpdateClientInput carries optional field updates; nil pointers leave the
// current value untouched.
type UpdateClientInput struct {
	Phone     *string
	FirstName *string
	LastName  *string
	Metadata  map[string]interface{}
}

// CreateClient registers a new client and audits the registration. Fails
// with ErrDuplicateKey when the client_id or email is already taken.
func (l *Ledger) CreateClient(ctx context.Context, in CreateClientInput, meta Meta) (*models.Client, error) {
	if len(in.ClientID) < 3 || len(in.ClientID) > 50 {
		return nil, fmt.Errorf("%w: client_id must be 3-50 characters", ErrInvalidArgument)
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, fmt.Errorf("%w: invalid email %q", ErrInvalidArgument, in.Email)
	}
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return nil, fmt.Errorf("%w: first and last name are required", ErrInvalidArgument)
	}

	md, err := models.NewJSON(in.Metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: metadata: %v", ErrInvalidArgument, err)
	}

	client := models.Client{
		ClientID:  in.ClientID,
		Email:     in.Email,
		Phone:     in.Phone,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		IsActive:  true,
		Metadata:  md,
	}

	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Client{}).
			Where("client_id = ? OR email = ?", in.ClientID, in.Email).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: client_id or email already registered", ErrDuplicateKey)
		}

		if err := tx.Create(&client).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: client_id or email already registered", ErrDuplicateKey)
			}
			return err
		}

		_, err := l.appendAudit(tx, AuditInput{
			ClientID:     client.ClientID,
			Action:       models.AuditActionClientRegistered,
			ResourceType: models.ResourceTypeClient,
			ResourceID:   client.ClientID,
			Meta:         meta,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetClient looks up a client by its client_id.
func (l *Ledger) GetClient(ctx context.Context, clientID string) (*models.Client, error) {
	var client models.Client
	err := l.db.WithContext(ctx).Where("client_id = ?", clientID).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: client %q", ErrNotFound, clientID)
		}
		return nil, err
	}
	return &client, nil
}

// UpdateClient applies the given field updates and refreshes updated_at.
// The client_id itself is immutable once assigned.
func (l *Ledger) UpdateClient(ctx context.Context, clientID string, in UpdateClientInput, meta Meta) (*models.Client, error) {
	var client models.Client

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", clientID).First(&client).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: client %q", ErrNotFound, clientID)
			}
			return err
		}

		updates := map[string]interface{}{}
		if in.Phone != nil {
			updates["phone"] = *in.Phone
		}
		if in.FirstName != nil {
			if strings.TrimSpace(*in.FirstName) == "" {
				return fmt.Errorf("%w: first_name cannot be empty", ErrInvalidArgument)
			}
			updates["first_name"] = *in.FirstName
		}
		if in.LastName != nil {
			if strings.TrimSpace(*in.LastName) == "" {
				return fmt.Errorf("%w: last_name cannot be empty", ErrInvalidArgument)
			}
			updates["last_name"] = *in.LastName
		}
		if in.Metadata != nil {
			md, err := models.NewJSON(in.Metadata)
			if err != nil {
				return fmt.Errorf("%w: metadata: %v", ErrInvalidArgument, err)
			}
			updates["metadata"] = md
		}

		if len(updates) > 0 {
			if err := tx.Model(&client).Updates(updates).Error; err != nil {
				return err
			}
		}

		_, err := l.appendAudit(tx, AuditInput{
			ClientID:     clientID,
			Action:       models.AuditActionClientUpdated,
			ResourceType: models.ResourceTypeClient,
			ResourceID:   clientID,
			Meta:         meta,
		})
		if err != nil {
			return err
		}

		return tx.Where("client_id = ?", clientID).First(&client).Error
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// DeactivateClient soft-deactivates a client. Existing messages, documents
// and audit events are untouched; there is no cascading effect.
func (l *Ledger) DeactivateClient(ctx context.Context, clientID string, meta Meta) (*models.Client, error) {
	return l.setClientActive(ctx, clientID, false, meta)
}

// ReactivateClient flips a deactivated client back to active.
func (l *Ledger) ReactivateClient(ctx context.Context, clientID string, meta Meta) (*models.Client, error) {
	return l.setClientActive(ctx, clientID, true, meta)
}

func (l *Ledger) setClientActive(ctx context.Context, clientID string, active bool, meta Meta) (*models.Client, error) {
	action := models.AuditActionClientDeactivated
	if active {
		action = models.AuditActionClientReactivated
	}

	var client models.Client
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", clientID).First(&client).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: client %q", ErrNotFound, clientID)
			}
			return err
		}

		if err := tx.Model(&client).Update("is_active", active).Error; err != nil {
			return err
		}
		client.IsActive = active

		_, err := l.appendAudit(tx, AuditInput{
			ClientID:     clientID,
			Action:       action,
			ResourceType: models.ResourceTypeClient,
			ResourceID:   clientID,
			Meta:         meta,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}
