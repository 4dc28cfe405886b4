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

const shareLinkBase = "https://share.centuriesmutual.com/d/"

// CreateDocumentInput carries the fields for document registration. The
// storage backend supplies FilePath and FileSize on upload completion.
// DocumentID is optional; a UUID is assigned when empty.
type CreateDocumentInput struct {
	DocumentID   string
	ClientID     string
	DocumentType string
	FilePath     string
	FileSize     int64
	Metadata     map[string]interface{}
}

// CreateDocument records a stored file for a client and audits the upload.
func (l *Ledger) CreateDocument(ctx context.Context, in CreateDocumentInput, meta Meta) (*models.Document, error) {
	if !models.ValidDocumentType(in.DocumentType) {
		return nil, fmt.Errorf("%w: unknown document type %q", ErrInvalidArgument, in.DocumentType)
	}
	if strings.TrimSpace(in.FilePath) == "" {
		return nil, fmt.Errorf("%w: file_path is required", ErrInvalidArgument)
	}
	if in.FileSize <= 0 {
		return nil, fmt.Errorf("%w: file_size must be positive, got %d", ErrInvalidArgument, in.FileSize)
	}
	if maxBytes := l.cfg.MaxFileSizeMB * 1024 * 1024; in.FileSize > maxBytes {
		return nil, fmt.Errorf("%w: file_size %d exceeds limit of %d MB", ErrInvalidArgument, in.FileSize, l.cfg.MaxFileSizeMB)
	}

	documentID := in.DocumentID
	if documentID == "" {
		documentID = uuid.New().String()
	}

	md, err := models.NewJSON(in.Metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: metadata: %v", ErrInvalidArgument, err)
	}

	doc := models.Document{
		DocumentID:   documentID,
		ClientID:     in.ClientID,
		DocumentType: in.DocumentType,
		FilePath:     in.FilePath,
		FileSize:     in.FileSize,
		Metadata:     md,
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
		if err := tx.Model(&models.Document{}).Where("document_id = ?", documentID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: document %q", ErrDuplicateKey, documentID)
		}

		if err := tx.Create(&doc).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: document %q", ErrDuplicateKey, documentID)
			}
			return err
		}

		_, err = l.appendAudit(tx, AuditInput{
			ClientID:     in.ClientID,
			Action:       models.AuditActionDocumentUploaded,
			ResourceType: models.ResourceTypeDocument,
			ResourceID:   documentID,
			Meta:         meta,
			Metadata:     map[string]interface{}{"document_type": in.DocumentType, "file_size": in.FileSize},
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetDocument looks up a document by its document_id.
func (l *Ledger) GetDocument(ctx context.Context, documentID string) (*models.Document, error) {
	var doc models.Document
	err := l.db.WithContext(ctx).Where("document_id = ?", documentID).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: document %q", ErrNotFound, documentID)
		}
		return nil, err
	}
	return &doc, nil
}

// ListClientDocuments returns a client's documents, newest first.
func (l *Ledger) ListClientDocuments(ctx context.Context, clientID string) ([]models.Document, error) {
	ok, err := clientExists(l.db.WithContext(ctx), clientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: client %q", ErrNotFound, clientID)
	}

	var docs []models.Document
	err = l.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC, id DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// CreateShareLink issues a fresh opaque link for a document, valid for ttl
// from now. Any prior link is overwritten and thereby invalidated. The new
// link and the "share_created" audit event commit together.
func (l *Ledger) CreateShareLink(ctx context.Context, documentID string, ttl time.Duration, meta Meta) (*models.Document, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("%w: ttl must be positive", ErrInvalidArgument)
	}

	link := shareLinkBase + uuid.New().String()
	expires := time.Now().UTC().Add(ttl)

	var out models.Document
	err := l.runWrite(ctx, func(tx *gorm.DB) error {
		var doc models.Document
		if err := tx.Where("document_id = ?", documentID).First(&doc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: document %q", ErrNotFound, documentID)
			}
			return err
		}

		res := tx.Model(&models.Document{}).
			Where("document_id = ?", documentID).
			Updates(map[string]interface{}{
				"shared_link": link,
				"expires_at":  &expires,
			})
		if res.Error != nil {
			return res.Error
		}

		_, err := l.appendAudit(tx, AuditInput{
			ClientID:     doc.ClientID,
			Action:       models.AuditActionShareCreated,
			ResourceType: models.ResourceTypeDocument,
			ResourceID:   documentID,
			Meta:         meta,
			Metadata:     map[string]interface{}{"expires_at": expires.Format(time.RFC3339)},
		})
		if err != nil {
			return err
		}

		return tx.Where("document_id = ?", documentID).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordAccess counts one retrieval of a document. A lapsed share link fails
// with ErrLinkExpired and leaves the count untouched. The increment happens
// in SQL against the stored value, so concurrent accesses all land; the
// increment and the "document_accessed" audit event commit together.
func (l *Ledger) RecordAccess(ctx context.Context, documentID string, meta Meta) (*models.Document, error) {
	var out models.Document
	err := l.runWrite(ctx, func(tx *gorm.DB) error {
		var doc models.Document
		if err := tx.Where("document_id = ?", documentID).First(&doc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: document %q", ErrNotFound, documentID)
			}
			return err
		}

		if doc.ExpiresAt != nil && !time.Now().UTC().Before(*doc.ExpiresAt) {
			return fmt.Errorf("%w: document %q expired at %s", ErrLinkExpired, documentID, doc.ExpiresAt.Format(time.RFC3339))
		}

		res := tx.Model(&models.Document{}).
			Where("document_id = ?", documentID).
			UpdateColumn("access_count", gorm.Expr("access_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}

		_, err := l.appendAudit(tx, AuditInput{
			ClientID:     doc.ClientID,
			Action:       models.AuditActionDocumentAccessed,
			ResourceType: models.ResourceTypeDocument,
			ResourceID:   documentID,
			Meta:         meta,
		})
		if err != nil {
			return err
		}

		return tx.Where("document_id = ?", documentID).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
