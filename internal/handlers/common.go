package handlers

import (
	"errors"
	"time"

	"github.com/centuriesmutual/activity-ledger/internal/models"
	"github.com/centuriesmutual/activity-ledger/internal/services"
	"github.com/centuriesmutual/activity-ledger/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// ClientResponse is the API shape of a client record.
type ClientResponse struct {
	ClientID  string                 `json:"client_id"`
	Email     string                 `json:"email"`
	Phone     string                 `json:"phone,omitempty"`
	FirstName string                 `json:"first_name"`
	LastName  string                 `json:"last_name"`
	IsActive  bool                   `json:"is_active"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// MessageResponse is the API shape of a message record.
type MessageResponse struct {
	MessageID   string                 `json:"message_id"`
	ClientID    string                 `json:"client_id"`
	MessageType string                 `json:"message_type"`
	Content     string                 `json:"content"`
	Status      string                 `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
	DeliveredAt *time.Time             `json:"delivered_at,omitempty"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// DocumentResponse is the API shape of a document record.
type DocumentResponse struct {
	DocumentID   string                 `json:"document_id"`
	ClientID     string                 `json:"client_id"`
	DocumentType string                 `json:"document_type"`
	FilePath     string                 `json:"file_path"`
	FileSize     int64                  `json:"file_size"`
	SharedLink   string                 `json:"shared_link,omitempty"`
	ExpiresAt    *time.Time             `json:"expires_at,omitempty"`
	AccessCount  int64                  `json:"access_count"`
	CreatedAt    time.Time              `json:"created_at"`
	Metadata     map[string]interface{} `json:"metadata"`
}

// AuditEventResponse is the API shape of an audit event.
type AuditEventResponse struct {
	ClientID     string                 `json:"client_id"`
	Action       string                 `json:"action"`
	ResourceType string                 `json:"resource_type"`
	ResourceID   string                 `json:"resource_id"`
	Timestamp    time.Time              `json:"timestamp"`
	IPAddress    string                 `json:"ip_address,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty"`
	Metadata     map[string]interface{} `json:"metadata"`
}

func clientResponse(c *models.Client) ClientResponse {
	md, _ := c.Metadata.AsMap()
	return ClientResponse{
		ClientID:  c.ClientID,
		Email:     c.Email,
		Phone:     c.Phone,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		IsActive:  c.IsActive,
		Metadata:  md,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func messageResponse(m *models.Message) MessageResponse {
	md, _ := m.Metadata.AsMap()
	return MessageResponse{
		MessageID:   m.MessageID,
		ClientID:    m.ClientID,
		MessageType: m.MessageType,
		Content:     m.Content,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		DeliveredAt: m.DeliveredAt,
		Metadata:    md,
	}
}

func documentResponse(d *models.Document) DocumentResponse {
	md, _ := d.Metadata.AsMap()
	return DocumentResponse{
		DocumentID:   d.DocumentID,
		ClientID:     d.ClientID,
		DocumentType: d.DocumentType,
		FilePath:     d.FilePath,
		FileSize:     d.FileSize,
		SharedLink:   d.SharedLink,
		ExpiresAt:    d.ExpiresAt,
		AccessCount:  d.AccessCount,
		CreatedAt:    d.CreatedAt,
		Metadata:     md,
	}
}

func auditEventResponse(e *models.AuditEvent) AuditEventResponse {
	md, _ := e.Metadata.AsMap()
	return AuditEventResponse{
		ClientID:     e.ClientID,
		Action:       e.Action,
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		Timestamp:    e.Timestamp,
		IPAddress:    e.IPAddress,
		UserAgent:    e.UserAgent,
		Metadata:     md,
	}
}

// serviceError maps ledger error kinds onto protocol status codes; this is
// the only place the two vocabularies meet.
func serviceError(c *fiber.Ctx, err error, errorType string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrDuplicateKey):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusConflict, errorType)
	case errors.Is(err, services.ErrInvalidTransition):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusConflict, errorType)
	case errors.Is(err, services.ErrForeignKeyViolation):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnprocessableEntity, errorType)
	case errors.Is(err, services.ErrInvalidArgument):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, errorType)
	case errors.Is(err, services.ErrLinkExpired):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusGone, errorType)
	case errors.Is(err, services.ErrRateLimited):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusTooManyRequests, errorType)
	case errors.Is(err, services.ErrTimeout):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusServiceUnavailable, errorType)
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
}
