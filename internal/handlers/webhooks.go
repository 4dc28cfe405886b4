package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/centuriesmutual/activity-ledger/internal/middleware"
	"github.com/centuriesmutual/activity-ledger/internal/models"
	"github.com/centuriesmutual/activity-ledger/internal/services"
	"github.com/centuriesmutual/activity-ledger/internal/types"
	"github.com/centuriesmutual/activity-ledger/internal/utils"
	"github.com/gofiber/fiber/v2"
)

const signatureHeader = "X-Webhook-Signature"

// WebhookHandler ingests callbacks from the storage and delivery providers
// and translates them into ledger operations.
type WebhookHandler struct {
	Ledger *services.Ledger
}

type webhookEvent struct {
	EventType  string                 `json:"event_type"`
	ResourceID string                 `json:"resource_id"`
	TTLHours   types.FlexUint64       `json:"ttl_hours"`
	Metadata   map[string]interface{} `json:"metadata"`
}

// verifySignature checks the hex-encoded HMAC-SHA256 of the raw body against
// the shared webhook secret.
func (h *WebhookHandler) verifySignature(body []byte, signature string) bool {
	secret := h.Ledger.Config().WebhookSecret
	if secret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// HandleEvent handles POST /api/webhooks/events
// @Summary Ingest a provider callback
// @Description Verify the HMAC signature and apply the event to the ledger
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param X-Webhook-Signature header string true "Hex HMAC-SHA256 of the request body"
// @Param event body webhookEvent true "Provider event"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /webhooks/events [post]
func (h *WebhookHandler) HandleEvent(c *fiber.Ctx) error {
	body := c.Body()
	if !h.verifySignature(body, c.Get(signatureHeader)) {
		return utils.ErrorResponse(c, "invalid webhook signature", fiber.StatusUnauthorized, "webhookEvent")
	}

	var ev webhookEvent
	if err := c.BodyParser(&ev); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "webhookEvent")
	}

	meta := middleware.MetaFromCtx(c)
	ctx := c.Context()

	switch ev.EventType {
	case "document_shared":
		ttl := h.Ledger.Config().DefaultShareTTL
		if ev.TTLHours > 0 {
			ttl = time.Duration(ev.TTLHours.Uint64()) * time.Hour
		}
		doc, err := h.Ledger.CreateShareLink(ctx, ev.ResourceID, ttl, meta)
		if err != nil {
			return serviceError(c, err, "webhookEvent")
		}
		return utils.SuccessResponse(c, documentResponse(doc), fiber.StatusOK)

	case "document_accessed":
		doc, err := h.Ledger.RecordAccess(ctx, ev.ResourceID, meta)
		if err != nil {
			return serviceError(c, err, "webhookEvent")
		}
		return utils.SuccessResponse(c, documentResponse(doc), fiber.StatusOK)

	case "message_sent", "message_delivered", "message_failed":
		status := map[string]string{
			"message_sent":      models.MessageStatusSent,
			"message_delivered": models.MessageStatusDelivered,
			"message_failed":    models.MessageStatusFailed,
		}[ev.EventType]
		msg, err := h.Ledger.TransitionMessage(ctx, ev.ResourceID, status, meta)
		if err != nil {
			return serviceError(c, err, "webhookEvent")
		}
		return utils.SuccessResponse(c, messageResponse(msg), fiber.StatusOK)
	}

	return utils.ErrorResponse(c, "unknown event type: "+ev.EventType, fiber.StatusBadRequest, "webhookEvent")
}
