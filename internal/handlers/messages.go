package handlers

import (
	"github.com/centuriesmutual/activity-ledger/internal/middleware"
	"github.com/centuriesmutual/activity-ledger/internal/services"
	"github.com/centuriesmutual/activity-ledger/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// MessageHandler handles message lifecycle routes
type MessageHandler struct {
	Ledger *services.Ledger
}

type createMessageRequest struct {
	MessageID   string                 `json:"message_id"`
	ClientID    string                 `json:"client_id"`
	MessageType string                 `json:"message_type"`
	Content     string                 `json:"content"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type transitionMessageRequest struct {
	Status string `json:"status"`
}

// CreateMessage handles POST /api/messages
// @Summary Create a message
// @Description Record a new outbound message in status pending
// @Tags Messages
// @Accept json
// @Produce json
// @Param message body createMessageRequest true "Message payload"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 429 {object} utils.ErrorResponseStruct
// @Router /messages [post]
func (h *MessageHandler) CreateMessage(c *fiber.Ctx) error {
	var req createMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "createMessage")
	}

	msg, err := h.Ledger.CreateMessage(c.Context(), services.CreateMessageInput{
		MessageID:   req.MessageID,
		ClientID:    req.ClientID,
		MessageType: req.MessageType,
		Content:     req.Content,
		Metadata:    req.Metadata,
	}, middleware.MetaFromCtx(c))
	if err != nil {
		return serviceError(c, err, "createMessage")
	}

	return utils.SuccessResponse(c, messageResponse(msg), fiber.StatusCreated)
}

// GetMessage handles GET /api/messages/:messageId
// @Summary Get a message
// @Description Fetch a message record by its identifier
// @Tags Messages
// @Produce json
// @Param messageId path string true "Message ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /messages/{messageId} [get]
func (h *MessageHandler) GetMessage(c *fiber.Ctx) error {
	msg, err := h.Ledger.GetMessage(c.Context(), c.Params("messageId"))
	if err != nil {
		return serviceError(c, err, "getMessage")
	}
	return utils.SuccessResponse(c, messageResponse(msg), fiber.StatusOK)
}

// TransitionMessage handles POST /api/messages/:messageId/transition
// @Summary Transition a message
// @Description Move a message along the delivery lattice (pending, sent, delivered, failed)
// @Tags Messages
// @Accept json
// @Produce json
// @Param messageId path string true "Message ID"
// @Param transition body transitionMessageRequest true "Target status"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 503 {object} utils.ErrorResponseStruct
// @Router /messages/{messageId}/transition [post]
func (h *MessageHandler) TransitionMessage(c *fiber.Ctx) error {
	var req transitionMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "transitionMessage")
	}

	msg, err := h.Ledger.TransitionMessage(c.Context(), c.Params("messageId"), req.Status, middleware.MetaFromCtx(c))
	if err != nil {
		return serviceError(c, err, "transitionMessage")
	}

	return utils.SuccessResponse(c, messageResponse(msg), fiber.StatusOK)
}

// ListClientMessages handles GET /api/clients/:clientId/messages
// @Summary List a client's messages
// @Description Return the client's messages, newest first
// @Tags Messages
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {array} MessageResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /clients/{clientId}/messages [get]
func (h *MessageHandler) ListClientMessages(c *fiber.Ctx) error {
	msgs, err := h.Ledger.ListClientMessages(c.Context(), c.Params("clientId"))
	if err != nil {
		return serviceError(c, err, "listClientMessages")
	}

	out := make([]MessageResponse, 0, len(msgs))
	for i := range msgs {
		out = append(out, messageResponse(&msgs[i]))
	}
	return utils.SuccessResponse(c, out, fiber.StatusOK)
}
