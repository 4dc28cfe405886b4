package handlers

import (
	"github.com/centuriesmutual/activity-ledger/internal/middleware"
	"github.com/centuriesmutual/activity-ledger/internal/services"
	"github.com/centuriesmutual/activity-ledger/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// ClientHandler handles client registry routes
type ClientHandler struct {
	Ledger *services.Ledger
}

type createClientRequest struct {
	ClientID  string                 `json:"client_id"`
	Email     string                 `json:"email"`
	Phone     string                 `json:"phone"`
	FirstName string                 `json:"first_name"`
	LastName  string                 `json:"last_name"`
	Metadata  map[string]interface{} `json:"metadata"`
}

type updateClientRequest struct {
	Phone     *string                `json:"phone"`
	FirstName *string                `json:"first_name"`
	LastName  *string                `json:"last_name"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// CreateClient handles POST /api/clients
// @Summary Register a client
// @Description Register a new client in the activity ledger
// @Tags Clients
// @Accept json
// @Produce json
// @Param client body createClientRequest true "Client payload"
// @Success 201 {object} ClientResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var req createClientRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "createClient")
	}

	client, err := h.Ledger.CreateClient(c.Context(), services.CreateClientInput{
		ClientID:  req.ClientID,
		Email:     req.Email,
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Metadata:  req.Metadata,
	}, middleware.MetaFromCtx(c))
	if err != nil {
		return serviceError(c, err, "createClient")
	}

	return utils.SuccessResponse(c, clientResponse(client), fiber.StatusCreated)
}

// GetClient handles GET /api/clients/:clientId
// @Summary Get a client
// @Description Fetch a client record by its external identifier
// @Tags Clients
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {object} ClientResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /clients/{clientId} [get]
func (h *ClientHandler) GetClient(c *fiber.Ctx) error {
	client, err := h.Ledger.GetClient(c.Context(), c.Params("clientId"))
	if err != nil {
		return serviceError(c, err, "getClient")
	}
	return utils.SuccessResponse(c, clientResponse(client), fiber.StatusOK)
}

// UpdateClient handles PATCH /api/clients/:clientId
// @Summary Update a client
// @Description Update contact fields on an existing client
// @Tags Clients
// @Accept json
// @Produce json
// @Param clientId path string true "Client ID"
// @Param client body updateClientRequest true "Fields to update"
// @Success 200 {object} ClientResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /clients/{clientId} [patch]
func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	var req updateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "updateClient")
	}

	client, err := h.Ledger.UpdateClient(c.Context(), c.Params("clientId"), services.UpdateClientInput{
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Metadata:  req.Metadata,
	}, middleware.MetaFromCtx(c))
	if err != nil {
		return serviceError(c, err, "updateClient")
	}

	return utils.SuccessResponse(c, clientResponse(client), fiber.StatusOK)
}

// DeactivateClient handles DELETE /api/clients/:clientId
// @Summary Deactivate a client
// @Description Mark a client inactive; existing messages and documents are retained
// @Tags Clients
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {object} ClientResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /clients/{clientId} [delete]
func (h *ClientHandler) DeactivateClient(c *fiber.Ctx) error {
	client, err := h.Ledger.DeactivateClient(c.Context(), c.Params("clientId"), middleware.MetaFromCtx(c))
	if err != nil {
		return serviceError(c, err, "deactivateClient")
	}
	return utils.SuccessResponse(c, clientResponse(client), fiber.StatusOK)
}

// ReactivateClient handles POST /api/clients/:clientId/reactivate
// @Summary Reactivate a client
// @Description Flip a deactivated client back to active
// @Tags Clients
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {object} ClientResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /clients/{clientId}/reactivate [post]
func (h *ClientHandler) ReactivateClient(c *fiber.Ctx) error {
	client, err := h.Ledger.ReactivateClient(c.Context(), c.Params("clientId"), middleware.MetaFromCtx(c))
	if err != nil {
		return serviceError(c, err, "reactivateClient")
	}
	return utils.SuccessResponse(c, clientResponse(client), fiber.StatusOK)
}

// GetClientStats handles GET /api/clients/:clientId/stats
// @Summary Get client activity statistics
// @Description Aggregate message and document counts plus last activity time
// @Tags Clients
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {object} services.Stats
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /clients/{clientId}/stats [get]
func (h *ClientHandler) GetClientStats(c *fiber.Ctx) error {
	stats, err := h.Ledger.GetStats(c.Context(), c.Params("clientId"))
	if err != nil {
		return serviceError(c, err, "getClientStats")
	}
	return utils.SuccessResponse(c, stats, fiber.StatusOK)
}

// ListClientAudit handles GET /api/clients/:clientId/audit
// @Summary List audit events for a client
// @Description Most recent audit events first, optionally limited
// @Tags Clients
// @Produce json
// @Param clientId path string true "Client ID"
// @Param limit query int false "Maximum number of events"
// @Success 200 {array} AuditEventResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /clients/{clientId}/audit [get]
func (h *ClientHandler) ListClientAudit(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	events, err := h.Ledger.ListAuditEvents(c.Context(), c.Params("clientId"), limit)
	if err != nil {
		return serviceError(c, err, "listClientAudit")
	}

	out := make([]AuditEventResponse, 0, len(events))
	for i := range events {
		out = append(out, auditEventResponse(&events[i]))
	}
	return utils.SuccessResponse(c, out, fiber.StatusOK)
}
