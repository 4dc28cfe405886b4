package handlers

import (
	"time"

	"github.com/centuriesmutual/activity-ledger/internal/middleware"
	"github.com/centuriesmutual/activity-ledger/internal/services"
	"github.com/centuriesmutual/activity-ledger/internal/types"
	"github.com/centuriesmutual/activity-ledger/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// DocumentHandler handles document registry routes
type DocumentHandler struct {
	Ledger *services.Ledger
}

type createDocumentRequest struct {
	DocumentID   string                 `json:"document_id"`
	ClientID     string                 `json:"client_id"`
	DocumentType string                 `json:"document_type"`
	FilePath     string                 `json:"file_path"`
	FileSize     int64                  `json:"file_size"`
	Metadata     map[string]interface{} `json:"metadata"`
}

// createShareRequest accepts ttl_hours as a JSON number or string; some
// storage callbacks serialize numerics as strings.
type createShareRequest struct {
	TTLHours types.FlexUint64 `json:"ttl_hours"`
}

// CreateDocument handles POST /api/documents
// @Summary Register a document
// @Description Record a stored file for a client
// @Tags Documents
// @Accept json
// @Produce json
// @Param document body createDocumentRequest true "Document payload"
// @Success 201 {object} DocumentResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /documents [post]
func (h *DocumentHandler) CreateDocument(c *fiber.Ctx) error {
	var req createDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "createDocument")
	}

	doc, err := h.Ledger.CreateDocument(c.Context(), services.CreateDocumentInput{
		DocumentID:   req.DocumentID,
		ClientID:     req.ClientID,
		DocumentType: req.DocumentType,
		FilePath:     req.FilePath,
		FileSize:     req.FileSize,
		Metadata:     req.Metadata,
	}, middleware.MetaFromCtx(c))
	if err != nil {
		return serviceError(c, err, "createDocument")
	}

	return utils.SuccessResponse(c, documentResponse(doc), fiber.StatusCreated)
}

// GetDocument handles GET /api/documents/:documentId
// @Summary Get a document
// @Description Fetch a document record by its identifier
// @Tags Documents
// @Produce json
// @Param documentId path string true "Document ID"
// @Success 200 {object} DocumentResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{documentId} [get]
func (h *DocumentHandler) GetDocument(c *fiber.Ctx) error {
	doc, err := h.Ledger.GetDocument(c.Context(), c.Params("documentId"))
	if err != nil {
		return serviceError(c, err, "getDocument")
	}
	return utils.SuccessResponse(c, documentResponse(doc), fiber.StatusOK)
}

// CreateShareLink handles POST /api/documents/:documentId/share
// @Summary Create a share link
// @Description Issue a fresh expiring share link for a document, replacing any prior link
// @Tags Documents
// @Accept json
// @Produce json
// @Param documentId path string true "Document ID"
// @Param share body createShareRequest false "Share options"
// @Success 200 {object} DocumentResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{documentId}/share [post]
func (h *DocumentHandler) CreateShareLink(c *fiber.Ctx) error {
	ttl := h.Ledger.Config().DefaultShareTTL
	if len(c.Body()) > 0 {
		var req createShareRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "createShareLink")
		}
		if req.TTLHours > 0 {
			ttl = time.Duration(req.TTLHours.Uint64()) * time.Hour
		}
	}

	doc, err := h.Ledger.CreateShareLink(c.Context(), c.Params("documentId"), ttl, middleware.MetaFromCtx(c))
	if err != nil {
		return serviceError(c, err, "createShareLink")
	}

	return utils.SuccessResponse(c, documentResponse(doc), fiber.StatusOK)
}

// RecordAccess handles POST /api/documents/:documentId/access
// @Summary Record a document access
// @Description Count one retrieval of a document; fails once the share link has lapsed
// @Tags Documents
// @Produce json
// @Param documentId path string true "Document ID"
// @Success 200 {object} DocumentResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 410 {object} utils.ErrorResponseStruct
// @Failure 503 {object} utils.ErrorResponseStruct
// @Router /documents/{documentId}/access [post]
func (h *DocumentHandler) RecordAccess(c *fiber.Ctx) error {
	doc, err := h.Ledger.RecordAccess(c.Context(), c.Params("documentId"), middleware.MetaFromCtx(c))
	if err != nil {
		return serviceError(c, err, "recordAccess")
	}
	return utils.SuccessResponse(c, documentResponse(doc), fiber.StatusOK)
}

// ListClientDocuments handles GET /api/clients/:clientId/documents
// @Summary List a client's documents
// @Description Return the client's documents, newest first
// @Tags Documents
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {array} DocumentResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /clients/{clientId}/documents [get]
func (h *DocumentHandler) ListClientDocuments(c *fiber.Ctx) error {
	docs, err := h.Ledger.ListClientDocuments(c.Context(), c.Params("clientId"))
	if err != nil {
		return serviceError(c, err, "listClientDocuments")
	}

	out := make([]DocumentResponse, 0, len(docs))
	for i := range docs {
		out = append(out, documentResponse(&docs[i]))
	}
	return utils.SuccessResponse(c, out, fiber.StatusOK)
}
