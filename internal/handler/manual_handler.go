package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ziebelle/move37/internal/extract"
	"github.com/ziebelle/move37/internal/service"
)

// ManualHandler handles manual CRUD and ingestion endpoints.
type ManualHandler struct {
	manualSvc service.ManualService
	ingestSvc service.IngestService
}

// NewManualHandler creates a new ManualHandler.
func NewManualHandler(manualSvc service.ManualService, ingestSvc service.IngestService) *ManualHandler {
	return &ManualHandler{manualSvc: manualSvc, ingestSvc: ingestSvc}
}

// List handles GET /api/v1/manuals
func (h *ManualHandler) List(c *gin.Context) {
	manuals, err := h.manualSvc.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, manuals)
}

// GetByID handles GET /api/v1/manuals/:id
func (h *ManualHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "manual id must be an integer")
		return
	}

	detail, err := h.manualSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, detail)
}

// Ingest handles POST /api/v1/manuals
// The request body is an extracted manual document. A replay of an
// already-ingested source path answers 200 with the existing ID instead
// of 201.
func (h *ManualHandler) Ingest(c *gin.Context) {
	var raw extract.RawManual
	decoder := json.NewDecoder(c.Request.Body)
	if err := decoder.Decode(&raw); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be a valid manual document")
		return
	}

	id, created, err := h.ingestSvc.Ingest(c.Request.Context(), &raw)
	if err != nil {
		HandleError(c, err)
		return
	}
	if created {
		RespondCreated(c, gin.H{"manual_id": id})
		return
	}
	RespondOK(c, gin.H{"manual_id": id})
}

// Delete handles DELETE /api/v1/manuals/:id
func (h *ManualHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "manual id must be an integer")
		return
	}

	if err := h.manualSvc.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
