package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ziebelle/move37/internal/service"
)

// QAHandler handles the question answering endpoint.
type QAHandler struct {
	qaSvc service.QAService
}

// NewQAHandler creates a new QAHandler.
func NewQAHandler(qaSvc service.QAService) *QAHandler {
	return &QAHandler{qaSvc: qaSvc}
}

type qaRequest struct {
	Question string `json:"question" binding:"required"`
}

// Answer handles POST /api/v1/qa
func (h *QAHandler) Answer(c *gin.Context) {
	var req qaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "question is required")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "question is required")
		return
	}

	answer, err := h.qaSvc.Answer(c.Request.Context(), req.Question)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"answer": answer})
}
