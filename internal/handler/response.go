package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ziebelle/move37/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrManualNotFound):
		return http.StatusNotFound, "MANUAL_NOT_FOUND", "manual not found"
	case errors.Is(err, domain.ErrMissingSourcePath):
		return http.StatusBadRequest, "MISSING_SOURCE_PATH", "manual has no source path"
	case errors.Is(err, domain.ErrDuplicateSourcePath):
		return http.StatusConflict, "DUPLICATE_SOURCE_PATH", "manual with this source path already exists"
	case errors.Is(err, domain.ErrInvalidContentKind):
		return http.StatusBadRequest, "INVALID_CONTENT_KIND", "section content type must be list, steps, or text"
	case errors.Is(err, domain.ErrInvalidContentShape):
		return http.StatusBadRequest, "INVALID_CONTENT_SHAPE", "section content does not match its declared type"
	case errors.Is(err, domain.ErrKnowledgeUnavailable):
		return http.StatusServiceUnavailable, "KNOWLEDGE_UNAVAILABLE", "no manual knowledge available yet"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
