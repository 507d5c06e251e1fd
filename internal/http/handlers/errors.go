package handlers

import (
	"net/http"

	"airline/internal/domain"
	"airline/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads of the JSON endpoints.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func classify(err error) (status int, code, message string) {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest, "validation_error", err.Error()
	case domain.IsNotFound(err):
		return http.StatusNotFound, "not_found", err.Error()
	case domain.IsConflict(err):
		return http.StatusConflict, "conflict", err.Error()
	default:
		return http.StatusInternalServerError, "internal_error", "ocurrio un error interno"
	}
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Message:   message,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to JSON responses.
func RespondDomainError(c *gin.Context, err error) {
	status, code, msg := classify(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	respondError(c, status, code, msg)
}

// respondPageError is RespondDomainError for the HTML routes.
func respondPageError(c *gin.Context, err error) {
	status, _, msg := classify(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	renderError(c, status, msg)
}

func renderError(c *gin.Context, status int, msg string) {
	c.HTML(status, "error.html", gin.H{
		"Title":     "Error",
		"Status":    status,
		"Message":   msg,
		"RequestID": middleware.GetRequestID(c),
	})
	c.Abort()
}
