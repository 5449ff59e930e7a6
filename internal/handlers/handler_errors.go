package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the HTTP status taxonomy. InvalidState is
// checked before NotFound because attaching to a missing entry carries both.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := http.StatusInternalServerError
	body := dto.ErrorResponse{Error: "Failed to " + action}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
		body.Error = err.Error()
		if fields, ok := apperrors.FieldErrors(err); ok {
			body.Error = "Validation failed"
			body.Fields = fields
		}
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
		body.Error = err.Error()
	case errors.Is(err, apperrors.ErrInvalidState):
		status = http.StatusUnprocessableEntity
		body.Error = err.Error()
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
		body.Error = "Version conflict: reload and retry"
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		body.Error = "Not found"
	}

	if status == http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.String("action", action), slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, body)
}

// respondBindError reports a request that failed to bind.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	if fields, ok := bindingFieldErrors(err); ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Fields: fields})
		return
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// respondFieldError rejects a single malformed request field with 400.
func respondFieldError(c *gin.Context, logger *slog.Logger, field string, err error) {
	logger.Warn("Invalid request field", slog.String("field", field), slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Fields: map[string]string{field: err.Error()}})
}
