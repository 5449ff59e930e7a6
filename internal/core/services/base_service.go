package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Clock func() time.Time
}

// Now returns the current time from the injected clock, in UTC.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// LogOutcome logs expected business failures at warn level and everything else at error level.
func (s *BaseService) LogOutcome(ctx context.Context, err error, msg string, keyvals ...any) {
	if outcomeOf(err) == outcomeError {
		s.LogError(ctx, err, msg, keyvals...)
		return
	}
	args := append([]any{slog.String("reason", err.Error())}, keyvals...)
	s.GetLogger(ctx).Warn(msg, args...)
}

const (
	outcomeOK           = "ok"
	outcomeValidation   = "validation"
	outcomeForbidden    = "forbidden"
	outcomeInvalidState = "invalid_state"
	outcomeConflict     = "conflict"
	outcomeNotFound     = "not_found"
	outcomeError        = "error"
)

// outcomeOf classifies err into a metrics label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, apperrors.ErrValidation):
		return outcomeValidation
	case errors.Is(err, apperrors.ErrForbidden):
		return outcomeForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, apperrors.ErrInvalidState):
		return outcomeInvalidState
	case errors.Is(err, apperrors.ErrConflict):
		return outcomeConflict
	default:
		return outcomeError
	}
}
