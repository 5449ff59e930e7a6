package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
	portssvc "github.com/SscSPs/entry_workbench/internal/core/ports/services"
	"github.com/SscSPs/entry_workbench/internal/dto"
	"github.com/SscSPs/entry_workbench/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryHandler handles HTTP requests related to entries.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

// newEntryHandler creates a new entryHandler.
func newEntryHandler(es portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{entryService: es}
}

// RegisterEntryRoutes registers routes related to entries.
func RegisterEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.POST("/:entryID/transitions", h.transitionEntry)
		entries.GET("/:entryID/gate", h.evaluateTransition)
	}
}

// actorOrAbort fetches the authenticated actor, answering 401 when absent.
func actorOrAbort(c *gin.Context, logger *slog.Logger) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
	}
	return actor, ok
}

func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	logger.Info("Received request to create entry", slog.String("kind", string(req.Kind)), slog.String("company_id", req.CompanyID))

	entry, err := h.entryService.CreateEntry(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, logger, err, "create entry")
		return
	}

	logger.Info("Entry created successfully", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("entryID")))

	entry, err := h.entryService.GetEntry(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		respondError(c, logger, err, "retrieve entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listEntries serves the read-only report consumer.
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	resp, err := h.entryService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "list entries")
		return
	}

	logger.Info("Entries listed successfully", slog.Int("count", len(resp.Entries)))
	c.JSON(http.StatusOK, resp)
}

func (h *entryHandler) transitionEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("entryID")))
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	var req dto.TransitionEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	target, err := domain.ParseEntryStatus(string(req.TargetStatus))
	if err != nil {
		respondFieldError(c, logger, "targetStatus", err)
		return
	}
	req.TargetStatus = target
	logger.Info("Received entry transition", slog.String("target_status", string(req.TargetStatus)), slog.Int64("expected_version", req.ExpectedVersion))

	entry, err := h.entryService.Transition(c.Request.Context(), actor, c.Param("entryID"), req)
	if err != nil {
		respondError(c, logger, err, "transition entry")
		return
	}

	logger.Info("Entry transitioned", slog.String("status", string(entry.Status)), slog.Int64("version", entry.Version))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// evaluateTransition returns the gate decision for a prospective target without writing.
func (h *entryHandler) evaluateTransition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("entryID")))
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	target, err := domain.ParseEntryStatus(c.Query("targetStatus"))
	if err != nil {
		respondFieldError(c, logger, "targetStatus", err)
		return
	}

	decision, err := h.entryService.EvaluateTransition(c.Request.Context(), actor, c.Param("entryID"), target)
	if err != nil {
		respondError(c, logger, err, "evaluate transition")
		return
	}
	c.JSON(http.StatusOK, decision)
}
