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

// rfpHandler handles HTTP requests for the payment request attached to an entry.
type rfpHandler struct {
	rfpService portssvc.RFPSvcFacade
}

func newRFPHandler(rs portssvc.RFPSvcFacade) *rfpHandler {
	return &rfpHandler{rfpService: rs}
}

// RegisterRFPRoutes registers the RFP routes nested under an entry.
func RegisterRFPRoutes(rg *gin.RouterGroup, rfpService portssvc.RFPSvcFacade) {
	h := newRFPHandler(rfpService)

	rfp := rg.Group("/entries/:entryID/rfp")
	{
		rfp.POST("", h.attachRFP)
		rfp.GET("", h.getRFP)
		rfp.DELETE("", h.detachRFP)
		rfp.POST("/transitions", h.transitionRFP)
	}
}

func (h *rfpHandler) attachRFP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("entryID")))
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	rfp, err := h.rfpService.AttachRFP(c.Request.Context(), actor, c.Param("entryID"))
	if err != nil {
		respondError(c, logger, err, "attach rfp")
		return
	}

	logger.Info("RFP attached", slog.String("rfp_id", rfp.RFPID))
	c.JSON(http.StatusCreated, dto.ToRFPResponse(rfp))
}

func (h *rfpHandler) getRFP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("entryID")))

	rfp, err := h.rfpService.GetRFP(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		respondError(c, logger, err, "retrieve rfp")
		return
	}
	c.JSON(http.StatusOK, dto.ToRFPResponse(rfp))
}

func (h *rfpHandler) transitionRFP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("entryID")))
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	var req dto.RFPTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	target, err := domain.ParseRFPStatus(string(req.TargetStatus))
	if err != nil {
		respondFieldError(c, logger, "targetStatus", err)
		return
	}
	req.TargetStatus = target
	logger.Info("Received rfp transition", slog.String("target_status", string(req.TargetStatus)), slog.Int64("expected_version", req.ExpectedVersion))

	rfp, err := h.rfpService.TransitionRFP(c.Request.Context(), actor, c.Param("entryID"), req)
	if err != nil {
		respondError(c, logger, err, "transition rfp")
		return
	}

	logger.Info("RFP transitioned", slog.String("status", string(rfp.Status)), slog.Int64("version", rfp.Version))
	c.JSON(http.StatusOK, dto.ToRFPResponse(rfp))
}

func (h *rfpHandler) detachRFP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("entryID")))
	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	var params dto.DetachRFPParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	if err := h.rfpService.DetachRFP(c.Request.Context(), actor, c.Param("entryID"), params.ExpectedVersion); err != nil {
		respondError(c, logger, err, "detach rfp")
		return
	}

	logger.Info("RFP detached")
	c.Status(http.StatusNoContent)
}
