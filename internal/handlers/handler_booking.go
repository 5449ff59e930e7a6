package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/entry_workbench/internal/core/ports/services"
	"github.com/SscSPs/entry_workbench/internal/dto"
	"github.com/SscSPs/entry_workbench/internal/middleware"
	"github.com/gin-gonic/gin"
)

type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{bookingService: bs}
}

// RegisterBookingRoutes registers the booking lookup routes, scoped per company.
func RegisterBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/companies/:companyID/bookings")
	{
		bookings.GET("", h.searchBookings)
		bookings.GET("/resolve", h.resolveBooking)
	}
}

func (h *bookingHandler) searchBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_id", c.Param("companyID")))

	var params dto.SearchBookingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	records, err := h.bookingService.SearchBookingCandidates(c.Request.Context(), c.Param("companyID"), filter)
	if err != nil {
		respondError(c, logger, err, "search bookings")
		return
	}

	logger.Info("Booking candidates listed", slog.Int("count", len(records)))
	c.JSON(http.StatusOK, dto.ListBookingsResponse{Bookings: records})
}

func (h *bookingHandler) resolveBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("company_id", c.Param("companyID")))

	var params dto.ResolveBookingParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	link, err := h.bookingService.ResolveBooking(c.Request.Context(), c.Param("companyID"), params.Reference)
	if err != nil {
		respondError(c, logger, err, "resolve booking")
		return
	}
	c.JSON(http.StatusOK, link)
}
