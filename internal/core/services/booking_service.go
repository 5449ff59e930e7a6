package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/bookings"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/entry_workbench/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/entry_workbench/internal/core/ports/services"
	"github.com/SscSPs/entry_workbench/internal/platform/metrics"
)

// bookingService resolves references against the booking registry.
type bookingService struct {
	BaseService
	registry portsrepo.BookingRegistry
}

// NewBookingService creates a new BookingService.
func NewBookingService(registry portsrepo.BookingRegistry, options ...Option) portssvc.BookingSvcFacade {
	opts := buildOptions(options)
	return &bookingService{
		BaseService: BaseService{Clock: opts.clock},
		registry:    registry,
	}
}

var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

func (s *bookingService) ResolveBooking(ctx context.Context, companyID, reference string) (domain.BookingLink, error) {
	ref := bookings.NormalizeReference(reference)
	if ref == "" {
		metrics.BookingResolutionsTotal.WithLabelValues("none").Inc()
		return domain.NoBookingLink(), nil
	}

	var match *domain.BookingRecord
	rec, err := s.registry.GetBooking(ctx, companyID, ref)
	switch {
	case err == nil:
		match = rec
	case errors.Is(err, apperrors.ErrNotFound):
	default:
		s.LogError(ctx, err, "Booking registry lookup failed",
			slog.String("company_id", companyID),
			slog.String("reference", ref))
		return domain.BookingLink{}, err
	}

	link := bookings.Link(companyID, ref, match)
	if link.Verified() {
		metrics.BookingResolutionsTotal.WithLabelValues("verified").Inc()
	} else {
		metrics.BookingResolutionsTotal.WithLabelValues("unverified").Inc()
	}
	s.LogDebug(ctx, "Booking reference resolved", slog.String("company_id", companyID), slog.String("link", link.String()))
	return link, nil
}

func (s *bookingService) SearchBookingCandidates(ctx context.Context, companyID string, filter domain.BookingSearchFilter) ([]domain.BookingRecord, error) {
	if strings.TrimSpace(companyID) == "" {
		return nil, apperrors.NewValidationError(domain.FieldCompanyID, "required")
	}

	now := s.Now()
	records, err := s.registry.SearchBookings(ctx, companyID, filter, now)
	if err != nil {
		s.LogError(ctx, err, "Booking registry search failed", slog.String("company_id", companyID))
		return nil, err
	}

	ranked := bookings.Search(records, companyID, filter, now)
	s.LogDebug(ctx, "Booking candidates ranked",
		slog.String("company_id", companyID),
		slog.Int("candidates", len(ranked)))
	return ranked, nil
}
