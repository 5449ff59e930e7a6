package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
)

// BookingRegistry is the read-only operational booking registry.
type BookingRegistry interface {
	// SearchBookings returns the company's bookings matching the filter, unranked.
	// Date windows are evaluated relative to now.
	SearchBookings(ctx context.Context, companyID string, filter domain.BookingSearchFilter, now time.Time) ([]domain.BookingRecord, error)

	// GetBooking finds a booking by its number (case-insensitive) within a company.
	// Returns apperrors.ErrNotFound when there is no such booking.
	GetBooking(ctx context.Context, companyID, bookingNo string) (*domain.BookingRecord, error)
}
