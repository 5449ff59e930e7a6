package services

import (
	"context"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
)

// BookingSvcFacade resolves references and produces ranked candidate lists.
type BookingSvcFacade interface {
	// ResolveBooking turns a typed or pasted reference into a BookingLink.
	ResolveBooking(ctx context.Context, companyID, reference string) (domain.BookingLink, error)

	// SearchBookingCandidates returns the company's matching bookings, ranked.
	SearchBookingCandidates(ctx context.Context, companyID string, filter domain.BookingSearchFilter) ([]domain.BookingRecord, error)
}
