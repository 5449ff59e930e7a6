package memory

import (
	"context"
	"strings"
	"time"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/bookings"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
)

func (s *Store) GetBooking(_ context.Context, companyID, bookingNo string) (*domain.BookingRecord, error) {
	ref := strings.TrimSpace(bookingNo)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.CompanyID == companyID && strings.EqualFold(b.BookingNo, ref) {
			b.LinkedEntriesCount = s.linkedEntries(b.CompanyID, b.BookingNo)
			return &b, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// SearchBookings filters the seeded registry; ranking is left to the caller.
func (s *Store) SearchBookings(_ context.Context, companyID string, filter domain.BookingSearchFilter, now time.Time) ([]domain.BookingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := bookings.Filter(s.bookings, companyID, filter, now)
	for i := range out {
		out[i].LinkedEntriesCount = s.linkedEntries(out[i].CompanyID, out[i].BookingNo)
	}
	return out, nil
}
