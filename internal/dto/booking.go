package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
)

// SearchBookingsParams defines query parameters for the booking candidate search.
type SearchBookingsParams struct {
	Query         string   `form:"q" binding:"max=200"`
	Window        string   `form:"window" binding:"omitempty,oneof=TODAY YESTERDAY LAST_7_DAYS"`
	Statuses      []string `form:"status"`
	ReferenceDate string   `form:"referenceDate" binding:"omitempty,datetime=2006-01-02"`
}

// ToFilter converts the query parameters into a domain search filter.
func (p SearchBookingsParams) ToFilter() (domain.BookingSearchFilter, error) {
	window, err := domain.ParseDateWindow(p.Window)
	if err != nil {
		return domain.BookingSearchFilter{}, err
	}
	f := domain.BookingSearchFilter{
		Query:    p.Query,
		Window:   window,
		Statuses: p.Statuses,
	}
	if p.ReferenceDate != "" {
		d, err := time.Parse(time.DateOnly, p.ReferenceDate)
		if err != nil {
			return domain.BookingSearchFilter{}, fmt.Errorf("invalid referenceDate: %w", err)
		}
		f.ReferenceDate = &d
	}
	return f, nil
}

// ResolveBookingParams defines query parameters for resolving a reference.
type ResolveBookingParams struct {
	Reference string `form:"reference"`
}

// ListBookingsResponse wraps the ranked booking candidates.
type ListBookingsResponse struct {
	Bookings []domain.BookingRecord `json:"bookings"`
}
