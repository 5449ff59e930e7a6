package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	"github.com/SscSPs/entry_workbench/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveBooking(t *testing.T) {
	ctx := context.Background()
	registry := new(MockBookingRegistry)
	svc := services.NewBookingService(registry, services.WithClock(func() time.Time { return fixedNow }))

	registry.On("GetBooking", mock.Anything, "cce", "bk-001").Return(bookingBK001(), nil).Once()
	registry.On("GetBooking", mock.Anything, "cce", "BK-404").Return(nil, apperrors.ErrNotFound).Once()
	registry.On("GetBooking", mock.Anything, "cce", "BK-500").Return(nil, assert.AnError).Once()

	t.Run("exact match verifies", func(t *testing.T) {
		link, err := svc.ResolveBooking(ctx, "cce", "  bk-001 ")
		require.NoError(t, err)
		assert.True(t, link.Verified())
		rec, ok := link.Booking()
		require.True(t, ok)
		assert.Equal(t, "BK-001", rec.BookingNo)
	})

	t.Run("unknown reference stays unverified", func(t *testing.T) {
		link, err := svc.ResolveBooking(ctx, "cce", "BK-404")
		require.NoError(t, err)
		assert.False(t, link.Verified())
		assert.Equal(t, "BK-404", link.Reference())
	})

	t.Run("blank reference is none without a lookup", func(t *testing.T) {
		link, err := svc.ResolveBooking(ctx, "cce", "   ")
		require.NoError(t, err)
		assert.True(t, link.IsNone())
	})

	t.Run("registry failure propagates", func(t *testing.T) {
		_, err := svc.ResolveBooking(ctx, "cce", "BK-500")
		assert.ErrorIs(t, err, assert.AnError)
	})

	registry.AssertExpectations(t)
}

func TestSearchBookingCandidates_Ranks(t *testing.T) {
	ctx := context.Background()
	registry := new(MockBookingRegistry)
	svc := services.NewBookingService(registry, services.WithClock(func() time.Time { return fixedNow }))

	filter := domain.BookingSearchFilter{Query: "acme"}
	records := []domain.BookingRecord{
		{BookingNo: "BK-3", CompanyID: "cce", Client: "Acme", Status: "For delivery", BookingDate: fixedNow},
		{BookingNo: "BK-1", CompanyID: "cce", Client: "Acme", Status: domain.BookingStatusDelivered, BookingDate: fixedNow.AddDate(0, 0, -3)},
		{BookingNo: "BK-2", CompanyID: "cce", Client: "Acme", Status: domain.BookingStatusClosed, BookingDate: fixedNow},
	}
	registry.On("SearchBookings", ctx, "cce", filter, fixedNow).Return(records, nil).Once()

	got, err := svc.SearchBookingCandidates(ctx, "cce", filter)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"BK-1", "BK-2", "BK-3"}, []string{got[0].BookingNo, got[1].BookingNo, got[2].BookingNo})
	registry.AssertExpectations(t)
}

func TestSearchBookingCandidates_RequiresCompany(t *testing.T) {
	registry := new(MockBookingRegistry)
	svc := services.NewBookingService(registry)

	_, err := svc.SearchBookingCandidates(context.Background(), " ", domain.BookingSearchFilter{})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	registry.AssertNotCalled(t, "SearchBookings", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
