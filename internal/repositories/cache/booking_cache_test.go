package cache

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	"github.com/SscSPs/entry_workbench/internal/repositories/memory"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func TestBookingKey_NormalisesReference(t *testing.T) {
	assert.Equal(t, "booking:cce:bk-001", bookingKey("cce", "  BK-001 "))
}

func TestGetBooking_NilClientPassesThrough(t *testing.T) {
	registry := NewBookingRegistry(memory.NewStore(memory.DemoSeed(now)), nil, time.Minute)

	rec, err := registry.GetBooking(context.Background(), "cce", "bk-002")
	require.NoError(t, err)
	assert.Equal(t, "b2", rec.BookingID)

	_, err = registry.GetBooking(context.Background(), "cce", "BK-404")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetBooking_UnreachableRedisFallsBack(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	registry := NewBookingRegistry(memory.NewStore(memory.DemoSeed(now)), client, time.Minute)

	rec, err := registry.GetBooking(context.Background(), "mfl", "BK-001")
	require.NoError(t, err)
	assert.Equal(t, "b4", rec.BookingID)
}

func TestSearchBookings_Delegates(t *testing.T) {
	registry := NewBookingRegistry(memory.NewStore(memory.DemoSeed(now)), nil, time.Minute)

	got, err := registry.SearchBookings(context.Background(), "cce", domain.BookingSearchFilter{Query: "harbor"}, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "BK-003", got[0].BookingNo)
}
