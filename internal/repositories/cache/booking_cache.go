// Package cache holds read-through Redis decorators for repository ports.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/entry_workbench/internal/core/ports/repositories"
	"github.com/SscSPs/entry_workbench/internal/middleware"
	"github.com/SscSPs/entry_workbench/internal/platform/metrics"
	"github.com/redis/go-redis/v9"
)

// BookingRegistry caches GetBooking hits in Redis. Misses and searches go straight
// to the wrapped registry. A nil client disables caching.
type BookingRegistry struct {
	next   portsrepo.BookingRegistry
	client *redis.Client
	ttl    time.Duration
}

func NewBookingRegistry(next portsrepo.BookingRegistry, client *redis.Client, ttl time.Duration) *BookingRegistry {
	return &BookingRegistry{next: next, client: client, ttl: ttl}
}

var _ portsrepo.BookingRegistry = (*BookingRegistry)(nil)

func bookingKey(companyID, bookingNo string) string {
	return "booking:" + companyID + ":" + strings.ToLower(strings.TrimSpace(bookingNo))
}

func (r *BookingRegistry) GetBooking(ctx context.Context, companyID, bookingNo string) (*domain.BookingRecord, error) {
	if r.client == nil {
		return r.next.GetBooking(ctx, companyID, bookingNo)
	}
	key := bookingKey(companyID, bookingNo)

	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var rec domain.BookingRecord
		if jsonErr := json.Unmarshal(data, &rec); jsonErr == nil {
			metrics.BookingCacheTotal.WithLabelValues("hit").Inc()
			return &rec, nil
		}
		metrics.BookingCacheTotal.WithLabelValues("error").Inc()
	case errors.Is(err, redis.Nil):
		metrics.BookingCacheTotal.WithLabelValues("miss").Inc()
	default:
		metrics.BookingCacheTotal.WithLabelValues("error").Inc()
		middleware.GetLoggerFromCtx(ctx).Warn("booking cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	rec, err := r.next.GetBooking(ctx, companyID, bookingNo)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(rec); err == nil {
		if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("booking cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return rec, nil
}

func (r *BookingRegistry) SearchBookings(ctx context.Context, companyID string, filter domain.BookingSearchFilter, now time.Time) ([]domain.BookingRecord, error) {
	return r.next.SearchBookings(ctx, companyID, filter, now)
}
