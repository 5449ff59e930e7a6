package pgsql

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/bookings"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/entry_workbench/internal/core/ports/repositories"
	"github.com/SscSPs/entry_workbench/internal/models"
	"github.com/SscSPs/entry_workbench/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// bookingSelect also counts the entries verified against each booking.
const bookingSelect = `
	SELECT b.booking_id, b.booking_no, b.company_id, b.client, b.origin, b.destination,
	       b.booking_date, b.eta, b.status,
	       (SELECT count(*) FROM entries e
	         WHERE e.booking_company_id = b.company_id AND lower(e.booking_ref) = lower(b.booking_no))
	FROM bookings b
`

type PgxBookingRepository struct {
	BaseRepository
}

// newPgxBookingRepository creates a read-only repository over the booking registry.
func newPgxBookingRepository(pool *pgxpool.Pool) *PgxBookingRepository {
	return &PgxBookingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BookingRegistry = (*PgxBookingRepository)(nil)

func scanBooking(row pgx.Row) (models.Booking, error) {
	var m models.Booking
	err := row.Scan(&m.BookingID, &m.BookingNo, &m.CompanyID, &m.Client, &m.Origin, &m.Destination,
		&m.BookingDate, &m.ETA, &m.Status, &m.LinkedEntriesCount)
	return m, err
}

// GetBooking finds a booking by number within a company, ignoring case.
func (r *PgxBookingRepository) GetBooking(ctx context.Context, companyID, bookingNo string) (*domain.BookingRecord, error) {
	query := bookingSelect + ` WHERE b.company_id = $1 AND lower(b.booking_no) = lower($2) LIMIT 1;`
	m, err := scanBooking(r.Pool.QueryRow(ctx, query, companyID, strings.TrimSpace(bookingNo)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find booking "+bookingNo, err)
	}
	rec := mapping.ToDomainBooking(m)
	return &rec, nil
}

// SearchBookings narrows the registry in SQL. Ranking is left to the caller.
func (r *PgxBookingRepository) SearchBookings(ctx context.Context, companyID string, filter domain.BookingSearchFilter, now time.Time) ([]domain.BookingRecord, error) {
	args := []any{companyID}
	conds := []string{"b.company_id = $1"}
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		p := next("%" + escapeLike(q) + "%")
		conds = append(conds, "(b.booking_no ILIKE "+p+" OR b.client ILIKE "+p+" OR b.origin ILIKE "+p+" OR b.destination ILIKE "+p+")")
	}
	if from, to, ok := bookings.WindowBounds(filter.Window, now); ok {
		conds = append(conds, "b.booking_date >= "+next(from)+" AND b.booking_date < "+next(to))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, strings.ToLower(strings.TrimSpace(s)))
		}
		conds = append(conds, "lower(b.status) = ANY("+next(statuses)+")")
	}

	query := bookingSelect + " WHERE " + strings.Join(conds, " AND ") + ";"
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to search bookings for company "+companyID, err)
	}
	defer rows.Close()

	results := []models.Booking{}
	for rows.Next() {
		m, err := scanBooking(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan booking row", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating booking rows", err)
	}
	return mapping.ToDomainBookingSlice(results), nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
