package pgsql

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/entry_workbench/internal/core/ports/repositories"
	"github.com/SscSPs/entry_workbench/internal/models"
	"github.com/SscSPs/entry_workbench/internal/utils/mapping"
	"github.com/SscSPs/entry_workbench/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = `entry_id, kind, amount, company_id, account_id, category_id, booking_ref,
	booking_company_id, is_no_booking, payee, payment_method, note, occurred_on, status,
	attachment_count, requested_by, requested_on, approved_by, approved_on, rejected_by,
	rejected_on, rejection_reason, posted_by, posted_on,
	created_at, created_by, last_updated_at, last_updated_by, version`

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for entry data.
func newPgxEntryRepository(pool *pgxpool.Pool) *PgxEntryRepository {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

func scanEntry(row pgx.Row) (models.Entry, error) {
	var m models.Entry
	err := row.Scan(
		&m.EntryID, &m.Kind, &m.Amount, &m.CompanyID, &m.AccountID, &m.CategoryID, &m.BookingRef,
		&m.BookingCompanyID, &m.IsNoBooking, &m.Payee, &m.PaymentMethod, &m.Note, &m.OccurredOn, &m.Status,
		&m.AttachmentCount, &m.RequestedBy, &m.RequestedOn, &m.ApprovedBy, &m.ApprovedOn, &m.RejectedBy,
		&m.RejectedOn, &m.RejectionReason, &m.PostedBy, &m.PostedOn,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.Version,
	)
	return m, err
}

// SaveEntry inserts a new entry at version 1.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	m := mapping.ToModelEntry(entry)
	query := `
		INSERT INTO entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, 1);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.Kind, m.Amount, m.CompanyID, m.AccountID, m.CategoryID, m.BookingRef,
		m.BookingCompanyID, m.IsNoBooking, m.Payee, m.PaymentMethod, m.Note, m.OccurredOn, m.Status,
		m.AttachmentCount, m.RequestedBy, m.RequestedOn, m.ApprovedBy, m.ApprovedOn, m.RejectedBy,
		m.RejectedOn, m.RejectionReason, m.PostedBy, m.PostedOn,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewAppError(409, "entry ID "+m.EntryID+" already exists", apperrors.ErrConflict)
		}
		return apperrors.NewAppError(500, "failed to save entry "+m.EntryID, err)
	}
	return nil
}

// FindEntryByID retrieves an entry by its ID.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_id = $1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by ID "+entryID, err)
	}
	e := mapping.ToDomainEntry(m)
	return &e, nil
}

// ListEntries retrieves a page of entries using token-based pagination.
// Ordering is occurred_on DESC, created_at DESC, entry_id DESC; the token is the last row returned.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, filter portsrepo.EntryListFilter, limit int, nextToken *string) ([]domain.Entry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	var conds []string
	var args []any
	addCond := func(clause string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.ReplaceAll(clause, "?", "$"+strconv.Itoa(len(args))))
	}
	if filter.CompanyID != "" {
		addCond("company_id = ?", filter.CompanyID)
	}
	if filter.Status != "" {
		addCond("status = ?", string(filter.Status))
	}
	if filter.Kind != "" {
		addCond("kind = ?", string(filter.Kind))
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeEntryCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("nextToken", "invalid pagination token")
		}
		args = append(args, cursor.OccurredOn, cursor.CreatedAt, cursor.EntryID)
		n := len(args)
		conds = append(conds, "(occurred_on, created_at, entry_id) < ($"+strconv.Itoa(n-2)+", $"+strconv.Itoa(n-1)+", $"+strconv.Itoa(n)+")")
	}

	query := `SELECT ` + entryColumns + ` FROM entries`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, fetchLimit)
	query += " ORDER BY occurred_on DESC, created_at DESC, entry_id DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query entries", err)
	}
	defer rows.Close()

	results := make([]models.Entry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating entry rows", err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		last := results[limit-1]
		token := pagination.EncodeEntryCursor(pagination.EntryCursor{
			OccurredOn: last.OccurredOn,
			CreatedAt:  last.CreatedAt,
			EntryID:    last.EntryID,
		})
		nextTokenVal = &token
		results = results[:limit]
	}

	return mapping.ToDomainEntrySlice(results), nextTokenVal, nil
}

// UpdateEntry overwrites the mutable columns when the stored version matches.
func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry, expectedVersion int64) (*domain.Entry, error) {
	return updateEntry(ctx, r.Pool, entry, expectedVersion)
}

func updateEntry(ctx context.Context, q querier, entry domain.Entry, expectedVersion int64) (*domain.Entry, error) {
	m := mapping.ToModelEntry(entry)
	query := `
		UPDATE entries SET
			kind = $2, amount = $3, company_id = $4, account_id = $5, category_id = $6, booking_ref = $7,
			booking_company_id = $8, is_no_booking = $9, payee = $10, payment_method = $11, note = $12,
			occurred_on = $13, status = $14, attachment_count = $15, requested_by = $16, requested_on = $17,
			approved_by = $18, approved_on = $19, rejected_by = $20, rejected_on = $21, rejection_reason = $22,
			posted_by = $23, posted_on = $24, last_updated_at = $25, last_updated_by = $26,
			version = version + 1
		WHERE entry_id = $1 AND version = $27
		RETURNING version;
	`
	var newVersion int64
	err := q.QueryRow(ctx, query,
		m.EntryID, m.Kind, m.Amount, m.CompanyID, m.AccountID, m.CategoryID, m.BookingRef,
		m.BookingCompanyID, m.IsNoBooking, m.Payee, m.PaymentMethod, m.Note,
		m.OccurredOn, m.Status, m.AttachmentCount, m.RequestedBy, m.RequestedOn,
		m.ApprovedBy, m.ApprovedOn, m.RejectedBy, m.RejectedOn, m.RejectionReason,
		m.PostedBy, m.PostedOn, m.LastUpdatedAt, m.LastUpdatedBy,
		expectedVersion,
	).Scan(&newVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, missOrConflict(ctx, q, "entries", "entry_id", entry.EntryID)
		}
		return nil, apperrors.NewAppError(500, "failed to update entry "+entry.EntryID, err)
	}
	entry.Version = newVersion
	return &entry, nil
}
