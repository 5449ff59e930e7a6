package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/entry_workbench/internal/core/ports/repositories"
	"github.com/SscSPs/entry_workbench/internal/models"
	"github.com/SscSPs/entry_workbench/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const rfpColumns = `rfp_id, entry_id, payee, amount, amount_in_words, company_id, booking_ref, category_id,
	justification, attachment_ids, due_date, payment_terms, cost_center, status,
	submitted_by, submitted_on, cancelled_by, cancelled_on, advanced_entry,
	created_at, created_by, last_updated_at, last_updated_by, version`

type PgxRFPRepository struct {
	BaseRepository
}

// newPgxRFPRepository creates a new repository for payment requests.
func newPgxRFPRepository(pool *pgxpool.Pool) *PgxRFPRepository {
	return &PgxRFPRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RFPRepositoryFacade = (*PgxRFPRepository)(nil)

func scanRFP(row pgx.Row) (models.RFP, error) {
	var m models.RFP
	err := row.Scan(
		&m.RFPID, &m.EntryID, &m.Payee, &m.Amount, &m.AmountInWords, &m.CompanyID, &m.BookingRef, &m.CategoryID,
		&m.Justification, &m.AttachmentIDs, &m.DueDate, &m.PaymentTerms, &m.CostCenter, &m.Status,
		&m.SubmittedBy, &m.SubmittedOn, &m.CancelledBy, &m.CancelledOn, &m.AdvancedEntry,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.Version,
	)
	return m, err
}

// FindRFPByEntryID retrieves the RFP row of an entry, cancelled ones included.
func (r *PgxRFPRepository) FindRFPByEntryID(ctx context.Context, entryID string) (*domain.RFP, error) {
	query := `SELECT ` + rfpColumns + ` FROM rfps WHERE entry_id = $1;`
	m, err := scanRFP(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find rfp for entry "+entryID, err)
	}
	d := mapping.ToDomainRFP(m)
	return &d, nil
}

// SaveRFP inserts the entry's RFP at version 1, overwriting a cancelled one.
// An active RFP is never overwritten.
func (r *PgxRFPRepository) SaveRFP(ctx context.Context, rfp domain.RFP) error {
	m := mapping.ToModelRFP(rfp)
	query := `
		INSERT INTO rfps (` + rfpColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, 1)
		ON CONFLICT (entry_id) DO UPDATE SET
			rfp_id = EXCLUDED.rfp_id, payee = EXCLUDED.payee, amount = EXCLUDED.amount,
			amount_in_words = EXCLUDED.amount_in_words, company_id = EXCLUDED.company_id,
			booking_ref = EXCLUDED.booking_ref, category_id = EXCLUDED.category_id,
			justification = EXCLUDED.justification, attachment_ids = EXCLUDED.attachment_ids,
			due_date = EXCLUDED.due_date, payment_terms = EXCLUDED.payment_terms,
			cost_center = EXCLUDED.cost_center, status = EXCLUDED.status,
			submitted_by = NULL, submitted_on = NULL, cancelled_by = NULL, cancelled_on = NULL,
			advanced_entry = EXCLUDED.advanced_entry,
			created_at = EXCLUDED.created_at, created_by = EXCLUDED.created_by,
			last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by,
			version = 1
		WHERE rfps.status = 'CANCELLED';
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.RFPID, m.EntryID, m.Payee, m.Amount, m.AmountInWords, m.CompanyID, m.BookingRef, m.CategoryID,
		m.Justification, m.AttachmentIDs, m.DueDate, m.PaymentTerms, m.CostCenter, m.Status,
		m.SubmittedBy, m.SubmittedOn, m.CancelledBy, m.CancelledOn, m.AdvancedEntry,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.NewAppError(409, "rfp ID "+m.RFPID+" already exists", apperrors.ErrConflict)
		case pgForeignKeyViolation:
			return apperrors.NewAppError(404, "entry "+m.EntryID+" does not exist", apperrors.ErrNotFound)
		}
		return apperrors.NewAppError(500, "failed to save rfp for entry "+m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "entry "+m.EntryID+" already has an active rfp", apperrors.ErrConflict)
	}
	return nil
}

// UpdateRFP overwrites the RFP when the stored version matches.
func (r *PgxRFPRepository) UpdateRFP(ctx context.Context, rfp domain.RFP, expectedVersion int64) (*domain.RFP, error) {
	return updateRFP(ctx, r.Pool, rfp, expectedVersion)
}

func updateRFP(ctx context.Context, q querier, rfp domain.RFP, expectedVersion int64) (*domain.RFP, error) {
	m := mapping.ToModelRFP(rfp)
	query := `
		UPDATE rfps SET
			payee = $2, amount = $3, amount_in_words = $4, company_id = $5, booking_ref = $6, category_id = $7,
			justification = $8, attachment_ids = $9, due_date = $10, payment_terms = $11, cost_center = $12,
			status = $13, submitted_by = $14, submitted_on = $15, cancelled_by = $16, cancelled_on = $17,
			advanced_entry = $18, last_updated_at = $19, last_updated_by = $20,
			version = version + 1
		WHERE entry_id = $1 AND version = $21
		RETURNING version;
	`
	var newVersion int64
	err := q.QueryRow(ctx, query,
		m.EntryID, m.Payee, m.Amount, m.AmountInWords, m.CompanyID, m.BookingRef, m.CategoryID,
		m.Justification, m.AttachmentIDs, m.DueDate, m.PaymentTerms, m.CostCenter,
		m.Status, m.SubmittedBy, m.SubmittedOn, m.CancelledBy, m.CancelledOn,
		m.AdvancedEntry, m.LastUpdatedAt, m.LastUpdatedBy,
		expectedVersion,
	).Scan(&newVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, missOrConflict(ctx, q, "rfps", "entry_id", rfp.EntryID)
		}
		return nil, apperrors.NewAppError(500, "failed to update rfp for entry "+rfp.EntryID, err)
	}
	rfp.Version = newVersion
	return &rfp, nil
}

// DeleteRFP removes the entry's RFP when the stored version matches.
func (r *PgxRFPRepository) DeleteRFP(ctx context.Context, entryID string, expectedVersion int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM rfps WHERE entry_id = $1 AND version = $2;`, entryID, expectedVersion)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete rfp for entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return missOrConflict(ctx, r.Pool, "rfps", "entry_id", entryID)
	}
	return nil
}

// UpdateEntryAndRFP writes both rows in one transaction; a stale version on either side
// rolls back both.
func (r *PgxRFPRepository) UpdateEntryAndRFP(ctx context.Context, entry domain.Entry, entryVersion int64, rfp domain.RFP, rfpVersion int64) (*domain.Entry, *domain.RFP, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	updatedEntry, err := updateEntry(ctx, tx, entry, entryVersion)
	if err != nil {
		return nil, nil, err
	}
	updatedRFP, err := updateRFP(ctx, tx, rfp, rfpVersion)
	if err != nil {
		return nil, nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	return updatedEntry, updatedRFP, nil
}
