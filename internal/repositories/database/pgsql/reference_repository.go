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

type PgxReferenceRepository struct {
	BaseRepository
}

// newPgxReferenceRepository creates a reader over the companies, accounts and categories tables.
func newPgxReferenceRepository(pool *pgxpool.Pool) *PgxReferenceRepository {
	return &PgxReferenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReferenceDataReader = (*PgxReferenceRepository)(nil)

func (r *PgxReferenceRepository) FindCompany(ctx context.Context, companyID string) (*domain.ReferenceItem, error) {
	return r.find(ctx, domain.RefCompany,
		`SELECT company_id, NULL::text, name FROM companies WHERE company_id = $1;`, companyID)
}

func (r *PgxReferenceRepository) FindAccount(ctx context.Context, companyID, accountID string) (*domain.ReferenceItem, error) {
	return r.find(ctx, domain.RefAccount,
		`SELECT account_id, company_id, name FROM accounts WHERE account_id = $1 AND company_id = $2;`, accountID, companyID)
}

func (r *PgxReferenceRepository) FindCategory(ctx context.Context, companyID, categoryID string) (*domain.ReferenceItem, error) {
	return r.find(ctx, domain.RefCategory,
		`SELECT category_id, company_id, name FROM categories WHERE category_id = $1 AND company_id = $2;`, categoryID, companyID)
}

func (r *PgxReferenceRepository) find(ctx context.Context, kind domain.ReferenceKind, query string, args ...any) (*domain.ReferenceItem, error) {
	var m models.ReferenceItem
	err := r.Pool.QueryRow(ctx, query, args...).Scan(&m.ID, &m.CompanyID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find "+string(kind), err)
	}
	item := mapping.ToDomainReferenceItem(kind, m)
	return &item, nil
}
