package repositories

import (
	"context"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
)

// ReferenceDataReader looks up companies, accounts and categories by id.
// Every lookup returns apperrors.ErrNotFound for unknown ids, and for accounts and
// categories outside the given company.
type ReferenceDataReader interface {
	FindCompany(ctx context.Context, companyID string) (*domain.ReferenceItem, error)
	FindAccount(ctx context.Context, companyID, accountID string) (*domain.ReferenceItem, error)
	FindCategory(ctx context.Context, companyID, categoryID string) (*domain.ReferenceItem, error)
}
