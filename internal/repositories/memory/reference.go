package memory

import (
	"context"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
)

func (s *Store) FindCompany(_ context.Context, companyID string) (*domain.ReferenceItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lookup(s.companies, "", companyID)
}

func (s *Store) FindAccount(_ context.Context, companyID, accountID string) (*domain.ReferenceItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lookup(s.accounts, companyID, accountID)
}

func (s *Store) FindCategory(_ context.Context, companyID, categoryID string) (*domain.ReferenceItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lookup(s.categories, companyID, categoryID)
}

func lookup(items map[string]domain.ReferenceItem, companyID, id string) (*domain.ReferenceItem, error) {
	item, ok := items[id]
	if !ok || item.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return &item, nil
}
