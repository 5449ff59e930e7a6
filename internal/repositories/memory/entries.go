package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/entry_workbench/internal/core/ports/repositories"
	"github.com/SscSPs/entry_workbench/internal/utils/pagination"
)

func (s *Store) SaveEntry(_ context.Context, entry domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[entry.EntryID]; ok {
		return apperrors.NewAppError(409, "entry ID "+entry.EntryID+" already exists", apperrors.ErrConflict)
	}
	entry.Version = 1
	s.entries[entry.EntryID] = entry
	return nil
}

func (s *Store) FindEntryByID(_ context.Context, entryID string) (*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[entryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

// ListEntries orders by occurredOn, createdAt and entryID, all descending.
func (s *Store) ListEntries(_ context.Context, filter portsrepo.EntryListFilter, limit int, nextToken *string) ([]domain.Entry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	var cursor *pagination.EntryCursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeEntryCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("nextToken", "invalid pagination token")
		}
		cursor = &c
	}

	s.mu.RLock()
	matched := make([]domain.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if filter.CompanyID != "" && e.CompanyID != filter.CompanyID {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Kind != "" && e.Kind != filter.Kind {
			continue
		}
		if cursor != nil && !cursor.After(e.OccurredOn, e.CreatedAt, e.EntryID) {
			continue
		}
		matched = append(matched, e)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.OccurredOn.Equal(b.OccurredOn) {
			return a.OccurredOn.After(b.OccurredOn)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.EntryID > b.EntryID
	})

	var next *string
	if len(matched) > limit {
		last := matched[limit-1]
		token := pagination.EncodeEntryCursor(pagination.EntryCursor{
			OccurredOn: last.OccurredOn,
			CreatedAt:  last.CreatedAt,
			EntryID:    last.EntryID,
		})
		next = &token
		matched = matched[:limit]
	}
	return matched, next, nil
}

func (s *Store) UpdateEntry(_ context.Context, entry domain.Entry, expectedVersion int64) (*domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkEntryVersion(entry.EntryID, expectedVersion); err != nil {
		return nil, err
	}
	entry.Version = expectedVersion + 1
	s.entries[entry.EntryID] = entry
	return &entry, nil
}

// checkEntryVersion must be called with the write lock held.
func (s *Store) checkEntryVersion(entryID string, expectedVersion int64) error {
	cur, ok := s.entries[entryID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if cur.Version != expectedVersion {
		return apperrors.NewAppError(409, "entries row "+entryID+" was modified concurrently", apperrors.ErrConflict)
	}
	return nil
}
