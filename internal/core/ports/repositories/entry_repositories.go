package repositories

import (
	"context"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
)

// EntryListFilter narrows ListEntries. Empty fields match everything.
type EntryListFilter struct {
	CompanyID string
	Status    domain.EntryStatus
	Kind      domain.EntryKind
}

// EntryReader defines read operations for entry data
type EntryReader interface {
	// FindEntryByID retrieves an entry by its unique identifier.
	// Returns apperrors.ErrNotFound when it does not exist.
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntries retrieves a page of entries, most recent first, using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListEntries(ctx context.Context, filter EntryListFilter, limit int, nextToken *string) ([]domain.Entry, *string, error)
}

// EntryWriter defines write operations for entry data
type EntryWriter interface {
	// SaveEntry persists a new entry at version 1.
	SaveEntry(ctx context.Context, entry domain.Entry) error

	// UpdateEntry overwrites the entry if and only if its stored version still equals
	// expectedVersion, bumping the version. A stale version yields apperrors.ErrConflict.
	UpdateEntry(ctx context.Context, entry domain.Entry, expectedVersion int64) (*domain.Entry, error)
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
