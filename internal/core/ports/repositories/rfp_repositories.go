package repositories

import (
	"context"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
)

// RFPReader defines read operations for payment requests
type RFPReader interface {
	// FindRFPByEntryID retrieves the RFP attached to an entry, cancelled ones included.
	// Returns apperrors.ErrNotFound when the entry has none.
	FindRFPByEntryID(ctx context.Context, entryID string) (*domain.RFP, error)
}

// RFPWriter defines write operations for payment requests.
// Each entry owns at most one RFP row; a cancelled row may be overwritten by SaveRFP.
type RFPWriter interface {
	// SaveRFP stores a new RFP at version 1. It replaces a cancelled RFP of the same entry
	// and fails with apperrors.ErrConflict if a non-cancelled one is attached.
	SaveRFP(ctx context.Context, rfp domain.RFP) error

	// UpdateRFP overwrites the RFP if its stored version equals expectedVersion.
	UpdateRFP(ctx context.Context, rfp domain.RFP, expectedVersion int64) (*domain.RFP, error)

	// DeleteRFP removes the entry's RFP if its stored version equals expectedVersion.
	DeleteRFP(ctx context.Context, entryID string, expectedVersion int64) error

	// UpdateEntryAndRFP writes both rows in one transaction, each under its own version check.
	// Either both writes commit or neither does.
	UpdateEntryAndRFP(ctx context.Context, entry domain.Entry, entryVersion int64, rfp domain.RFP, rfpVersion int64) (*domain.Entry, *domain.RFP, error)
}

// RFPRepositoryFacade combines all RFP-related repository interfaces
type RFPRepositoryFacade interface {
	RFPReader
	RFPWriter
}
