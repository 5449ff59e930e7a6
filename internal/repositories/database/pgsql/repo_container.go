package pgsql

import (
	portsrepo "github.com/SscSPs/entry_workbench/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo:     newPgxEntryRepository(dbPool),
		RFPRepo:       newPgxRFPRepository(dbPool),
		BookingRepo:   newPgxBookingRepository(dbPool),
		ReferenceRepo: newPgxReferenceRepository(dbPool),
	}
}
