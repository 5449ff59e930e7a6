// Package memory is an in-process storage driver for development and tests.
// A single Store serves every repository port; all access is serialised by one RWMutex.
package memory

import (
	"strings"
	"sync"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/entry_workbench/internal/core/ports/repositories"
)

type Store struct {
	mu         sync.RWMutex
	entries    map[string]domain.Entry
	rfps       map[string]domain.RFP // keyed by entry ID
	bookings   []domain.BookingRecord
	companies  map[string]domain.ReferenceItem
	accounts   map[string]domain.ReferenceItem
	categories map[string]domain.ReferenceItem
}

// NewStore creates an empty store, optionally loaded with reference data.
func NewStore(seed ...Seed) *Store {
	s := &Store{
		entries:    make(map[string]domain.Entry),
		rfps:       make(map[string]domain.RFP),
		companies:  make(map[string]domain.ReferenceItem),
		accounts:   make(map[string]domain.ReferenceItem),
		categories: make(map[string]domain.ReferenceItem),
	}
	for _, sd := range seed {
		s.Load(sd)
	}
	return s
}

// NewRepositoryProvider exposes one store through every repository port.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo:     s,
		RFPRepo:       s,
		BookingRepo:   s,
		ReferenceRepo: s,
	}
}

var (
	_ portsrepo.EntryRepositoryFacade = (*Store)(nil)
	_ portsrepo.RFPRepositoryFacade   = (*Store)(nil)
	_ portsrepo.BookingRegistry       = (*Store)(nil)
	_ portsrepo.ReferenceDataReader   = (*Store)(nil)
)

func cloneRFP(r domain.RFP) domain.RFP {
	if r.AttachmentIDs != nil {
		r.AttachmentIDs = append([]string(nil), r.AttachmentIDs...)
	}
	return r
}

func (s *Store) linkedEntries(companyID, bookingNo string) int {
	n := 0
	for _, e := range s.entries {
		if e.BookingCompanyID == companyID && strings.EqualFold(e.BookingRef, bookingNo) {
			n++
		}
	}
	return n
}
