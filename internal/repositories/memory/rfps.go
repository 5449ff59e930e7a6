package memory

import (
	"context"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
)

func (s *Store) FindRFPByEntryID(_ context.Context, entryID string) (*domain.RFP, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rfps[entryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	r = cloneRFP(r)
	return &r, nil
}

// SaveRFP stores a new RFP, replacing a cancelled one of the same entry.
func (s *Store) SaveRFP(_ context.Context, rfp domain.RFP) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[rfp.EntryID]; !ok {
		return apperrors.NewAppError(404, "entry "+rfp.EntryID+" does not exist", apperrors.ErrNotFound)
	}
	if cur, ok := s.rfps[rfp.EntryID]; ok && cur.Status != domain.RFPCancelled {
		return apperrors.NewAppError(409, "entry "+rfp.EntryID+" already has an active rfp", apperrors.ErrConflict)
	}
	rfp = cloneRFP(rfp)
	rfp.Version = 1
	s.rfps[rfp.EntryID] = rfp
	return nil
}

func (s *Store) UpdateRFP(_ context.Context, rfp domain.RFP, expectedVersion int64) (*domain.RFP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkRFPVersion(rfp.EntryID, expectedVersion); err != nil {
		return nil, err
	}
	rfp = cloneRFP(rfp)
	rfp.Version = expectedVersion + 1
	s.rfps[rfp.EntryID] = rfp
	out := cloneRFP(rfp)
	return &out, nil
}

func (s *Store) DeleteRFP(_ context.Context, entryID string, expectedVersion int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkRFPVersion(entryID, expectedVersion); err != nil {
		return err
	}
	delete(s.rfps, entryID)
	return nil
}

// UpdateEntryAndRFP checks both versions before writing either row.
func (s *Store) UpdateEntryAndRFP(_ context.Context, entry domain.Entry, entryVersion int64, rfp domain.RFP, rfpVersion int64) (*domain.Entry, *domain.RFP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkEntryVersion(entry.EntryID, entryVersion); err != nil {
		return nil, nil, err
	}
	if err := s.checkRFPVersion(rfp.EntryID, rfpVersion); err != nil {
		return nil, nil, err
	}
	entry.Version = entryVersion + 1
	s.entries[entry.EntryID] = entry
	rfp = cloneRFP(rfp)
	rfp.Version = rfpVersion + 1
	s.rfps[rfp.EntryID] = rfp
	out := cloneRFP(rfp)
	return &entry, &out, nil
}

func (s *Store) checkRFPVersion(entryID string, expectedVersion int64) error {
	cur, ok := s.rfps[entryID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if cur.Version != expectedVersion {
		return apperrors.NewAppError(409, "rfps row "+entryID+" was modified concurrently", apperrors.ErrConflict)
	}
	return nil
}
