package memory

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/entry_workbench/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var now = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *Store
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewStore(DemoSeed(now))
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func entry(id string, occurred time.Time) domain.Entry {
	return domain.Entry{
		EntryID:    id,
		Kind:       domain.KindExpense,
		Amount:     decimal.NewFromInt(100),
		CompanyID:  "cce",
		OccurredOn: occurred,
		Status:     domain.EntryDraft,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: "u1",
		},
	}
}

func (s *StoreTestSuite) TestEntryVersioning() {
	require.NoError(s.T(), s.store.SaveEntry(s.ctx, entry("e1", now)))
	assert.ErrorIs(s.T(), s.store.SaveEntry(s.ctx, entry("e1", now)), apperrors.ErrConflict)

	got, err := s.store.FindEntryByID(s.ctx, "e1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), got.Version)

	got.Payee = "Shell"
	updated, err := s.store.UpdateEntry(s.ctx, *got, 1)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), updated.Version)

	_, err = s.store.UpdateEntry(s.ctx, *got, 1)
	assert.ErrorIs(s.T(), err, apperrors.ErrConflict)

	stored, _ := s.store.FindEntryByID(s.ctx, "e1")
	assert.Equal(s.T(), "Shell", stored.Payee)
	assert.Equal(s.T(), int64(2), stored.Version)

	_, err = s.store.UpdateEntry(s.ctx, entry("missing", now), 1)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestListEntries_PagesInOrder() {
	for i, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(s.T(), s.store.SaveEntry(s.ctx, entry(id, now.AddDate(0, 0, -i))))
	}
	other := entry("x", now)
	other.CompanyID = "mfl"
	require.NoError(s.T(), s.store.SaveEntry(s.ctx, other))

	filter := portsrepo.EntryListFilter{CompanyID: "cce"}
	page1, token, err := s.store.ListEntries(s.ctx, filter, 2, nil)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), token)
	assert.Equal(s.T(), []string{"a", "b"}, ids(page1))

	page2, token, err := s.store.ListEntries(s.ctx, filter, 2, token)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), token)
	assert.Equal(s.T(), []string{"c", "d"}, ids(page2))

	page3, token, err := s.store.ListEntries(s.ctx, filter, 2, token)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), token)
	assert.Equal(s.T(), []string{"e"}, ids(page3))

	bad := "%%%"
	_, _, err = s.store.ListEntries(s.ctx, filter, 2, &bad)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func ids(es []domain.Entry) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.EntryID)
	}
	return out
}

func (s *StoreTestSuite) TestRFP_ReplaceOnlyWhenCancelled() {
	require.NoError(s.T(), s.store.SaveEntry(s.ctx, entry("e1", now)))
	rfp := domain.RFP{RFPID: "r1", EntryID: "e1", Status: domain.RFPDraft, AttachmentIDs: []string{"f1"}}

	require.NoError(s.T(), s.store.SaveRFP(s.ctx, rfp))
	assert.ErrorIs(s.T(), s.store.SaveRFP(s.ctx, domain.RFP{RFPID: "r2", EntryID: "e1", Status: domain.RFPDraft}), apperrors.ErrConflict)
	assert.ErrorIs(s.T(), s.store.SaveRFP(s.ctx, domain.RFP{RFPID: "r3", EntryID: "nope"}), apperrors.ErrNotFound)

	rfp.Status = domain.RFPCancelled
	cancelled, err := s.store.UpdateRFP(s.ctx, rfp, 1)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), cancelled.Version)

	require.NoError(s.T(), s.store.SaveRFP(s.ctx, domain.RFP{RFPID: "r2", EntryID: "e1", Status: domain.RFPDraft}))
	got, err := s.store.FindRFPByEntryID(s.ctx, "e1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "r2", got.RFPID)
	assert.Equal(s.T(), int64(1), got.Version)
}

func (s *StoreTestSuite) TestRFP_AttachmentsAreCopied() {
	require.NoError(s.T(), s.store.SaveEntry(s.ctx, entry("e1", now)))
	ids := []string{"f1"}
	require.NoError(s.T(), s.store.SaveRFP(s.ctx, domain.RFP{RFPID: "r1", EntryID: "e1", Status: domain.RFPDraft, AttachmentIDs: ids}))
	ids[0] = "changed"

	got, err := s.store.FindRFPByEntryID(s.ctx, "e1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"f1"}, got.AttachmentIDs)
}

func (s *StoreTestSuite) TestUpdateEntryAndRFP_AllOrNothing() {
	require.NoError(s.T(), s.store.SaveEntry(s.ctx, entry("e1", now)))
	require.NoError(s.T(), s.store.SaveRFP(s.ctx, domain.RFP{RFPID: "r1", EntryID: "e1", Status: domain.RFPDraft}))

	e, _ := s.store.FindEntryByID(s.ctx, "e1")
	r, _ := s.store.FindRFPByEntryID(s.ctx, "e1")
	e.Status = domain.EntryPending
	r.Status = domain.RFPSubmitted

	_, _, err := s.store.UpdateEntryAndRFP(s.ctx, *e, 1, *r, 7)
	assert.ErrorIs(s.T(), err, apperrors.ErrConflict)
	stored, _ := s.store.FindEntryByID(s.ctx, "e1")
	assert.Equal(s.T(), domain.EntryDraft, stored.Status)
	assert.Equal(s.T(), int64(1), stored.Version)

	ue, ur, err := s.store.UpdateEntryAndRFP(s.ctx, *e, 1, *r, 1)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), ue.Version)
	assert.Equal(s.T(), int64(2), ur.Version)
	assert.Equal(s.T(), domain.RFPSubmitted, ur.Status)
}

func (s *StoreTestSuite) TestDeleteRFP() {
	require.NoError(s.T(), s.store.SaveEntry(s.ctx, entry("e1", now)))
	require.NoError(s.T(), s.store.SaveRFP(s.ctx, domain.RFP{RFPID: "r1", EntryID: "e1", Status: domain.RFPDraft}))

	assert.ErrorIs(s.T(), s.store.DeleteRFP(s.ctx, "e1", 2), apperrors.ErrConflict)
	require.NoError(s.T(), s.store.DeleteRFP(s.ctx, "e1", 1))
	_, err := s.store.FindRFPByEntryID(s.ctx, "e1")
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
	assert.ErrorIs(s.T(), s.store.DeleteRFP(s.ctx, "e1", 1), apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestGetBooking_ScopedAndCounted() {
	linked := entry("e1", now)
	linked.BookingRef = "bk-001"
	linked.BookingCompanyID = "cce"
	require.NoError(s.T(), s.store.SaveEntry(s.ctx, linked))

	b, err := s.store.GetBooking(s.ctx, "cce", " bk-001 ")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "b1", b.BookingID)
	assert.Equal(s.T(), 1, b.LinkedEntriesCount)

	other, err := s.store.GetBooking(s.ctx, "mfl", "BK-001")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "b4", other.BookingID)
	assert.Zero(s.T(), other.LinkedEntriesCount)

	_, err = s.store.GetBooking(s.ctx, "cce", "BK-999")
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestSearchBookings_Filters() {
	got, err := s.store.SearchBookings(s.ctx, "cce", domain.BookingSearchFilter{Query: "acme"}, now)
	require.NoError(s.T(), err)
	assert.Len(s.T(), got, 2)

	got, err = s.store.SearchBookings(s.ctx, "cce", domain.BookingSearchFilter{Window: domain.WindowToday}, now)
	require.NoError(s.T(), err)
	require.Len(s.T(), got, 1)
	assert.Equal(s.T(), "BK-001", got[0].BookingNo)

	got, err = s.store.SearchBookings(s.ctx, "cce", domain.BookingSearchFilter{Statuses: []string{"closed"}}, now)
	require.NoError(s.T(), err)
	require.Len(s.T(), got, 1)
	assert.Equal(s.T(), "BK-003", got[0].BookingNo)
}

func (s *StoreTestSuite) TestReferenceLookups() {
	c, err := s.store.FindCompany(s.ctx, "cce")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.RefCompany, c.Kind)

	_, err = s.store.FindAccount(s.ctx, "cce", "cce-bank")
	assert.NoError(s.T(), err)
	_, err = s.store.FindAccount(s.ctx, "cce", "mfl-bank")
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)

	cat, err := s.store.FindCategory(s.ctx, "cce", "cce-fuel")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.RefCategory, cat.Kind)
	_, err = s.store.FindCompany(s.ctx, "zzz")
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}
