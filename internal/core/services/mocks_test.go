package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/entry_workbench/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// MockEntryRepository is a mock type for the EntryRepositoryFacade interface.
// Update calls that are stubbed with Return(nil, nil) echo the written entry with
// its version bumped, the way the real repositories do.
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, filter portsrepo.EntryListFilter, limit int, nextToken *string) ([]domain.Entry, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var entries []domain.Entry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.Entry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry, expectedVersion int64) (*domain.Entry, error) {
	args := m.Called(ctx, entry, expectedVersion)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Entry), nil
	}
	entry.Version = expectedVersion + 1
	return &entry, nil
}

// MockRFPRepository is a mock type for the RFPRepositoryFacade interface.
type MockRFPRepository struct {
	mock.Mock
}

func (m *MockRFPRepository) FindRFPByEntryID(ctx context.Context, entryID string) (*domain.RFP, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RFP), args.Error(1)
}

func (m *MockRFPRepository) SaveRFP(ctx context.Context, rfp domain.RFP) error {
	args := m.Called(ctx, rfp)
	return args.Error(0)
}

func (m *MockRFPRepository) UpdateRFP(ctx context.Context, rfp domain.RFP, expectedVersion int64) (*domain.RFP, error) {
	args := m.Called(ctx, rfp, expectedVersion)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if args.Get(0) != nil {
		return args.Get(0).(*domain.RFP), nil
	}
	rfp.Version = expectedVersion + 1
	return &rfp, nil
}

func (m *MockRFPRepository) DeleteRFP(ctx context.Context, entryID string, expectedVersion int64) error {
	args := m.Called(ctx, entryID, expectedVersion)
	return args.Error(0)
}

func (m *MockRFPRepository) UpdateEntryAndRFP(ctx context.Context, entry domain.Entry, entryVersion int64, rfp domain.RFP, rfpVersion int64) (*domain.Entry, *domain.RFP, error) {
	args := m.Called(ctx, entry, entryVersion, rfp, rfpVersion)
	if err := args.Error(0); err != nil {
		return nil, nil, err
	}
	entry.Version = entryVersion + 1
	rfp.Version = rfpVersion + 1
	return &entry, &rfp, nil
}

// MockBookingRegistry is a mock type for the BookingRegistry interface.
type MockBookingRegistry struct {
	mock.Mock
}

func (m *MockBookingRegistry) SearchBookings(ctx context.Context, companyID string, filter domain.BookingSearchFilter, now time.Time) ([]domain.BookingRecord, error) {
	args := m.Called(ctx, companyID, filter, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingRecord), args.Error(1)
}

func (m *MockBookingRegistry) GetBooking(ctx context.Context, companyID, bookingNo string) (*domain.BookingRecord, error) {
	args := m.Called(ctx, companyID, bookingNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingRecord), args.Error(1)
}

// MockReferenceData is a mock type for the ReferenceDataReader interface.
type MockReferenceData struct {
	mock.Mock
}

func (m *MockReferenceData) FindCompany(ctx context.Context, companyID string) (*domain.ReferenceItem, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReferenceItem), args.Error(1)
}

func (m *MockReferenceData) FindAccount(ctx context.Context, companyID, accountID string) (*domain.ReferenceItem, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReferenceItem), args.Error(1)
}

func (m *MockReferenceData) FindCategory(ctx context.Context, companyID, categoryID string) (*domain.ReferenceItem, error) {
	args := m.Called(ctx, companyID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReferenceItem), args.Error(1)
}

// allKnown makes every reference lookup succeed. Register specific failures first.
func (m *MockReferenceData) allKnown() {
	item := &domain.ReferenceItem{Name: "known"}
	m.On("FindCompany", mock.Anything, mock.Anything).Return(item, nil).Maybe()
	m.On("FindAccount", mock.Anything, mock.Anything, mock.Anything).Return(item, nil).Maybe()
	m.On("FindCategory", mock.Anything, mock.Anything, mock.Anything).Return(item, nil).Maybe()
}
