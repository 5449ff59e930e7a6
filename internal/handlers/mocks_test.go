package handlers_test

import (
	"context"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
	portssvc "github.com/SscSPs/entry_workbench/internal/core/ports/services"
	"github.com/SscSPs/entry_workbench/internal/core/workflow"
	"github.com/SscSPs/entry_workbench/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) GetEntry(ctx context.Context, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

func (m *MockEntryService) EvaluateTransition(ctx context.Context, actor domain.Actor, entryID string, target domain.EntryStatus) (*workflow.Decision, error) {
	args := m.Called(ctx, actor, entryID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Decision), args.Error(1)
}

func (m *MockEntryService) CreateEntry(ctx context.Context, actor domain.Actor, req dto.CreateEntryRequest) (*domain.Entry, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) Transition(ctx context.Context, actor domain.Actor, entryID string, req dto.TransitionEntryRequest) (*domain.Entry, error) {
	args := m.Called(ctx, actor, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

// --- Mock RFPService ---
type MockRFPService struct {
	mock.Mock
}

func (m *MockRFPService) GetRFP(ctx context.Context, entryID string) (*domain.RFP, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RFP), args.Error(1)
}

func (m *MockRFPService) AttachRFP(ctx context.Context, actor domain.Actor, entryID string) (*domain.RFP, error) {
	args := m.Called(ctx, actor, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RFP), args.Error(1)
}

func (m *MockRFPService) TransitionRFP(ctx context.Context, actor domain.Actor, entryID string, req dto.RFPTransitionRequest) (*domain.RFP, error) {
	args := m.Called(ctx, actor, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RFP), args.Error(1)
}

func (m *MockRFPService) DetachRFP(ctx context.Context, actor domain.Actor, entryID string, expectedVersion int64) error {
	args := m.Called(ctx, actor, entryID, expectedVersion)
	return args.Error(0)
}

var _ portssvc.RFPSvcFacade = (*MockRFPService)(nil)

// --- Mock BookingService ---
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) ResolveBooking(ctx context.Context, companyID, reference string) (domain.BookingLink, error) {
	args := m.Called(ctx, companyID, reference)
	return args.Get(0).(domain.BookingLink), args.Error(1)
}

func (m *MockBookingService) SearchBookingCandidates(ctx context.Context, companyID string, filter domain.BookingSearchFilter) ([]domain.BookingRecord, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingRecord), args.Error(1)
}

var _ portssvc.BookingSvcFacade = (*MockBookingService)(nil)
