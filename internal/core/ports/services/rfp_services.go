package services

import (
	"context"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
	"github.com/SscSPs/entry_workbench/internal/dto"
)

// RFPReaderSvc defines read operations for payment requests
type RFPReaderSvc interface {
	// GetRFP retrieves the RFP attached to an entry.
	GetRFP(ctx context.Context, entryID string) (*domain.RFP, error)
}

// RFPWriterSvc defines write operations for payment requests
type RFPWriterSvc interface {
	// AttachRFP creates a draft RFP for an expense entry.
	AttachRFP(ctx context.Context, actor domain.Actor, entryID string) (*domain.RFP, error)

	// TransitionRFP saves, submits or cancels the entry's RFP.
	TransitionRFP(ctx context.Context, actor domain.Actor, entryID string, req dto.RFPTransitionRequest) (*domain.RFP, error)

	// DetachRFP removes a draft RFP from its entry.
	DetachRFP(ctx context.Context, actor domain.Actor, entryID string, expectedVersion int64) error
}

// RFPSvcFacade combines all RFP-related service interfaces
type RFPSvcFacade interface {
	RFPReaderSvc
	RFPWriterSvc
}
