package services

import (
	"context"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
	"github.com/SscSPs/entry_workbench/internal/core/workflow"
	"github.com/SscSPs/entry_workbench/internal/dto"
)

// EntryReaderSvc defines read operations for entry data
type EntryReaderSvc interface {
	// GetEntry retrieves a specific entry by its ID.
	GetEntry(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntries retrieves a page of entries for the report consumer.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// EvaluateTransition runs the gate for a prospective transition without committing it.
	EvaluateTransition(ctx context.Context, actor domain.Actor, entryID string, target domain.EntryStatus) (*workflow.Decision, error)
}

// EntryWriterSvc defines write operations for entry data
type EntryWriterSvc interface {
	// CreateEntry persists a new draft entry.
	CreateEntry(ctx context.Context, actor domain.Actor, req dto.CreateEntryRequest) (*domain.Entry, error)

	// Transition moves an entry to the requested status, applying any field edits,
	// against the version the caller read.
	Transition(ctx context.Context, actor domain.Actor, entryID string, req dto.TransitionEntryRequest) (*domain.Entry, error)
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
