package services

import (
	portsrepo "github.com/SscSPs/entry_workbench/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/entry_workbench/internal/core/ports/services"
	"github.com/SscSPs/entry_workbench/internal/core/workflow"
	"github.com/SscSPs/entry_workbench/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...Option) (*portssvc.ServiceContainer, error) {
	policy, err := workflow.ParsePostingPolicy(cfg.PostingPolicy)
	if err != nil {
		return nil, err
	}
	// caller options win over configuration
	options = append([]Option{WithPostingPolicy(policy)}, options...)

	container := &portssvc.ServiceContainer{}

	// Booking resolution is shared by the entry and RFP gates
	container.Booking = NewBookingService(repos.BookingRepo, options...)

	container.Entry = NewEntryService(
		repos.EntryRepo,
		repos.RFPRepo,
		container.Booking,
		repos.ReferenceRepo,
		options...,
	)
	container.RFP = NewRFPService(
		repos.EntryRepo,
		repos.RFPRepo,
		container.Booking,
		repos.ReferenceRepo,
		options...,
	)

	return container, nil
}
