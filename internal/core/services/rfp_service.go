package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/entry_workbench/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/entry_workbench/internal/core/ports/services"
	"github.com/SscSPs/entry_workbench/internal/core/workflow"
	"github.com/SscSPs/entry_workbench/internal/dto"
	"github.com/SscSPs/entry_workbench/internal/platform/metrics"
)

// Metric labels for RFP operations that are not state transitions.
const (
	rfpOpAttach = "attach"
	rfpOpDetach = "detach"
)

// rfpService manages the payment-request envelope of expense entries.
type rfpService struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryFacade
	rfpRepo   portsrepo.RFPRepositoryFacade
	gate      *gatekeeper
	newID     func() string
}

// NewRFPService creates a new RFPService.
func NewRFPService(
	entryRepo portsrepo.EntryRepositoryFacade,
	rfpRepo portsrepo.RFPRepositoryFacade,
	bookingSvc portssvc.BookingSvcFacade,
	refs portsrepo.ReferenceDataReader,
	options ...Option,
) portssvc.RFPSvcFacade {
	opts := buildOptions(options)
	return &rfpService{
		BaseService: BaseService{Clock: opts.clock},
		entryRepo:   entryRepo,
		rfpRepo:     rfpRepo,
		gate:        &gatekeeper{bookings: bookingSvc, refs: refs, policy: opts.policy},
		newID:       opts.newID,
	}
}

var _ portssvc.RFPSvcFacade = (*rfpService)(nil)

func (s *rfpService) GetRFP(ctx context.Context, entryID string) (*domain.RFP, error) {
	rfp, err := s.rfpRepo.FindRFPByEntryID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get rfp", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return rfp, nil
}

func (s *rfpService) AttachRFP(ctx context.Context, actor domain.Actor, entryID string) (*domain.RFP, error) {
	rfp, err := s.attach(ctx, actor, entryID)
	s.record(ctx, rfpOpAttach, entryID, err)
	return rfp, err
}

func (s *rfpService) attach(ctx context.Context, actor domain.Actor, entryID string) (*domain.RFP, error) {
	if ok, reason := workflow.RFPPermitted(workflow.RFPOpSave, actor.Role); !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, reason)
	}

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: entry must exist before a payment request is attached: %w", apperrors.ErrInvalidState, err)
		}
		return nil, err
	}
	if entry.Kind != domain.KindExpense {
		return nil, fmt.Errorf("%w: payment requests attach to expense entries only", apperrors.ErrInvalidState)
	}

	existing, err := s.rfpRepo.FindRFPByEntryID(ctx, entryID)
	switch {
	case err == nil && !existing.Status.Terminal():
		return nil, fmt.Errorf("%w: entry already has a %s payment request", apperrors.ErrInvalidState, existing.Status)
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		return nil, err
	}

	rfp := workflow.NewRFP(s.newID(), *entry, actor, s.Now())
	rfp.Version = 1
	if err := s.rfpRepo.SaveRFP(ctx, rfp); err != nil {
		return nil, err
	}
	return &rfp, nil
}

func (s *rfpService) TransitionRFP(ctx context.Context, actor domain.Actor, entryID string, req dto.RFPTransitionRequest) (*domain.RFP, error) {
	op := "unknown"
	rfp, err := s.transition(ctx, actor, entryID, req, &op)
	s.record(ctx, op, entryID, err)
	return rfp, err
}

func (s *rfpService) transition(ctx context.Context, actor domain.Actor, entryID string, req dto.RFPTransitionRequest, opLabel *string) (*domain.RFP, error) {
	op, err := workflow.RFPOperationFor(req.TargetStatus)
	if err != nil {
		return nil, err
	}
	*opLabel = string(op)

	if ok, reason := workflow.RFPPermitted(op, actor.Role); !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, reason)
	}

	current, err := s.rfpRepo.FindRFPByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if req.ExpectedVersion != current.Version {
		return nil, fmt.Errorf("%w: payment request is at version %d, not %d",
			apperrors.ErrConflict, current.Version, req.ExpectedVersion)
	}
	if !workflow.RFPValidFrom(op, current.Status) {
		return nil, fmt.Errorf("%w: cannot %s a %s payment request", apperrors.ErrInvalidState, op, current.Status)
	}

	changes := req.Changes()
	candidate := changes.ApplyTo(*current)
	now := s.Now()

	switch op {
	case workflow.RFPOpSave:
		if changes.IsEmpty() {
			return current, nil
		}
		candidate.Touch(actor.UserID, now)
		return s.rfpRepo.UpdateRFP(ctx, candidate, req.ExpectedVersion)

	case workflow.RFPOpSubmit:
		return s.submit(ctx, actor, candidate, req.ExpectedVersion)

	case workflow.RFPOpCancel:
		if !req.Confirm {
			return nil, apperrors.NewValidationError(domain.RFPFieldConfirm, workflow.MsgConfirmationNeeded)
		}
		return s.cancel(ctx, actor, candidate, req.ExpectedVersion)
	}
	return nil, fmt.Errorf("%w: unsupported rfp operation %q", apperrors.ErrInvalidState, op)
}

// submit validates the RFP against the current entry and, for a draft entry, submits
// the entry for approval in the same write.
func (s *rfpService) submit(ctx context.Context, actor domain.Actor, candidate domain.RFP, expectedVersion int64) (*domain.RFP, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, candidate.EntryID)
	if err != nil {
		return nil, err
	}
	candidate, _ = workflow.SyncFromEntry(candidate, *entry)

	if fieldErrs := workflow.ValidateRFPSubmission(candidate); len(fieldErrs) > 0 {
		return nil, apperrors.NewFieldsError(fieldErrs)
	}

	entryOp, advance, err := workflow.EntryOpForRFPSubmit(*entry)
	if err != nil {
		return nil, err
	}
	now := s.Now()

	if !advance {
		submitted := workflow.ApplyRFP(candidate, workflow.RFPOpSubmit, actor, now)
		return s.rfpRepo.UpdateRFP(ctx, submitted, expectedVersion)
	}

	d, err := s.gate.decide(ctx, workflow.GateInput{
		Entry:  *entry,
		Target: workflow.TargetOf(entryOp),
		Role:   actor.Role,
		RFP:    &candidate,
	})
	if err != nil {
		return nil, err
	}
	if err := d.Err(); err != nil {
		return nil, err
	}

	nextEntry := workflow.Apply(*entry, entryOp, actor, "", now)
	submitted := workflow.ApplyRFP(candidate, workflow.RFPOpSubmit, actor, now)
	submitted.AdvancedEntry = true

	_, updated, err := s.rfpRepo.UpdateEntryAndRFP(ctx, nextEntry, entry.Version, submitted, expectedVersion)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Entry submitted with its payment request",
		slog.String("entry_id", entry.EntryID),
		slog.String("rfp_id", submitted.RFPID))
	return updated, nil
}

// cancel terminates the RFP and returns an entry it had advanced back to draft.
func (s *rfpService) cancel(ctx context.Context, actor domain.Actor, candidate domain.RFP, expectedVersion int64) (*domain.RFP, error) {
	now := s.Now()
	cancelled := workflow.ApplyRFP(candidate, workflow.RFPOpCancel, actor, now)

	if !candidate.AdvancedEntry {
		return s.rfpRepo.UpdateRFP(ctx, cancelled, expectedVersion)
	}

	entry, err := s.entryRepo.FindEntryByID(ctx, candidate.EntryID)
	if err != nil {
		return nil, err
	}
	if !workflow.CancelResetsEntry(candidate, *entry) {
		return s.rfpRepo.UpdateRFP(ctx, cancelled, expectedVersion)
	}

	reset := workflow.ResetToDraft(*entry, actor, now)
	_, updated, err := s.rfpRepo.UpdateEntryAndRFP(ctx, reset, entry.Version, cancelled, expectedVersion)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Entry returned to draft after payment request cancellation",
		slog.String("entry_id", entry.EntryID),
		slog.String("previous_status", string(entry.Status)))
	return updated, nil
}

func (s *rfpService) DetachRFP(ctx context.Context, actor domain.Actor, entryID string, expectedVersion int64) error {
	err := s.detach(ctx, actor, entryID, expectedVersion)
	s.record(ctx, rfpOpDetach, entryID, err)
	return err
}

func (s *rfpService) detach(ctx context.Context, actor domain.Actor, entryID string, expectedVersion int64) error {
	if ok, reason := workflow.RFPPermitted(workflow.RFPOpSave, actor.Role); !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrForbidden, reason)
	}
	current, err := s.rfpRepo.FindRFPByEntryID(ctx, entryID)
	if err != nil {
		return err
	}
	if expectedVersion != current.Version {
		return fmt.Errorf("%w: payment request is at version %d, not %d",
			apperrors.ErrConflict, current.Version, expectedVersion)
	}
	if current.Status != domain.RFPDraft {
		return fmt.Errorf("%w: only a draft payment request can be detached", apperrors.ErrInvalidState)
	}
	return s.rfpRepo.DeleteRFP(ctx, entryID, expectedVersion)
}

func (s *rfpService) record(ctx context.Context, op, entryID string, err error) {
	metrics.RFPTransitionsTotal.WithLabelValues(op, outcomeOf(err)).Inc()
	if err != nil {
		s.LogOutcome(ctx, err, "Payment request operation refused",
			slog.String("entry_id", entryID),
			slog.String("operation", op))
		return
	}
	s.LogInfo(ctx, "Payment request updated",
		slog.String("entry_id", entryID),
		slog.String("operation", op))
}
