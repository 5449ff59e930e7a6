package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/entry_workbench/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/entry_workbench/internal/core/ports/services"
	"github.com/SscSPs/entry_workbench/internal/core/workflow"
	"github.com/SscSPs/entry_workbench/internal/dto"
	"github.com/SscSPs/entry_workbench/internal/platform/metrics"
)

const defaultListLimit = 20

// entryService implements the entry lifecycle on top of the workflow gate.
type entryService struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryFacade
	rfpRepo   portsrepo.RFPRepositoryFacade
	gate      *gatekeeper
	newID     func() string
}

// NewEntryService creates a new EntryService.
func NewEntryService(
	entryRepo portsrepo.EntryRepositoryFacade,
	rfpRepo portsrepo.RFPRepositoryFacade,
	bookingSvc portssvc.BookingSvcFacade,
	refs portsrepo.ReferenceDataReader,
	options ...Option,
) portssvc.EntrySvcFacade {
	opts := buildOptions(options)
	return &entryService{
		BaseService: BaseService{Clock: opts.clock},
		entryRepo:   entryRepo,
		rfpRepo:     rfpRepo,
		gate:        &gatekeeper{bookings: bookingSvc, refs: refs, policy: opts.policy},
		newID:       opts.newID,
	}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

func (s *entryService) CreateEntry(ctx context.Context, actor domain.Actor, req dto.CreateEntryRequest) (*domain.Entry, error) {
	if actor.Role != domain.RolePreparer {
		return nil, fmt.Errorf("%w: entries are created by the preparer", apperrors.ErrForbidden)
	}

	now := s.Now()
	occurredOn := now
	if req.OccurredOn != nil {
		occurredOn = req.OccurredOn.UTC()
	}

	entry := domain.Entry{
		EntryID:         s.newID(),
		Kind:            req.Kind,
		Amount:          req.Amount,
		CompanyID:       strings.TrimSpace(req.CompanyID),
		AccountID:       strings.TrimSpace(req.AccountID),
		CategoryID:      strings.TrimSpace(req.CategoryID),
		BookingRef:      strings.TrimSpace(req.BookingRef),
		IsNoBooking:     req.IsNoBooking,
		Payee:           strings.TrimSpace(req.Payee),
		PaymentMethod:   req.PaymentMethod,
		Note:            req.Note,
		OccurredOn:      occurredOn,
		Status:          domain.EntryDraft,
		AttachmentCount: req.AttachmentCount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
			Version:       1,
		},
	}

	if fieldErrs := workflow.ValidateDraftTier(entry); len(fieldErrs) > 0 {
		return nil, apperrors.NewFieldsError(fieldErrs)
	}
	if err := s.gate.rebindBooking(ctx, &entry); err != nil {
		return nil, err
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	s.LogInfo(ctx, "Entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("kind", string(entry.Kind)),
		slog.String("user_id", actor.UserID))
	return &entry, nil
}

func (s *entryService) GetEntry(ctx context.Context, entryID string) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *entryService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	filter := portsrepo.EntryListFilter{
		CompanyID: strings.TrimSpace(params.CompanyID),
		Status:    domain.EntryStatus(params.Status),
		Kind:      domain.EntryKind(params.Kind),
	}

	entries, nextToken, err := s.entryRepo.ListEntries(ctx, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("company_id", filter.CompanyID))
		return nil, err
	}

	return &dto.ListEntriesResponse{
		Entries:   dto.ToEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

func (s *entryService) EvaluateTransition(ctx context.Context, actor domain.Actor, entryID string, target domain.EntryStatus) (*workflow.Decision, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	rfp, err := s.attachedRFP(ctx, entryID)
	if err != nil {
		return nil, err
	}

	d, err := s.gate.decide(ctx, workflow.GateInput{
		Entry:  *entry,
		Target: target,
		Role:   actor.Role,
		RFP:    rfp,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to evaluate transition", slog.String("entry_id", entryID))
		return nil, err
	}
	return &d, nil
}

func (s *entryService) Transition(ctx context.Context, actor domain.Actor, entryID string, req dto.TransitionEntryRequest) (*domain.Entry, error) {
	op := workflow.Operation("unknown")
	updated, err := s.transition(ctx, actor, entryID, req, &op)

	outcome := outcomeOf(err)
	metrics.EntryTransitionsTotal.WithLabelValues(string(op), outcome).Inc()
	if err != nil {
		s.LogOutcome(ctx, err, "Entry transition refused",
			slog.String("entry_id", entryID),
			slog.String("operation", string(op)),
			slog.String("role", string(actor.Role)))
		return nil, err
	}
	s.LogInfo(ctx, "Entry transitioned",
		slog.String("entry_id", entryID),
		slog.String("operation", string(op)),
		slog.String("status", string(updated.Status)),
		slog.Int64("version", updated.Version))
	return updated, nil
}

// transition performs the checks in a fixed order: existence, operation, permission,
// version, state, then fields. op is filled in as soon as it is known.
func (s *entryService) transition(ctx context.Context, actor domain.Actor, entryID string, req dto.TransitionEntryRequest, op *workflow.Operation) (*domain.Entry, error) {
	current, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	derived, err := workflow.OperationFor(current.Status, req.TargetStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidState, err)
	}
	*op = derived

	if ok, reason := workflow.Permitted(derived, actor.Role, s.gate.policy); !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, reason)
	}
	if req.ExpectedVersion != current.Version {
		return nil, fmt.Errorf("%w: entry %s is at version %d, not %d",
			apperrors.ErrConflict, entryID, current.Version, req.ExpectedVersion)
	}
	if !workflow.ValidFrom(derived, current.Status) {
		return nil, fmt.Errorf("%w: %s is not defined from %s", apperrors.ErrInvalidState, derived, current.Status)
	}

	changes := req.Changes.ToDomain()
	if derived == workflow.OpSaveDraft && changes.IsEmpty() {
		return current, nil
	}

	changed := changes.Fields()
	candidate := changes.ApplyTo(*current)
	if slices.Contains(changed, domain.FieldBookingRef) || slices.Contains(changed, domain.FieldIsNoBooking) {
		if err := s.gate.rebindBooking(ctx, &candidate); err != nil {
			return nil, err
		}
	}

	rfp, err := s.attachedRFP(ctx, entryID)
	if err != nil {
		return nil, err
	}

	d, err := s.gate.decide(ctx, workflow.GateInput{
		Entry:           candidate,
		Target:          req.TargetStatus,
		Role:            actor.Role,
		RFP:             rfp,
		RejectionReason: req.RejectionReason,
		Changed:         changed,
	})
	if err != nil {
		return nil, err
	}
	if err := d.Err(); err != nil {
		return nil, err
	}

	now := s.Now()
	next := workflow.Apply(candidate, derived, actor, strings.TrimSpace(req.RejectionReason), now)

	if rfp != nil && !rfp.Status.Terminal() {
		if nextRFP, touched := coupleRFP(*rfp, next, derived, actor, now); touched {
			updated, _, err := s.rfpRepo.UpdateEntryAndRFP(ctx, next, req.ExpectedVersion, nextRFP, rfp.Version)
			if err != nil {
				return nil, err
			}
			return updated, nil
		}
	}

	return s.entryRepo.UpdateEntry(ctx, next, req.ExpectedVersion)
}

// coupleRFP derives the RFP write that must accompany an entry transition, if any.
func coupleRFP(r domain.RFP, e domain.Entry, op workflow.Operation, actor domain.Actor, now time.Time) (domain.RFP, bool) {
	touched := false
	if op == workflow.OpReject {
		r, touched = workflow.ReopenOnReject(r, actor, now)
	}
	synced, changed := workflow.SyncFromEntry(r, e)
	if changed {
		synced.Touch(actor.UserID, now)
		return synced, true
	}
	return synced, touched
}

// attachedRFP returns the entry's RFP, or nil when it has none.
func (s *entryService) attachedRFP(ctx context.Context, entryID string) (*domain.RFP, error) {
	rfp, err := s.rfpRepo.FindRFPByEntryID(ctx, entryID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return rfp, err
}
