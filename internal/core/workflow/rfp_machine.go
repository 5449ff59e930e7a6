package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	"github.com/SscSPs/entry_workbench/internal/utils/amountwords"
	"github.com/shopspring/decimal"
)

// RFPOperation names an RFP transition.
type RFPOperation string

const (
	RFPOpSave   RFPOperation = "save"
	RFPOpSubmit RFPOperation = "submit"
	RFPOpCancel RFPOperation = "cancel"
)

// RFPOperationFor maps a requested RFP target status to its operation. APPROVED and
// PAID belong to the external payment-posting step and are never reachable here.
func RFPOperationFor(target domain.RFPStatus) (RFPOperation, error) {
	switch target {
	case domain.RFPDraft:
		return RFPOpSave, nil
	case domain.RFPSubmitted:
		return RFPOpSubmit, nil
	case domain.RFPCancelled:
		return RFPOpCancel, nil
	case domain.RFPApproved, domain.RFPPaid:
		return "", fmt.Errorf("%w: %s is set by payment posting", apperrors.ErrInvalidState, target)
	default:
		return "", fmt.Errorf("%w: unknown rfp target status %q", apperrors.ErrInvalidState, target)
	}
}

// RFPValidFrom reports whether op is defined from status. Every RFP operation starts in DRAFT.
func RFPValidFrom(op RFPOperation, status domain.RFPStatus) bool {
	return status == domain.RFPDraft
}

// RFPPermitted reports whether role may perform op. RFPs are prepared, not approved, here.
func RFPPermitted(op RFPOperation, role domain.Role) (bool, string) {
	if role == domain.RolePreparer {
		return true, ""
	}
	return false, fmt.Sprintf("rfp %s requires the preparer role", op)
}

// NewRFP initialises an RFP from the current entry snapshot.
func NewRFP(rfpID string, e domain.Entry, actor domain.Actor, now time.Time) domain.RFP {
	r := domain.RFP{
		RFPID:         rfpID,
		EntryID:       e.EntryID,
		Status:        domain.RFPDraft,
		AttachmentIDs: []string{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	return mirror(r, e)
}

// SyncFromEntry mirrors the entry's payment fields into r while r is DRAFT.
// The reverse direction never happens.
func SyncFromEntry(r domain.RFP, e domain.Entry) (domain.RFP, bool) {
	if r.Status != domain.RFPDraft {
		return r, false
	}
	synced := mirror(r, e)
	changed := synced.Payee != r.Payee || !synced.Amount.Equal(r.Amount) ||
		synced.CompanyID != r.CompanyID || synced.BookingRef != r.BookingRef ||
		synced.CategoryID != r.CategoryID
	return synced, changed
}

func mirror(r domain.RFP, e domain.Entry) domain.RFP {
	r.Payee = e.Payee
	r.Amount = e.Amount
	r.AmountInWords = amountwords.Spell(e.Amount)
	r.CompanyID = e.CompanyID
	r.BookingRef = e.BookingRef
	r.CategoryID = e.CategoryID
	return r
}

// ValidateRFPSubmission checks the fields a submitted RFP must carry.
func ValidateRFPSubmission(r domain.RFP) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(r.Payee) == "" {
		errs[domain.RFPFieldPayee] = MsgRequired
	}
	if !r.Amount.GreaterThan(decimal.Zero) {
		errs[domain.RFPFieldAmount] = MsgAmountPositive
	}
	if len(r.AttachmentIDs) == 0 {
		errs[domain.RFPFieldAttachments] = MsgAttachRequired
	}
	if strings.TrimSpace(r.BookingRef) == "" && strings.TrimSpace(r.Justification) == "" {
		errs[domain.RFPFieldJustification] = MsgJustifyOrBooking
	}
	return errs
}

// ApplyRFP performs op on r and stamps the audit fields.
func ApplyRFP(r domain.RFP, op RFPOperation, actor domain.Actor, now time.Time) domain.RFP {
	at := now
	switch op {
	case RFPOpSubmit:
		r.Status = domain.RFPSubmitted
		r.SubmittedBy = actor.UserID
		r.SubmittedOn = &at
	case RFPOpCancel:
		r.Status = domain.RFPCancelled
		r.CancelledBy = actor.UserID
		r.CancelledOn = &at
	}
	r.Touch(actor.UserID, now)
	return r
}

// EntryOpForRFPSubmit decides how submitting an RFP moves its entry: a DRAFT entry is
// submitted for approval alongside, a PENDING entry is left as is, anything else is invalid.
func EntryOpForRFPSubmit(e domain.Entry) (Operation, bool, error) {
	switch e.Status {
	case domain.EntryDraft:
		return OpSubmit, true, nil
	case domain.EntryPending:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("%w: cannot submit a payment request for a %s entry", apperrors.ErrInvalidState, e.Status)
	}
}

// CancelResetsEntry reports whether cancelling r must return its entry to DRAFT.
func CancelResetsEntry(r domain.RFP, e domain.Entry) bool {
	return r.AdvancedEntry && (e.Status == domain.EntryPending || e.Status == domain.EntryRejected)
}

// ReopenOnReject returns a SUBMITTED RFP to DRAFT when its entry is rejected so the
// preparer can correct the payment fields.
func ReopenOnReject(r domain.RFP, actor domain.Actor, now time.Time) (domain.RFP, bool) {
	if r.Status != domain.RFPSubmitted {
		return r, false
	}
	r.Status = domain.RFPDraft
	r.SubmittedBy, r.SubmittedOn = "", nil
	r.Touch(actor.UserID, now)
	return r, true
}
