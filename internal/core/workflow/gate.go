package workflow

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Validation messages surfaced per field.
const (
	MsgAmountPositive     = "amount must be greater than zero"
	MsgRequired           = "required"
	MsgBookingUnverified  = "booking must be verified or marked no-booking"
	MsgBookingExclusive   = "bookingRef and isNoBooking are mutually exclusive"
	MsgBookingConflict    = "linked booking belongs to a different company; re-resolve the booking"
	MsgReasonRequired     = "reason required"
	MsgFieldLocked        = "field is locked"
	MsgAttachRequired     = "attach at least one file"
	MsgJustifyOrBooking   = "justification required when no booking is linked"
	MsgConfirmationNeeded = "cancellation must be confirmed"
)

// Tier is the strictness of field validation associated with a target status.
type Tier string

const (
	TierNone   Tier = "none"
	TierDraft  Tier = "draft"
	TierSubmit Tier = "submit"
)

// TierFor returns the validation tier op is checked at.
func TierFor(op Operation) Tier {
	switch op {
	case OpSaveDraft, OpResubmit, OpUnpost:
		return TierDraft
	case OpSubmit, OpApprove, OpPost:
		return TierSubmit
	default:
		return TierNone
	}
}

// GateInput is the snapshot the gate decides over. Entry is the candidate state,
// i.e. the persisted entry with any requested edits already applied.
type GateInput struct {
	Entry           domain.Entry
	Target          domain.EntryStatus
	Role            domain.Role
	Link            domain.BookingLink
	RFP             *domain.RFP
	Policy          PostingPolicy
	RejectionReason string
	Changed         []string
}

// Decision is the gate's verdict. Permission is decided before anything else and a
// denied decision carries no field errors.
type Decision struct {
	Operation        Operation            `json:"operation"`
	Tier             Tier                 `json:"tier"`
	Permitted        bool                 `json:"permitted"`
	PermissionReason string               `json:"permissionReason,omitempty"`
	StateValid       bool                 `json:"stateValid"`
	FieldErrors      map[string]string    `json:"fieldErrors"`
	LockedFields     []string             `json:"lockedFields"`
	AllowedTargets   []domain.EntryStatus `json:"allowedTargets"`
	Link             domain.BookingLink   `json:"bookingLink"`
}

// OK reports whether the transition may be committed.
func (d Decision) OK() bool {
	return d.Permitted && d.StateValid && len(d.FieldErrors) == 0
}

// Err converts the decision into the error taxonomy, or nil when OK.
func (d Decision) Err() error {
	switch {
	case !d.Permitted:
		return fmt.Errorf("%w: %s", apperrors.ErrForbidden, d.PermissionReason)
	case !d.StateValid && d.Operation == "":
		return fmt.Errorf("%w: unknown target status", apperrors.ErrInvalidState)
	case !d.StateValid:
		return fmt.Errorf("%w: %s is not defined from the current status", apperrors.ErrInvalidState, d.Operation)
	case len(d.FieldErrors) > 0:
		return apperrors.NewFieldsError(d.FieldErrors)
	}
	return nil
}

// Evaluate runs the permission layer, the state check and tiered field validation.
func Evaluate(in GateInput) Decision {
	d := Decision{
		FieldErrors:    map[string]string{},
		LockedFields:   LockedFields(in.Entry, in.RFP, in.Role),
		AllowedTargets: AllowedTargets(in.Entry.Status, in.Role, in.Policy),
		Link:           in.Link,
	}

	op, err := OperationFor(in.Entry.Status, in.Target)
	if err != nil {
		// unknown targets are not a permission question
		d.Permitted = true
		return d
	}
	d.Operation = op
	d.Tier = TierFor(op)

	d.Permitted, d.PermissionReason = Permitted(op, in.Role, in.Policy)
	if !d.Permitted {
		return d
	}

	d.StateValid = ValidFrom(op, in.Entry.Status)
	if !d.StateValid {
		return d
	}

	locked := make(map[string]bool, len(d.LockedFields))
	for _, f := range d.LockedFields {
		locked[f] = true
	}
	for _, f := range in.Changed {
		if locked[f] {
			d.FieldErrors[f] = MsgFieldLocked
		}
	}

	switch d.Tier {
	case TierDraft:
		mergeErrors(d.FieldErrors, ValidateDraftTier(in.Entry))
	case TierSubmit:
		mergeErrors(d.FieldErrors, ValidateSubmitTier(in.Entry, in.Link))
	}
	if op == OpReject && strings.TrimSpace(in.RejectionReason) == "" {
		d.FieldErrors[domain.FieldRejection] = MsgReasonRequired
	}
	return d
}

// ValidateDraftTier checks what every persisted entry must satisfy.
func ValidateDraftTier(e domain.Entry) map[string]string {
	errs := map[string]string{}
	if !e.Amount.GreaterThan(decimal.Zero) {
		errs[domain.FieldAmount] = MsgAmountPositive
	}
	if e.IsNoBooking && e.HasBookingRef() {
		errs[domain.FieldBookingRef] = MsgBookingExclusive
	}
	return errs
}

// ValidateSubmitTier checks the fields required once an entry leaves draft.
func ValidateSubmitTier(e domain.Entry, link domain.BookingLink) map[string]string {
	errs := ValidateDraftTier(e)
	if strings.TrimSpace(e.CompanyID) == "" {
		errs[domain.FieldCompanyID] = MsgRequired
	}
	if strings.TrimSpace(e.AccountID) == "" {
		errs[domain.FieldAccountID] = MsgRequired
	}
	if e.Kind != domain.KindTransfer && strings.TrimSpace(e.CategoryID) == "" {
		errs[domain.FieldCategoryID] = MsgRequired
	}
	if strings.TrimSpace(e.Payee) == "" {
		errs[domain.FieldPayee] = MsgRequired
	}
	if _, exclusive := errs[domain.FieldBookingRef]; !exclusive {
		if msg := bookingRule(e, link); msg != "" {
			errs[domain.FieldBookingRef] = msg
		}
	}
	return errs
}

// bookingRule enforces exactly one of a verified booking or the no-booking flag.
func bookingRule(e domain.Entry, link domain.BookingLink) string {
	if e.IsNoBooking {
		return ""
	}
	if !e.HasBookingRef() || !link.Verified() {
		return MsgBookingUnverified
	}
	if !strings.EqualFold(strings.TrimSpace(link.Reference()), strings.TrimSpace(e.BookingRef)) {
		return MsgBookingUnverified
	}
	if rec, _ := link.Booking(); rec.CompanyID != e.CompanyID {
		return MsgBookingConflict
	}
	return ""
}

// HasBookingConflict reports whether the linked booking is scoped to another company.
func HasBookingConflict(e domain.Entry, link domain.BookingLink) bool {
	rec, ok := link.Booking()
	return ok && rec.CompanyID != e.CompanyID
}

var allEditableFields = []string{
	domain.FieldAccountID,
	domain.FieldAmount,
	domain.FieldAttachments,
	domain.FieldBookingRef,
	domain.FieldCategoryID,
	domain.FieldCompanyID,
	domain.FieldIsNoBooking,
	domain.FieldKind,
	domain.FieldNote,
	domain.FieldOccurredOn,
	domain.FieldPayee,
	domain.FieldPaymentMethod,
}

// paymentFields freeze while an attached RFP is in a locking status.
var paymentFields = []string{
	domain.FieldAmount,
	domain.FieldBookingRef,
	domain.FieldCategoryID,
	domain.FieldCompanyID,
	domain.FieldIsNoBooking,
	domain.FieldPayee,
	domain.FieldPaymentMethod,
}

// LockedFields is the single source of truth for which entry fields the role may not edit.
func LockedFields(e domain.Entry, rfp *domain.RFP, role domain.Role) []string {
	if role != domain.RolePreparer {
		return append([]string(nil), allEditableFields...)
	}
	if e.Status != domain.EntryDraft && e.Status != domain.EntryRejected {
		return append([]string(nil), allEditableFields...)
	}

	set := map[string]bool{}
	if rfp != nil && !rfp.Status.Terminal() {
		set[domain.FieldKind] = true
		if rfp.Status.Locked() {
			for _, f := range paymentFields {
				set[f] = true
			}
		}
	}
	out := make([]string, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func mergeErrors(dst, src map[string]string) {
	for k, v := range src {
		if _, exists := dst[k]; !exists {
			dst[k] = v
		}
	}
}
