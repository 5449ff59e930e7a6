package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind classifies the financial movement an Entry records.
type EntryKind string

const (
	KindRevenue  EntryKind = "REVENUE"
	KindExpense  EntryKind = "EXPENSE"
	KindTransfer EntryKind = "TRANSFER"
)

// ParseEntryKind validates a raw kind string.
func ParseEntryKind(s string) (EntryKind, error) {
	switch EntryKind(strings.ToUpper(s)) {
	case KindRevenue, KindExpense, KindTransfer:
		return EntryKind(strings.ToUpper(s)), nil
	default:
		return "", fmt.Errorf("unknown entry kind: %q", s)
	}
}

// EntryStatus is the lifecycle state of an Entry.
type EntryStatus string

const (
	EntryDraft    EntryStatus = "DRAFT"
	EntryPending  EntryStatus = "PENDING"
	EntryApproved EntryStatus = "APPROVED"
	EntryRejected EntryStatus = "REJECTED"
	EntryPosted   EntryStatus = "POSTED"
)

// ParseEntryStatus validates a raw status string.
func ParseEntryStatus(s string) (EntryStatus, error) {
	switch EntryStatus(strings.ToUpper(s)) {
	case EntryDraft, EntryPending, EntryApproved, EntryRejected, EntryPosted:
		return EntryStatus(strings.ToUpper(s)), nil
	default:
		return "", fmt.Errorf("unknown entry status: %q", s)
	}
}

// Entry is a single revenue/expense/transfer record moving through the approval workflow.
type Entry struct {
	EntryID          string          `json:"entryID"`
	Kind             EntryKind       `json:"kind"`
	Amount           decimal.Decimal `json:"amount"` // always > 0 once persisted
	CompanyID        string          `json:"companyID"`
	AccountID        string          `json:"accountID"`
	CategoryID       string          `json:"categoryID"` // required unless Kind is TRANSFER
	BookingRef       string          `json:"bookingRef"`
	BookingCompanyID string          `json:"bookingCompanyID"` // company the ref was verified in, empty when unverified
	IsNoBooking      bool            `json:"isNoBooking"`
	Payee            string          `json:"payee"`
	PaymentMethod    string          `json:"paymentMethod"`
	Note             string          `json:"note"`
	OccurredOn       time.Time       `json:"occurredOn"`
	Status           EntryStatus     `json:"status"`
	AttachmentCount  int             `json:"attachmentCount"`

	RequestedBy     string     `json:"requestedBy,omitempty"`
	RequestedOn     *time.Time `json:"requestedOn,omitempty"`
	ApprovedBy      string     `json:"approvedBy,omitempty"`
	ApprovedOn      *time.Time `json:"approvedOn,omitempty"`
	RejectedBy      string     `json:"rejectedBy,omitempty"`
	RejectedOn      *time.Time `json:"rejectedOn,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	PostedBy        string     `json:"postedBy,omitempty"`
	PostedOn        *time.Time `json:"postedOn,omitempty"`
	AuditFields
}

// HasBookingRef reports whether a non-blank booking reference is set.
func (e Entry) HasBookingRef() bool {
	return strings.TrimSpace(e.BookingRef) != ""
}

// Editable field names, used by field errors and the lock set.
const (
	FieldAmount        = "amount"
	FieldKind          = "kind"
	FieldCompanyID     = "companyID"
	FieldAccountID     = "accountID"
	FieldCategoryID    = "categoryID"
	FieldBookingRef    = "bookingRef"
	FieldIsNoBooking   = "isNoBooking"
	FieldPayee         = "payee"
	FieldPaymentMethod = "paymentMethod"
	FieldNote          = "note"
	FieldOccurredOn    = "occurredOn"
	FieldAttachments   = "attachmentCount"
	FieldRejection     = "rejectionReason"
	FieldVersion       = "version"
)

// EntryChanges is a partial edit of an Entry. Nil fields are left untouched.
type EntryChanges struct {
	Kind            *EntryKind
	Amount          *decimal.Decimal
	CompanyID       *string
	AccountID       *string
	CategoryID      *string
	BookingRef      *string
	IsNoBooking     *bool
	Payee           *string
	PaymentMethod   *string
	Note            *string
	OccurredOn      *time.Time
	AttachmentCount *int
}

// IsEmpty reports whether no field is set.
func (c EntryChanges) IsEmpty() bool {
	return len(c.Fields()) == 0
}

// Fields lists the names of the fields this change set touches.
func (c EntryChanges) Fields() []string {
	var f []string
	if c.Kind != nil {
		f = append(f, FieldKind)
	}
	if c.Amount != nil {
		f = append(f, FieldAmount)
	}
	if c.CompanyID != nil {
		f = append(f, FieldCompanyID)
	}
	if c.AccountID != nil {
		f = append(f, FieldAccountID)
	}
	if c.CategoryID != nil {
		f = append(f, FieldCategoryID)
	}
	if c.BookingRef != nil {
		f = append(f, FieldBookingRef)
	}
	if c.IsNoBooking != nil {
		f = append(f, FieldIsNoBooking)
	}
	if c.Payee != nil {
		f = append(f, FieldPayee)
	}
	if c.PaymentMethod != nil {
		f = append(f, FieldPaymentMethod)
	}
	if c.Note != nil {
		f = append(f, FieldNote)
	}
	if c.OccurredOn != nil {
		f = append(f, FieldOccurredOn)
	}
	if c.AttachmentCount != nil {
		f = append(f, FieldAttachments)
	}
	return f
}

// ApplyTo returns a copy of e with the changes applied.
func (c EntryChanges) ApplyTo(e Entry) Entry {
	if c.Kind != nil {
		e.Kind = *c.Kind
	}
	if c.Amount != nil {
		e.Amount = *c.Amount
	}
	if c.CompanyID != nil {
		e.CompanyID = strings.TrimSpace(*c.CompanyID)
	}
	if c.AccountID != nil {
		e.AccountID = strings.TrimSpace(*c.AccountID)
	}
	if c.CategoryID != nil {
		e.CategoryID = strings.TrimSpace(*c.CategoryID)
	}
	if c.BookingRef != nil {
		e.BookingRef = strings.TrimSpace(*c.BookingRef)
	}
	if c.IsNoBooking != nil {
		e.IsNoBooking = *c.IsNoBooking
	}
	if c.Payee != nil {
		e.Payee = strings.TrimSpace(*c.Payee)
	}
	if c.PaymentMethod != nil {
		e.PaymentMethod = *c.PaymentMethod
	}
	if c.Note != nil {
		e.Note = *c.Note
	}
	if c.OccurredOn != nil {
		e.OccurredOn = *c.OccurredOn
	}
	if c.AttachmentCount != nil {
		e.AttachmentCount = *c.AttachmentCount
	}
	return e
}
