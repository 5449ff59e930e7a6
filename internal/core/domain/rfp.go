package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RFPStatus is the lifecycle state of a Request for Payment.
type RFPStatus string

const (
	RFPDraft     RFPStatus = "DRAFT"
	RFPSubmitted RFPStatus = "SUBMITTED"
	// RFPApproved and RFPPaid are set by the external payment-posting step only.
	RFPApproved  RFPStatus = "APPROVED"
	RFPPaid      RFPStatus = "PAID"
	RFPCancelled RFPStatus = "CANCELLED"
)

// ParseRFPStatus validates a raw status string.
func ParseRFPStatus(s string) (RFPStatus, error) {
	switch RFPStatus(strings.ToUpper(s)) {
	case RFPDraft, RFPSubmitted, RFPApproved, RFPPaid, RFPCancelled:
		return RFPStatus(strings.ToUpper(s)), nil
	default:
		return "", fmt.Errorf("unknown rfp status: %q", s)
	}
}

// Locked reports whether the status freezes the owning entry's payment fields.
func (s RFPStatus) Locked() bool {
	return s == RFPSubmitted || s == RFPApproved || s == RFPPaid
}

// Terminal reports whether the RFP no longer counts as attached.
func (s RFPStatus) Terminal() bool {
	return s == RFPCancelled
}

// RFP is the optional payment-request envelope attached 1:1 to an expense Entry.
// Payee, Amount, CompanyID, BookingRef and CategoryID mirror the entry and are not authoritative.
type RFP struct {
	RFPID         string          `json:"rfpID"`
	EntryID       string          `json:"entryID"`
	Payee         string          `json:"payee"`
	Amount        decimal.Decimal `json:"amount"`
	AmountInWords string          `json:"amountInWords"`
	CompanyID     string          `json:"companyID"`
	BookingRef    string          `json:"bookingRef"`
	CategoryID    string          `json:"categoryID"`

	Justification string     `json:"justification"`
	AttachmentIDs []string   `json:"attachmentIDs"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	PaymentTerms  string     `json:"paymentTerms"`
	CostCenter    string     `json:"costCenter"`

	Status        RFPStatus  `json:"status"`
	SubmittedBy   string     `json:"submittedBy,omitempty"`
	SubmittedOn   *time.Time `json:"submittedOn,omitempty"`
	CancelledBy   string     `json:"cancelledBy,omitempty"`
	CancelledOn   *time.Time `json:"cancelledOn,omitempty"`
	AdvancedEntry bool       `json:"advancedEntry"` // submission moved the entry to PENDING
	AuditFields
}

// RFP field names used in validation errors.
const (
	RFPFieldPayee         = "payee"
	RFPFieldAmount        = "amount"
	RFPFieldAttachments   = "attachments"
	RFPFieldJustification = "justification"
	RFPFieldConfirm       = "confirm"
)

// RFPChanges edits the RFP-only fields. Nil fields are left untouched.
type RFPChanges struct {
	Justification *string
	AttachmentIDs []string // nil = untouched, empty = clear
	DueDate       *time.Time
	PaymentTerms  *string
	CostCenter    *string
}

// IsEmpty reports whether no field is set.
func (c RFPChanges) IsEmpty() bool {
	return c.Justification == nil && c.AttachmentIDs == nil && c.DueDate == nil &&
		c.PaymentTerms == nil && c.CostCenter == nil
}

// ApplyTo returns a copy of r with the changes applied.
func (c RFPChanges) ApplyTo(r RFP) RFP {
	if c.Justification != nil {
		r.Justification = strings.TrimSpace(*c.Justification)
	}
	if c.AttachmentIDs != nil {
		ids := make([]string, 0, len(c.AttachmentIDs))
		for _, id := range c.AttachmentIDs {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		r.AttachmentIDs = ids
	}
	if c.DueDate != nil {
		d := *c.DueDate
		r.DueDate = &d
	}
	if c.PaymentTerms != nil {
		r.PaymentTerms = *c.PaymentTerms
	}
	if c.CostCenter != nil {
		r.CostCenter = *c.CostCenter
	}
	return r
}
