package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is the row stored in the entries table.
// Empty strings are stored for unset text columns; workflow stamps are nullable.
type Entry struct {
	EntryID          string          `db:"entry_id"`
	Kind             string          `db:"kind"`
	Amount           decimal.Decimal `db:"amount"`
	CompanyID        string          `db:"company_id"`
	AccountID        string          `db:"account_id"`
	CategoryID       string          `db:"category_id"`
	BookingRef       string          `db:"booking_ref"`
	BookingCompanyID string          `db:"booking_company_id"`
	IsNoBooking      bool            `db:"is_no_booking"`
	Payee            string          `db:"payee"`
	PaymentMethod    string          `db:"payment_method"`
	Note             string          `db:"note"`
	OccurredOn       time.Time       `db:"occurred_on"`
	Status           string          `db:"status"`
	AttachmentCount  int             `db:"attachment_count"`
	RequestedBy      *string         `db:"requested_by"`
	RequestedOn      *time.Time      `db:"requested_on"`
	ApprovedBy       *string         `db:"approved_by"`
	ApprovedOn       *time.Time      `db:"approved_on"`
	RejectedBy       *string         `db:"rejected_by"`
	RejectedOn       *time.Time      `db:"rejected_on"`
	RejectionReason  *string         `db:"rejection_reason"`
	PostedBy         *string         `db:"posted_by"`
	PostedOn         *time.Time      `db:"posted_on"`
	AuditFields
}
