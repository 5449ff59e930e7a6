package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RFP is the row stored in the rfps table, one per entry.
type RFP struct {
	RFPID         string          `db:"rfp_id"`
	EntryID       string          `db:"entry_id"`
	Payee         string          `db:"payee"`
	Amount        decimal.Decimal `db:"amount"`
	AmountInWords string          `db:"amount_in_words"`
	CompanyID     string          `db:"company_id"`
	BookingRef    string          `db:"booking_ref"`
	CategoryID    string          `db:"category_id"`
	Justification string          `db:"justification"`
	AttachmentIDs []string        `db:"attachment_ids"`
	DueDate       *time.Time      `db:"due_date"`
	PaymentTerms  string          `db:"payment_terms"`
	CostCenter    string          `db:"cost_center"`
	Status        string          `db:"status"`
	SubmittedBy   *string         `db:"submitted_by"`
	SubmittedOn   *time.Time      `db:"submitted_on"`
	CancelledBy   *string         `db:"cancelled_by"`
	CancelledOn   *time.Time      `db:"cancelled_on"`
	AdvancedEntry bool            `db:"advanced_entry"`
	AuditFields
}
