package dto

import (
	"time"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RFPTransitionRequest moves an RFP to TargetStatus, optionally editing its RFP-only fields.
// Confirm must be true to cancel.
type RFPTransitionRequest struct {
	TargetStatus    domain.RFPStatus `json:"targetStatus" binding:"required"`
	ExpectedVersion int64            `json:"expectedVersion" binding:"required,gte=1"`
	Confirm         bool             `json:"confirm"`
	Justification   *string          `json:"justification" binding:"omitempty,max=2000"`
	AttachmentIDs   []string         `json:"attachmentIDs" binding:"omitempty,dive,max=128"`
	DueDate         *time.Time       `json:"dueDate"`
	PaymentTerms    *string          `json:"paymentTerms"`
	CostCenter      *string          `json:"costCenter"`
}

// Changes extracts the RFP-only field edits.
func (r RFPTransitionRequest) Changes() domain.RFPChanges {
	return domain.RFPChanges{
		Justification: r.Justification,
		AttachmentIDs: r.AttachmentIDs,
		DueDate:       r.DueDate,
		PaymentTerms:  r.PaymentTerms,
		CostCenter:    r.CostCenter,
	}
}

// DetachRFPParams identifies the RFP version being removed.
type DetachRFPParams struct {
	ExpectedVersion int64 `form:"expectedVersion" binding:"required,gte=1"`
}

// RFPResponse defines the data returned for a payment request.
type RFPResponse struct {
	RFPID         string           `json:"rfpID"`
	EntryID       string           `json:"entryID"`
	Payee         string           `json:"payee"`
	Amount        decimal.Decimal  `json:"amount"`
	AmountInWords string           `json:"amountInWords"`
	CompanyID     string           `json:"companyID"`
	BookingRef    string           `json:"bookingRef"`
	CategoryID    string           `json:"categoryID"`
	Justification string           `json:"justification"`
	AttachmentIDs []string         `json:"attachmentIDs"`
	DueDate       *time.Time       `json:"dueDate,omitempty"`
	PaymentTerms  string           `json:"paymentTerms"`
	CostCenter    string           `json:"costCenter"`
	Status        domain.RFPStatus `json:"status"`
	SubmittedBy   string           `json:"submittedBy,omitempty"`
	SubmittedOn   *time.Time       `json:"submittedOn,omitempty"`
	CancelledBy   string           `json:"cancelledBy,omitempty"`
	CancelledOn   *time.Time       `json:"cancelledOn,omitempty"`
	Version       int64            `json:"version"`
	CreatedAt     time.Time        `json:"createdAt"`
	CreatedBy     string           `json:"createdBy"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy string           `json:"lastUpdatedBy"`
}

// ToRFPResponse converts a domain.RFP to RFPResponse DTO.
func ToRFPResponse(r *domain.RFP) RFPResponse {
	attachments := r.AttachmentIDs
	if attachments == nil {
		attachments = []string{}
	}
	return RFPResponse{
		RFPID:         r.RFPID,
		EntryID:       r.EntryID,
		Payee:         r.Payee,
		Amount:        r.Amount,
		AmountInWords: r.AmountInWords,
		CompanyID:     r.CompanyID,
		BookingRef:    r.BookingRef,
		CategoryID:    r.CategoryID,
		Justification: r.Justification,
		AttachmentIDs: attachments,
		DueDate:       r.DueDate,
		PaymentTerms:  r.PaymentTerms,
		CostCenter:    r.CostCenter,
		Status:        r.Status,
		SubmittedBy:   r.SubmittedBy,
		SubmittedOn:   r.SubmittedOn,
		CancelledBy:   r.CancelledBy,
		CancelledOn:   r.CancelledOn,
		Version:       r.Version,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}
