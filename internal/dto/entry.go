package dto

import (
	"time"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines the data needed to create a draft entry.
type CreateEntryRequest struct {
	Kind            domain.EntryKind `json:"kind" binding:"required,oneof=REVENUE EXPENSE TRANSFER"`
	Amount          decimal.Decimal  `json:"amount" binding:"decimal_gt0"`
	CompanyID       string           `json:"companyID"`
	AccountID       string           `json:"accountID"`
	CategoryID      string           `json:"categoryID"`
	BookingRef      string           `json:"bookingRef"`
	IsNoBooking     bool             `json:"isNoBooking"`
	Payee           string           `json:"payee"`
	PaymentMethod   string           `json:"paymentMethod"`
	Note            string           `json:"note" binding:"max=2000"`
	OccurredOn      *time.Time       `json:"occurredOn"` // defaults to today
	AttachmentCount int              `json:"attachmentCount" binding:"gte=0"`
}

// EntryChangesRequest carries optional field edits submitted with a transition.
type EntryChangesRequest struct {
	Kind            *domain.EntryKind `json:"kind" binding:"omitempty,oneof=REVENUE EXPENSE TRANSFER"`
	Amount          *decimal.Decimal  `json:"amount"`
	CompanyID       *string           `json:"companyID"`
	AccountID       *string           `json:"accountID"`
	CategoryID      *string           `json:"categoryID"`
	BookingRef      *string           `json:"bookingRef"`
	IsNoBooking     *bool             `json:"isNoBooking"`
	Payee           *string           `json:"payee"`
	PaymentMethod   *string           `json:"paymentMethod"`
	Note            *string           `json:"note" binding:"omitempty,max=2000"`
	OccurredOn      *time.Time        `json:"occurredOn"`
	AttachmentCount *int              `json:"attachmentCount" binding:"omitempty,gte=0"`
}

// ToDomain converts the request into a domain change set. A nil request yields no changes.
func (r *EntryChangesRequest) ToDomain() domain.EntryChanges {
	if r == nil {
		return domain.EntryChanges{}
	}
	return domain.EntryChanges{
		Kind:            r.Kind,
		Amount:          r.Amount,
		CompanyID:       r.CompanyID,
		AccountID:       r.AccountID,
		CategoryID:      r.CategoryID,
		BookingRef:      r.BookingRef,
		IsNoBooking:     r.IsNoBooking,
		Payee:           r.Payee,
		PaymentMethod:   r.PaymentMethod,
		Note:            r.Note,
		OccurredOn:      r.OccurredOn,
		AttachmentCount: r.AttachmentCount,
	}
}

// TransitionEntryRequest requests a move to TargetStatus against the version the caller read.
type TransitionEntryRequest struct {
	TargetStatus    domain.EntryStatus   `json:"targetStatus" binding:"required"`
	ExpectedVersion int64                `json:"expectedVersion" binding:"required,gte=1"`
	RejectionReason string               `json:"rejectionReason"`
	Changes         *EntryChangesRequest `json:"changes"`
}

// ListEntriesParams defines query parameters for listing entries.
type ListEntriesParams struct {
	CompanyID string  `form:"companyID"`
	Status    string  `form:"status" binding:"omitempty,oneof=DRAFT PENDING APPROVED REJECTED POSTED"`
	Kind      string  `form:"kind" binding:"omitempty,oneof=REVENUE EXPENSE TRANSFER"`
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// EntryResponse defines the data returned for an entry.
type EntryResponse struct {
	EntryID         string             `json:"entryID"`
	Kind            domain.EntryKind   `json:"kind"`
	Amount          decimal.Decimal    `json:"amount"`
	CompanyID       string             `json:"companyID"`
	AccountID       string             `json:"accountID"`
	CategoryID      string             `json:"categoryID"`
	BookingRef      string             `json:"bookingRef"`
	IsNoBooking     bool               `json:"isNoBooking"`
	Payee           string             `json:"payee"`
	PaymentMethod   string             `json:"paymentMethod"`
	Note            string             `json:"note"`
	OccurredOn      time.Time          `json:"occurredOn"`
	Status          domain.EntryStatus `json:"status"`
	AttachmentCount int                `json:"attachmentCount"`
	RequestedBy     string             `json:"requestedBy,omitempty"`
	RequestedOn     *time.Time         `json:"requestedOn,omitempty"`
	ApprovedBy      string             `json:"approvedBy,omitempty"`
	ApprovedOn      *time.Time         `json:"approvedOn,omitempty"`
	RejectedBy      string             `json:"rejectedBy,omitempty"`
	RejectedOn      *time.Time         `json:"rejectedOn,omitempty"`
	RejectionReason string             `json:"rejectionReason,omitempty"`
	PostedBy        string             `json:"postedBy,omitempty"`
	PostedOn        *time.Time         `json:"postedOn,omitempty"`
	Version         int64              `json:"version"`
	CreatedAt       time.Time          `json:"createdAt"`
	CreatedBy       string             `json:"createdBy"`
	LastUpdatedAt   time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy   string             `json:"lastUpdatedBy"`
}

// ListEntriesResponse wraps a page of entries.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryResponse converts a domain.Entry to EntryResponse DTO.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:         e.EntryID,
		Kind:            e.Kind,
		Amount:          e.Amount,
		CompanyID:       e.CompanyID,
		AccountID:       e.AccountID,
		CategoryID:      e.CategoryID,
		BookingRef:      e.BookingRef,
		IsNoBooking:     e.IsNoBooking,
		Payee:           e.Payee,
		PaymentMethod:   e.PaymentMethod,
		Note:            e.Note,
		OccurredOn:      e.OccurredOn,
		Status:          e.Status,
		AttachmentCount: e.AttachmentCount,
		RequestedBy:     e.RequestedBy,
		RequestedOn:     e.RequestedOn,
		ApprovedBy:      e.ApprovedBy,
		ApprovedOn:      e.ApprovedOn,
		RejectedBy:      e.RejectedBy,
		RejectedOn:      e.RejectedOn,
		RejectionReason: e.RejectionReason,
		PostedBy:        e.PostedBy,
		PostedOn:        e.PostedOn,
		Version:         e.Version,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
		LastUpdatedAt:   e.LastUpdatedAt,
		LastUpdatedBy:   e.LastUpdatedBy,
	}
}

// ToEntryResponses converts a slice of domain.Entry to []EntryResponse.
func ToEntryResponses(entries []domain.Entry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
