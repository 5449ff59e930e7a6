package mapping

import (
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	"github.com/SscSPs/entry_workbench/internal/models"
)

// ToModelRFP converts a domain RFP to a model RFP
func ToModelRFP(d domain.RFP) models.RFP {
	attachments := d.AttachmentIDs
	if attachments == nil {
		attachments = []string{}
	}
	return models.RFP{
		RFPID:         d.RFPID,
		EntryID:       d.EntryID,
		Payee:         d.Payee,
		Amount:        d.Amount,
		AmountInWords: d.AmountInWords,
		CompanyID:     d.CompanyID,
		BookingRef:    d.BookingRef,
		CategoryID:    d.CategoryID,
		Justification: d.Justification,
		AttachmentIDs: attachments,
		DueDate:       d.DueDate,
		PaymentTerms:  d.PaymentTerms,
		CostCenter:    d.CostCenter,
		Status:        string(d.Status),
		SubmittedBy:   nullable(d.SubmittedBy),
		SubmittedOn:   d.SubmittedOn,
		CancelledBy:   nullable(d.CancelledBy),
		CancelledOn:   d.CancelledOn,
		AdvancedEntry: d.AdvancedEntry,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRFP converts a model RFP to a domain RFP
func ToDomainRFP(m models.RFP) domain.RFP {
	attachments := m.AttachmentIDs
	if attachments == nil {
		attachments = []string{}
	}
	return domain.RFP{
		RFPID:         m.RFPID,
		EntryID:       m.EntryID,
		Payee:         m.Payee,
		Amount:        m.Amount,
		AmountInWords: m.AmountInWords,
		CompanyID:     m.CompanyID,
		BookingRef:    m.BookingRef,
		CategoryID:    m.CategoryID,
		Justification: m.Justification,
		AttachmentIDs: attachments,
		DueDate:       m.DueDate,
		PaymentTerms:  m.PaymentTerms,
		CostCenter:    m.CostCenter,
		Status:        domain.RFPStatus(m.Status),
		SubmittedBy:   deref(m.SubmittedBy),
		SubmittedOn:   m.SubmittedOn,
		CancelledBy:   deref(m.CancelledBy),
		CancelledOn:   m.CancelledOn,
		AdvancedEntry: m.AdvancedEntry,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
