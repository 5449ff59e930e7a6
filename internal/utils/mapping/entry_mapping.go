package mapping

import (
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	"github.com/SscSPs/entry_workbench/internal/models"
)

// ToModelEntry converts a domain Entry to a model Entry
func ToModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		EntryID:          d.EntryID,
		Kind:             string(d.Kind),
		Amount:           d.Amount,
		CompanyID:        d.CompanyID,
		AccountID:        d.AccountID,
		CategoryID:       d.CategoryID,
		BookingRef:       d.BookingRef,
		BookingCompanyID: d.BookingCompanyID,
		IsNoBooking:      d.IsNoBooking,
		Payee:            d.Payee,
		PaymentMethod:    d.PaymentMethod,
		Note:             d.Note,
		OccurredOn:       d.OccurredOn,
		Status:           string(d.Status),
		AttachmentCount:  d.AttachmentCount,
		RequestedBy:      nullable(d.RequestedBy),
		RequestedOn:      d.RequestedOn,
		ApprovedBy:       nullable(d.ApprovedBy),
		ApprovedOn:       d.ApprovedOn,
		RejectedBy:       nullable(d.RejectedBy),
		RejectedOn:       d.RejectedOn,
		RejectionReason:  nullable(d.RejectionReason),
		PostedBy:         nullable(d.PostedBy),
		PostedOn:         d.PostedOn,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a model Entry to a domain Entry
func ToDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:          m.EntryID,
		Kind:             domain.EntryKind(m.Kind),
		Amount:           m.Amount,
		CompanyID:        m.CompanyID,
		AccountID:        m.AccountID,
		CategoryID:       m.CategoryID,
		BookingRef:       m.BookingRef,
		BookingCompanyID: m.BookingCompanyID,
		IsNoBooking:      m.IsNoBooking,
		Payee:            m.Payee,
		PaymentMethod:    m.PaymentMethod,
		Note:             m.Note,
		OccurredOn:       m.OccurredOn,
		Status:           domain.EntryStatus(m.Status),
		AttachmentCount:  m.AttachmentCount,
		RequestedBy:      deref(m.RequestedBy),
		RequestedOn:      m.RequestedOn,
		ApprovedBy:       deref(m.ApprovedBy),
		ApprovedOn:       m.ApprovedOn,
		RejectedBy:       deref(m.RejectedBy),
		RejectedOn:       m.RejectedOn,
		RejectionReason:  deref(m.RejectionReason),
		PostedBy:         deref(m.PostedBy),
		PostedOn:         m.PostedOn,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntrySlice converts a slice of model Entry to a slice of domain Entry
func ToDomainEntrySlice(ms []models.Entry) []domain.Entry {
	ds := make([]domain.Entry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}
