package mapping

import (
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	"github.com/SscSPs/entry_workbench/internal/models"
)

// ToDomainBooking converts a model Booking to a domain BookingRecord
func ToDomainBooking(m models.Booking) domain.BookingRecord {
	return domain.BookingRecord{
		BookingID:          m.BookingID,
		BookingNo:          m.BookingNo,
		CompanyID:          m.CompanyID,
		Client:             m.Client,
		Origin:             m.Origin,
		Destination:        m.Destination,
		BookingDate:        m.BookingDate,
		ETA:                m.ETA,
		Status:             m.Status,
		LinkedEntriesCount: m.LinkedEntriesCount,
	}
}

// ToDomainBookingSlice converts a slice of model Booking to a slice of domain BookingRecord
func ToDomainBookingSlice(ms []models.Booking) []domain.BookingRecord {
	ds := make([]domain.BookingRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBooking(m)
	}
	return ds
}

// ToDomainReferenceItem converts a model ReferenceItem to a domain ReferenceItem
func ToDomainReferenceItem(kind domain.ReferenceKind, m models.ReferenceItem) domain.ReferenceItem {
	return domain.ReferenceItem{
		Kind:      kind,
		ID:        m.ID,
		CompanyID: deref(m.CompanyID),
		Name:      m.Name,
	}
}
