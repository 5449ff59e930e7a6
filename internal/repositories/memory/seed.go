package memory

import (
	"time"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
)

// Seed is reference data loaded into a Store. Kind is set by Load.
type Seed struct {
	Companies  []domain.ReferenceItem
	Accounts   []domain.ReferenceItem
	Categories []domain.ReferenceItem
	Bookings   []domain.BookingRecord
}

// Load adds the seed's rows, replacing rows with the same id.
func (s *Store) Load(sd Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range sd.Companies {
		c.Kind, c.CompanyID = domain.RefCompany, ""
		s.companies[c.ID] = c
	}
	for _, a := range sd.Accounts {
		a.Kind = domain.RefAccount
		s.accounts[a.ID] = a
	}
	for _, c := range sd.Categories {
		c.Kind = domain.RefCategory
		s.categories[c.ID] = c
	}
	s.bookings = append(s.bookings, sd.Bookings...)
}

// DemoSeed is a small two-company dataset for local runs.
func DemoSeed(now time.Time) Seed {
	day := func(offset int) time.Time {
		d := now.UTC().AddDate(0, 0, offset)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	return Seed{
		Companies: []domain.ReferenceItem{
			{ID: "cce", Name: "Cebu Cargo Express"},
			{ID: "mfl", Name: "Manila Freight Lines"},
		},
		Accounts: []domain.ReferenceItem{
			{ID: "cce-cash", CompanyID: "cce", Name: "Cash on Hand"},
			{ID: "cce-bank", CompanyID: "cce", Name: "BPI Current"},
			{ID: "mfl-bank", CompanyID: "mfl", Name: "BDO Savings"},
		},
		Categories: []domain.ReferenceItem{
			{ID: "cce-fuel", CompanyID: "cce", Name: "Fuel"},
			{ID: "cce-tolls", CompanyID: "cce", Name: "Tolls"},
			{ID: "cce-freight", CompanyID: "cce", Name: "Freight Income"},
			{ID: "mfl-fuel", CompanyID: "mfl", Name: "Fuel"},
		},
		Bookings: []domain.BookingRecord{
			{BookingID: "b1", BookingNo: "BK-001", CompanyID: "cce", Client: "Acme Trading", Origin: "Cebu", Destination: "Davao", BookingDate: day(0), Status: "For delivery"},
			{BookingID: "b2", BookingNo: "BK-002", CompanyID: "cce", Client: "Acme Trading", Origin: "Cebu", Destination: "Iloilo", BookingDate: day(-1), Status: domain.BookingStatusDelivered},
			{BookingID: "b3", BookingNo: "BK-003", CompanyID: "cce", Client: "Blue Harbor", Origin: "Manila", Destination: "Cebu", BookingDate: day(-5), Status: domain.BookingStatusClosed},
			{BookingID: "b4", BookingNo: "BK-001", CompanyID: "mfl", Client: "Northwind", Origin: "Manila", Destination: "Batangas", BookingDate: day(-2), Status: domain.BookingStatusDelivered},
		},
	}
}
