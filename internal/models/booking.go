package models

import "time"

// Booking is a read-only row of the operational booking registry.
type Booking struct {
	BookingID          string     `db:"booking_id"`
	BookingNo          string     `db:"booking_no"`
	CompanyID          string     `db:"company_id"`
	Client             string     `db:"client"`
	Origin             string     `db:"origin"`
	Destination        string     `db:"destination"`
	BookingDate        time.Time  `db:"booking_date"`
	ETA                *time.Time `db:"eta"`
	Status             string     `db:"status"`
	LinkedEntriesCount int        `db:"linked_entries_count"`
}

// ReferenceItem is a row of the companies, accounts or categories tables.
// CompanyID is null for companies.
type ReferenceItem struct {
	ID        string  `db:"id"`
	CompanyID *string `db:"company_id"`
	Name      string  `db:"name"`
}
