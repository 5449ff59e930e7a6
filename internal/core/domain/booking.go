package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// BookingRecord is read-only operational reference data from the booking registry.
type BookingRecord struct {
	BookingID          string     `json:"bookingID"`
	BookingNo          string     `json:"bookingNo"`
	CompanyID          string     `json:"companyID"`
	Client             string     `json:"client"`
	Origin             string     `json:"origin"`
	Destination        string     `json:"destination"`
	BookingDate        time.Time  `json:"bookingDate"`
	ETA                *time.Time `json:"eta,omitempty"`
	Status             string     `json:"status"` // operational status, e.g. "Delivered", "Closed", "For delivery"
	LinkedEntriesCount int        `json:"linkedEntriesCount"`
}

// Operational statuses that carry ranking weight.
const (
	BookingStatusDelivered = "Delivered"
	BookingStatusClosed    = "Closed"
)

type linkKind uint8

const (
	linkNone linkKind = iota
	linkUnverified
	linkVerified
)

// BookingLink is the derived result of resolving a booking reference. It is one of
// none, unverified (free-text placeholder) or verified (always carries its record).
// The zero value is the none link.
type BookingLink struct {
	kind      linkKind
	reference string
	booking   BookingRecord
}

// NoBookingLink is the link of an entry with no booking reference.
func NoBookingLink() BookingLink {
	return BookingLink{}
}

// UnverifiedLink is a free-text reference not found in the registry.
func UnverifiedLink(reference string) BookingLink {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return NoBookingLink()
	}
	return BookingLink{kind: linkUnverified, reference: reference}
}

// VerifiedLink is a reference confirmed to exist in the registry.
func VerifiedLink(record BookingRecord) BookingLink {
	return BookingLink{kind: linkVerified, reference: record.BookingNo, booking: record}
}

// IsNone reports whether no reference is linked.
func (l BookingLink) IsNone() bool { return l.kind == linkNone }

// Verified reports whether the reference matched a registry record.
func (l BookingLink) Verified() bool { return l.kind == linkVerified }

// Reference returns the linked reference text (the booking number when verified).
func (l BookingLink) Reference() string { return l.reference }

// Booking returns the matched record for verified links.
func (l BookingLink) Booking() (BookingRecord, bool) {
	if l.kind != linkVerified {
		return BookingRecord{}, false
	}
	return l.booking, true
}

func (l BookingLink) String() string {
	switch l.kind {
	case linkVerified:
		return fmt.Sprintf("verified(%s)", l.reference)
	case linkUnverified:
		return fmt.Sprintf("unverified(%s)", l.reference)
	default:
		return "none"
	}
}

type bookingLinkJSON struct {
	Reference      string         `json:"reference"`
	Verified       bool           `json:"verified"`
	MatchedBooking *BookingRecord `json:"matchedBooking,omitempty"`
}

// MarshalJSON renders {reference, verified, matchedBooking?}.
func (l BookingLink) MarshalJSON() ([]byte, error) {
	out := bookingLinkJSON{Reference: l.reference, Verified: l.Verified()}
	if rec, ok := l.Booking(); ok {
		out.MatchedBooking = &rec
	}
	return json.Marshal(out)
}

// DateWindow restricts booking search to a relative date range.
type DateWindow string

const (
	WindowAny       DateWindow = ""
	WindowToday     DateWindow = "TODAY"
	WindowYesterday DateWindow = "YESTERDAY"
	WindowLast7Days DateWindow = "LAST_7_DAYS"
)

// ParseDateWindow validates a raw window string; empty means no window.
func ParseDateWindow(s string) (DateWindow, error) {
	switch DateWindow(strings.ToUpper(s)) {
	case WindowAny, WindowToday, WindowYesterday, WindowLast7Days:
		return DateWindow(strings.ToUpper(s)), nil
	default:
		return "", fmt.Errorf("unknown date window: %q", s)
	}
}

// BookingSearchFilter narrows the interactive candidate list.
type BookingSearchFilter struct {
	Query         string
	Window        DateWindow
	Statuses      []string
	ReferenceDate *time.Time // entry date used to prefer temporally close bookings
}
