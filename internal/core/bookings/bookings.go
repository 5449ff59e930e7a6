// Package bookings resolves booking references into links and filters/ranks
// registry candidates for the interactive picker.
package bookings

import (
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
)

const day = 24 * time.Hour

// NormalizeReference trims surrounding whitespace from a typed or pasted reference.
func NormalizeReference(ref string) string {
	return strings.TrimSpace(ref)
}

// Link builds the BookingLink for ref given the registry's answer for it. rec is the
// record the registry returned for (companyID, ref), or nil when there was none.
func Link(companyID, ref string, rec *domain.BookingRecord) domain.BookingLink {
	ref = NormalizeReference(ref)
	if ref == "" {
		return domain.NoBookingLink()
	}
	if rec != nil && rec.CompanyID == companyID && strings.EqualFold(rec.BookingNo, ref) {
		return domain.VerifiedLink(*rec)
	}
	return domain.UnverifiedLink(ref)
}

// StatusWeight orders completed bookings first.
func StatusWeight(status string) int {
	switch {
	case strings.EqualFold(status, domain.BookingStatusDelivered):
		return 3
	case strings.EqualFold(status, domain.BookingStatusClosed):
		return 2
	default:
		return 1
	}
}

// WindowBounds returns the half-open [from, to) range a date window covers relative to
// now, in now's location. ok is false for WindowAny.
func WindowBounds(w domain.DateWindow, now time.Time) (from, to time.Time, ok bool) {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch w {
	case domain.WindowToday:
		return startOfToday, startOfToday.AddDate(0, 0, 1), true
	case domain.WindowYesterday:
		return startOfToday.AddDate(0, 0, -1), startOfToday, true
	case domain.WindowLast7Days:
		return startOfToday.AddDate(0, 0, -6), startOfToday.AddDate(0, 0, 1), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Matches reports whether rec passes the company scope, the text query, the date
// window and the status set.
func Matches(rec domain.BookingRecord, companyID string, f domain.BookingSearchFilter, now time.Time) bool {
	if rec.CompanyID != companyID {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		hit := false
		for _, field := range []string{rec.BookingNo, rec.Client, rec.Origin, rec.Destination} {
			if strings.Contains(strings.ToLower(field), q) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	if from, to, ok := WindowBounds(f.Window, now); ok {
		d := rec.BookingDate.In(now.Location())
		if d.Before(from) || !d.Before(to) {
			return false
		}
	}
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if strings.EqualFold(strings.TrimSpace(s), rec.Status) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Filter returns the records matching the filter, preserving input order.
func Filter(records []domain.BookingRecord, companyID string, f domain.BookingSearchFilter, now time.Time) []domain.BookingRecord {
	out := make([]domain.BookingRecord, 0, len(records))
	for _, rec := range records {
		if Matches(rec, companyID, f, now) {
			out = append(out, rec)
		}
	}
	return out
}

// Rank sorts records in place: status weight descending, then closeness to
// referenceDate, then most recent first, then booking number. Bookings within a
// day of referenceDate count as equally close; the rest follow by ascending distance.
func Rank(records []domain.BookingRecord, referenceDate *time.Time) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if wa, wb := StatusWeight(a.Status), StatusWeight(b.Status); wa != wb {
			return wa > wb
		}
		if referenceDate != nil {
			ca, cb := closeness(a.BookingDate, *referenceDate), closeness(b.BookingDate, *referenceDate)
			if ca != cb {
				return ca < cb
			}
		}
		if !a.BookingDate.Equal(b.BookingDate) {
			return a.BookingDate.After(b.BookingDate)
		}
		return a.BookingNo < b.BookingNo
	})
}

// closeness is the distance from ref, collapsed to zero within a day.
func closeness(d, ref time.Time) time.Duration {
	if dist := distance(d, ref); dist > day {
		return dist
	}
	return 0
}

// Search filters then ranks.
func Search(records []domain.BookingRecord, companyID string, f domain.BookingSearchFilter, now time.Time) []domain.BookingRecord {
	out := Filter(records, companyID, f, now)
	Rank(out, f.ReferenceDate)
	return out
}

func distance(a, b time.Time) time.Duration {
	return abs(a.Sub(b))
}

func abs(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
