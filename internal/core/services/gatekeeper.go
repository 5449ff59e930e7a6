package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/entry_workbench/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/entry_workbench/internal/core/ports/services"
	"github.com/SscSPs/entry_workbench/internal/core/workflow"
)

// Reference-data messages added to gate field errors.
const (
	msgUnknownCompany  = "unknown company"
	msgUnknownAccount  = "unknown account for this company"
	msgUnknownCategory = "unknown category for this company"
)

// gatekeeper feeds the pure workflow gate with the booking link and reference data
// it cannot look up itself. Entry and RFP services share it.
type gatekeeper struct {
	bookings portssvc.BookingSvcFacade
	refs     portsrepo.ReferenceDataReader
	policy   workflow.PostingPolicy
}

// linkFor resolves the entry's current booking link. A reference is resolved in the
// company it was verified in, so a later company change surfaces as a conflict.
func (g *gatekeeper) linkFor(ctx context.Context, e domain.Entry) (domain.BookingLink, error) {
	if e.IsNoBooking || !e.HasBookingRef() {
		return domain.NoBookingLink(), nil
	}
	scope := e.BookingCompanyID
	if scope == "" {
		scope = e.CompanyID
	}
	if scope == "" {
		return domain.UnverifiedLink(e.BookingRef), nil
	}
	return g.bookings.ResolveBooking(ctx, scope, e.BookingRef)
}

// rebindBooking re-resolves the reference against the entry's own company and records
// where it was verified.
func (g *gatekeeper) rebindBooking(ctx context.Context, e *domain.Entry) error {
	e.BookingCompanyID = ""
	if e.IsNoBooking || !e.HasBookingRef() || e.CompanyID == "" {
		return nil
	}
	link, err := g.bookings.ResolveBooking(ctx, e.CompanyID, e.BookingRef)
	if err != nil {
		return err
	}
	if rec, ok := link.Booking(); ok {
		e.BookingCompanyID = rec.CompanyID
		e.BookingRef = rec.BookingNo
	}
	return nil
}

// decide evaluates the gate and, at submit tier, checks the referenced ids exist.
func (g *gatekeeper) decide(ctx context.Context, in workflow.GateInput) (workflow.Decision, error) {
	if in.Link.IsNone() && !in.Entry.IsNoBooking && in.Entry.HasBookingRef() {
		link, err := g.linkFor(ctx, in.Entry)
		if err != nil {
			return workflow.Decision{}, err
		}
		in.Link = link
	}
	in.Policy = g.policy

	d := workflow.Evaluate(in)
	if !d.Permitted || !d.StateValid || d.Tier != workflow.TierSubmit {
		return d, nil
	}
	if err := g.checkReferences(ctx, in.Entry, d.FieldErrors); err != nil {
		return workflow.Decision{}, err
	}
	return d, nil
}

func (g *gatekeeper) checkReferences(ctx context.Context, e domain.Entry, fieldErrs map[string]string) error {
	if g.refs == nil {
		return nil
	}
	type lookup struct {
		field string
		id    string
		msg   string
		find  func() (*domain.ReferenceItem, error)
	}
	checks := []lookup{
		{domain.FieldCompanyID, e.CompanyID, msgUnknownCompany, func() (*domain.ReferenceItem, error) {
			return g.refs.FindCompany(ctx, e.CompanyID)
		}},
		{domain.FieldAccountID, e.AccountID, msgUnknownAccount, func() (*domain.ReferenceItem, error) {
			return g.refs.FindAccount(ctx, e.CompanyID, e.AccountID)
		}},
		{domain.FieldCategoryID, e.CategoryID, msgUnknownCategory, func() (*domain.ReferenceItem, error) {
			return g.refs.FindCategory(ctx, e.CompanyID, e.CategoryID)
		}},
	}
	for _, c := range checks {
		if strings.TrimSpace(c.id) == "" {
			continue
		}
		if _, exists := fieldErrs[c.field]; exists {
			continue
		}
		if _, err := c.find(); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				fieldErrs[c.field] = c.msg
				continue
			}
			return fmt.Errorf("reference lookup for %s: %w", c.field, err)
		}
	}
	return nil
}
