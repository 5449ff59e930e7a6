package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/entry_workbench/internal/apperrors"
	"github.com/SscSPs/entry_workbench/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verifiedBooking(companyID, bookingNo string) domain.BookingLink {
	return domain.VerifiedLink(domain.BookingRecord{
		BookingID:   "bk-" + bookingNo,
		BookingNo:   bookingNo,
		CompanyID:   companyID,
		BookingDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:      domain.BookingStatusDelivered,
	})
}

// completeEntry returns a draft expense that passes the submit tier once a booking is settled.
func completeEntry() domain.Entry {
	return domain.Entry{
		EntryID:    "entry-1",
		Kind:       domain.KindExpense,
		Amount:     decimal.NewFromInt(2500),
		CompanyID:  "cce",
		AccountID:  "acc-1",
		CategoryID: "cat-fuel",
		Payee:      "Shell Station",
		Status:     domain.EntryDraft,
	}
}

func TestEvaluate_SaveDraftRequiresPositiveAmount(t *testing.T) {
	for _, amount := range []string{"0", "-10"} {
		e := completeEntry()
		e.Amount = decimal.RequireFromString(amount)

		d := Evaluate(GateInput{Entry: e, Target: domain.EntryDraft, Role: domain.RolePreparer})

		assert.Equal(t, OpSaveDraft, d.Operation)
		assert.Equal(t, TierDraft, d.Tier)
		assert.False(t, d.OK())
		assert.Equal(t, MsgAmountPositive, d.FieldErrors[domain.FieldAmount])
		assert.True(t, errors.Is(d.Err(), apperrors.ErrValidation))
	}
}

func TestEvaluate_DraftTierIgnoresMissingFields(t *testing.T) {
	e := domain.Entry{Kind: domain.KindExpense, Amount: decimal.NewFromInt(1), Status: domain.EntryDraft}

	d := Evaluate(GateInput{Entry: e, Target: domain.EntryDraft, Role: domain.RolePreparer})

	assert.True(t, d.OK())
	assert.NoError(t, d.Err())
}

func TestEvaluate_DraftTierRejectsBothBookingAndNoBooking(t *testing.T) {
	e := completeEntry()
	e.BookingRef = "BK-1"
	e.IsNoBooking = true

	d := Evaluate(GateInput{Entry: e, Target: domain.EntryDraft, Role: domain.RolePreparer})

	assert.Equal(t, MsgBookingExclusive, d.FieldErrors[domain.FieldBookingRef])
}

func TestEvaluate_SubmitWithUnverifiedBookingFails(t *testing.T) {
	e := completeEntry()
	e.BookingRef = "XYZ"

	d := Evaluate(GateInput{
		Entry:  e,
		Target: domain.EntryPending,
		Role:   domain.RolePreparer,
		Link:   domain.UnverifiedLink("XYZ"),
	})

	assert.True(t, d.Permitted)
	assert.True(t, d.StateValid)
	assert.Equal(t, map[string]string{domain.FieldBookingRef: MsgBookingUnverified}, d.FieldErrors)

	fields, ok := apperrors.FieldErrors(d.Err())
	require.True(t, ok)
	assert.Equal(t, MsgBookingUnverified, fields[domain.FieldBookingRef])
}

func TestEvaluate_SubmitWithoutBookingOrFlagFailsThenSucceedsWithFlag(t *testing.T) {
	e := completeEntry()

	d := Evaluate(GateInput{Entry: e, Target: domain.EntryPending, Role: domain.RolePreparer})
	assert.Equal(t, MsgBookingUnverified, d.FieldErrors[domain.FieldBookingRef])

	e.IsNoBooking = true
	d = Evaluate(GateInput{Entry: e, Target: domain.EntryPending, Role: domain.RolePreparer})
	assert.True(t, d.OK())
	assert.Equal(t, OpSubmit, d.Operation)
}

func TestEvaluate_SubmitWithVerifiedBooking(t *testing.T) {
	e := completeEntry()
	e.BookingRef = "bk-100"

	d := Evaluate(GateInput{
		Entry:  e,
		Target: domain.EntryPending,
		Role:   domain.RolePreparer,
		Link:   verifiedBooking("cce", "BK-100"),
	})

	assert.True(t, d.OK(), "case-insensitive reference match should pass: %v", d.FieldErrors)
}

func TestEvaluate_SubmitTierRequiredFields(t *testing.T) {
	e := domain.Entry{Kind: domain.KindExpense, Amount: decimal.NewFromInt(5), Status: domain.EntryDraft, IsNoBooking: true}

	d := Evaluate(GateInput{Entry: e, Target: domain.EntryPending, Role: domain.RolePreparer})

	assert.Equal(t, map[string]string{
		domain.FieldCompanyID:  MsgRequired,
		domain.FieldAccountID:  MsgRequired,
		domain.FieldCategoryID: MsgRequired,
		domain.FieldPayee:      MsgRequired,
	}, d.FieldErrors)
}

func TestEvaluate_TransferNeedsNoCategory(t *testing.T) {
	e := completeEntry()
	e.Kind = domain.KindTransfer
	e.CategoryID = ""
	e.IsNoBooking = true

	d := Evaluate(GateInput{Entry: e, Target: domain.EntryPending, Role: domain.RolePreparer})

	assert.True(t, d.OK())
}

func TestEvaluate_BookingCompanyConflict(t *testing.T) {
	e := completeEntry()
	e.BookingRef = "BK-7"
	e.CompanyID = "other-co"

	link := verifiedBooking("cce", "BK-7")
	d := Evaluate(GateInput{Entry: e, Target: domain.EntryPending, Role: domain.RolePreparer, Link: link})

	assert.Equal(t, MsgBookingConflict, d.FieldErrors[domain.FieldBookingRef])
	assert.True(t, HasBookingConflict(e, link))

	// the conflict does not block saving a draft
	d = Evaluate(GateInput{Entry: e, Target: domain.EntryDraft, Role: domain.RolePreparer, Link: link})
	assert.True(t, d.OK())
}

func TestEvaluate_PermissionCheckedBeforeValidation(t *testing.T) {
	e := completeEntry()
	e.Status = domain.EntryPending
	e.Amount = decimal.Zero
	e.Payee = ""

	for _, target := range []domain.EntryStatus{domain.EntryApproved, domain.EntryRejected} {
		d := Evaluate(GateInput{Entry: e, Target: target, Role: domain.RolePreparer})

		assert.False(t, d.Permitted)
		assert.NotEmpty(t, d.PermissionReason)
		assert.Empty(t, d.FieldErrors, "denied decisions must not leak field errors")
		assert.True(t, errors.Is(d.Err(), apperrors.ErrForbidden))
	}
}

func TestEvaluate_ApproveFromWrongStatusIsInvalidState(t *testing.T) {
	e := completeEntry()
	e.IsNoBooking = true

	d := Evaluate(GateInput{Entry: e, Target: domain.EntryApproved, Role: domain.RoleApprover})

	assert.True(t, d.Permitted)
	assert.False(t, d.StateValid)
	assert.True(t, errors.Is(d.Err(), apperrors.ErrInvalidState))
}

func TestEvaluate_PostFromPendingIsInvalidState(t *testing.T) {
	e := completeEntry()
	e.IsNoBooking = true
	e.Status = domain.EntryPending

	for _, role := range []domain.Role{domain.RolePreparer, domain.RoleApprover} {
		d := Evaluate(GateInput{Entry: e, Target: domain.EntryPosted, Role: role, Policy: PostingAnyRole})
		assert.True(t, errors.Is(d.Err(), apperrors.ErrInvalidState), "role %s", role)
	}
}

func TestEvaluate_PostingPolicy(t *testing.T) {
	e := completeEntry()
	e.IsNoBooking = true
	e.Status = domain.EntryApproved

	d := Evaluate(GateInput{Entry: e, Target: domain.EntryPosted, Role: domain.RolePreparer, Policy: PostingAnyRole})
	assert.True(t, d.OK())

	d = Evaluate(GateInput{Entry: e, Target: domain.EntryPosted, Role: domain.RolePreparer, Policy: PostingApproverOnly})
	assert.False(t, d.Permitted)

	d = Evaluate(GateInput{Entry: e, Target: domain.EntryPosted, Role: domain.RoleApprover, Policy: PostingApproverOnly})
	assert.True(t, d.OK())
}

func TestEvaluate_RejectRequiresReason(t *testing.T) {
	e := completeEntry()
	e.Status = domain.EntryPending

	d := Evaluate(GateInput{Entry: e, Target: domain.EntryRejected, Role: domain.RoleApprover, RejectionReason: "  "})
	assert.Equal(t, MsgReasonRequired, d.FieldErrors[domain.FieldRejection])

	d = Evaluate(GateInput{Entry: e, Target: domain.EntryRejected, Role: domain.RoleApprover, RejectionReason: "duplicate"})
	assert.True(t, d.OK())
	assert.Equal(t, TierNone, d.Tier)
}

func TestEvaluate_UnpostIsAdminOnly(t *testing.T) {
	e := completeEntry()
	e.Status = domain.EntryPosted

	d := Evaluate(GateInput{Entry: e, Target: domain.EntryDraft, Role: domain.RoleApprover})
	assert.Equal(t, OpUnpost, d.Operation)
	assert.False(t, d.Permitted)

	d = Evaluate(GateInput{Entry: e, Target: domain.EntryDraft, Role: domain.RoleAdmin})
	assert.True(t, d.OK())
}

func TestEvaluate_UnknownTarget(t *testing.T) {
	d := Evaluate(GateInput{Entry: completeEntry(), Target: "ARCHIVED", Role: domain.RolePreparer})

	assert.False(t, d.OK())
	assert.True(t, errors.Is(d.Err(), apperrors.ErrInvalidState))
}

func TestEvaluate_ChangedLockedFieldsAreReported(t *testing.T) {
	e := completeEntry()
	rfp := &domain.RFP{Status: domain.RFPDraft}

	d := Evaluate(GateInput{
		Entry:   e,
		Target:  domain.EntryDraft,
		Role:    domain.RolePreparer,
		RFP:     rfp,
		Changed: []string{domain.FieldKind, domain.FieldNote},
	})

	assert.Equal(t, map[string]string{domain.FieldKind: MsgFieldLocked}, d.FieldErrors)
}

func TestLockedFields(t *testing.T) {
	e := completeEntry()

	assert.Empty(t, LockedFields(e, nil, domain.RolePreparer))
	assert.Equal(t, allEditableFields, LockedFields(e, nil, domain.RoleApprover))

	e.Status = domain.EntryPosted
	locked := LockedFields(e, nil, domain.RolePreparer)
	assert.Contains(t, locked, domain.FieldPayee)
	assert.Contains(t, locked, domain.FieldPaymentMethod)
	assert.Contains(t, locked, domain.FieldNote)

	e.Status = domain.EntryDraft
	submitted := &domain.RFP{Status: domain.RFPSubmitted}
	assert.Equal(t, []string{
		domain.FieldAmount,
		domain.FieldBookingRef,
		domain.FieldCategoryID,
		domain.FieldCompanyID,
		domain.FieldIsNoBooking,
		domain.FieldKind,
		domain.FieldPayee,
		domain.FieldPaymentMethod,
	}, LockedFields(e, submitted, domain.RolePreparer))

	cancelled := &domain.RFP{Status: domain.RFPCancelled}
	assert.Empty(t, LockedFields(e, cancelled, domain.RolePreparer))
}

func TestEvaluate_AllowedTargets(t *testing.T) {
	e := completeEntry()
	e.Status = domain.EntryPending

	d := Evaluate(GateInput{Entry: e, Target: domain.EntryApproved, Role: domain.RoleApprover})
	assert.Equal(t, []domain.EntryStatus{domain.EntryApproved, domain.EntryRejected}, d.AllowedTargets)

	d = Evaluate(GateInput{Entry: e, Target: domain.EntryApproved, Role: domain.RolePreparer})
	assert.Empty(t, d.AllowedTargets)
}
