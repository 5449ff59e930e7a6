package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEntryMapping_NullableStamps(t *testing.T) {
	at := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	e := domain.Entry{
		EntryID:     "e-1",
		Kind:        domain.KindExpense,
		Amount:      decimal.NewFromInt(10),
		Status:      domain.EntryPending,
		RequestedBy: "u-1",
		RequestedOn: &at,
		AuditFields: domain.AuditFields{Version: 4},
	}

	m := ToModelEntry(e)
	assert.Nil(t, m.ApprovedBy, "unset stamps are stored as NULL")
	assert.Nil(t, m.RejectionReason)
	if assert.NotNil(t, m.RequestedBy) {
		assert.Equal(t, "u-1", *m.RequestedBy)
	}
	assert.Equal(t, "PENDING", m.Status)

	assert.Equal(t, e, ToDomainEntry(m))
}

func TestRFPMapping_AttachmentsNeverNil(t *testing.T) {
	m := ToModelRFP(domain.RFP{RFPID: "r-1", Status: domain.RFPDraft})
	assert.NotNil(t, m.AttachmentIDs)

	m.AttachmentIDs = nil
	d := ToDomainRFP(m)
	assert.NotNil(t, d.AttachmentIDs)
	assert.Empty(t, d.AttachmentIDs)
	assert.Equal(t, "", d.SubmittedBy)
}
