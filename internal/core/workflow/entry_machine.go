// Package workflow holds the pure Entry and RFP state machines and the gate that
// decides whether a transition may be committed. Nothing here performs I/O.
package workflow

import (
	"fmt"
	"time"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
)

// Operation names an Entry transition.
type Operation string

const (
	OpSaveDraft Operation = "saveDraft"
	OpSubmit    Operation = "submitForApproval"
	OpApprove   Operation = "approve"
	OpReject    Operation = "reject"
	OpResubmit  Operation = "resubmit"
	OpPost      Operation = "post"
	OpUnpost    Operation = "unpost"
)

// PostingPolicy decides which roles may post an approved entry.
type PostingPolicy string

const (
	PostingAnyRole      PostingPolicy = "any"
	PostingApproverOnly PostingPolicy = "approver"
)

// ParsePostingPolicy validates a raw policy string; empty defaults to PostingAnyRole.
func ParsePostingPolicy(s string) (PostingPolicy, error) {
	switch PostingPolicy(s) {
	case "", PostingAnyRole:
		return PostingAnyRole, nil
	case PostingApproverOnly:
		return PostingApproverOnly, nil
	default:
		return "", fmt.Errorf("unknown posting policy: %q", s)
	}
}

type edge struct {
	from domain.EntryStatus
	to   domain.EntryStatus
}

var entryEdges = map[Operation]edge{
	OpSaveDraft: {domain.EntryDraft, domain.EntryDraft},
	OpSubmit:    {domain.EntryDraft, domain.EntryPending},
	OpApprove:   {domain.EntryPending, domain.EntryApproved},
	OpReject:    {domain.EntryPending, domain.EntryRejected},
	OpResubmit:  {domain.EntryRejected, domain.EntryDraft},
	OpPost:      {domain.EntryApproved, domain.EntryPosted},
	OpUnpost:    {domain.EntryPosted, domain.EntryDraft},
}

// operationOrder fixes the iteration order used by AllowedTargets.
var operationOrder = []Operation{OpSaveDraft, OpSubmit, OpApprove, OpReject, OpResubmit, OpPost, OpUnpost}

// OperationFor maps a requested target status to the operation it requests.
// DRAFT is ambiguous and is disambiguated by the current status.
func OperationFor(current, target domain.EntryStatus) (Operation, error) {
	switch target {
	case domain.EntryPending:
		return OpSubmit, nil
	case domain.EntryApproved:
		return OpApprove, nil
	case domain.EntryRejected:
		return OpReject, nil
	case domain.EntryPosted:
		return OpPost, nil
	case domain.EntryDraft:
		switch current {
		case domain.EntryRejected:
			return OpResubmit, nil
		case domain.EntryPosted:
			return OpUnpost, nil
		default:
			return OpSaveDraft, nil
		}
	default:
		return "", fmt.Errorf("unknown target status %q", target)
	}
}

// ValidFrom reports whether op is defined from status.
func ValidFrom(op Operation, status domain.EntryStatus) bool {
	e, ok := entryEdges[op]
	return ok && e.from == status
}

// TargetOf returns the status op leads to.
func TargetOf(op Operation) domain.EntryStatus {
	return entryEdges[op].to
}

// Permitted reports whether role may perform op under policy, with a reason when not.
func Permitted(op Operation, role domain.Role, policy PostingPolicy) (bool, string) {
	switch op {
	case OpSaveDraft, OpSubmit, OpResubmit:
		if role == domain.RolePreparer {
			return true, ""
		}
		return false, fmt.Sprintf("%s requires the preparer role", op)
	case OpApprove, OpReject:
		if role == domain.RoleApprover {
			return true, ""
		}
		return false, fmt.Sprintf("%s requires the approver role", op)
	case OpPost:
		if role == domain.RoleApprover {
			return true, ""
		}
		if role == domain.RolePreparer && policy != PostingApproverOnly {
			return true, ""
		}
		return false, "post is not permitted for this role"
	case OpUnpost:
		if role == domain.RoleAdmin {
			return true, ""
		}
		return false, "unpost is an administrative operation"
	default:
		return false, fmt.Sprintf("unknown operation %q", op)
	}
}

// AllowedTargets lists the statuses role may request from the entry's current status.
func AllowedTargets(status domain.EntryStatus, role domain.Role, policy PostingPolicy) []domain.EntryStatus {
	targets := []domain.EntryStatus{}
	for _, op := range operationOrder {
		if !ValidFrom(op, status) {
			continue
		}
		if ok, _ := Permitted(op, role, policy); ok {
			targets = append(targets, TargetOf(op))
		}
	}
	return targets
}

// Apply performs op on e and stamps the audit fields. The caller must have obtained
// a passing Decision first; Apply does not re-validate. The version is left for the
// repository to bump.
func Apply(e domain.Entry, op Operation, actor domain.Actor, reason string, now time.Time) domain.Entry {
	at := now
	switch op {
	case OpSaveDraft:
		e.Status = domain.EntryDraft
	case OpSubmit:
		e.Status = domain.EntryPending
		e.RequestedBy = actor.UserID
		e.RequestedOn = &at
	case OpApprove:
		e.Status = domain.EntryApproved
		e.ApprovedBy = actor.UserID
		e.ApprovedOn = &at
	case OpReject:
		e.Status = domain.EntryRejected
		e.RejectedBy = actor.UserID
		e.RejectedOn = &at
		e.RejectionReason = reason
	case OpResubmit:
		e.Status = domain.EntryDraft
		e.RejectedBy = ""
		e.RejectedOn = nil
		e.RejectionReason = ""
	case OpPost:
		e.Status = domain.EntryPosted
		e.PostedBy = actor.UserID
		e.PostedOn = &at
	case OpUnpost:
		e.Status = domain.EntryDraft
		e.RequestedBy, e.RequestedOn = "", nil
		e.ApprovedBy, e.ApprovedOn = "", nil
		e.PostedBy, e.PostedOn = "", nil
	}
	e.Touch(actor.UserID, now)
	return e
}

// ResetToDraft returns an entry to DRAFT and clears request and rejection stamps.
// Used when a cancelled RFP had advanced the entry.
func ResetToDraft(e domain.Entry, actor domain.Actor, now time.Time) domain.Entry {
	e.Status = domain.EntryDraft
	e.RequestedBy, e.RequestedOn = "", nil
	e.RejectedBy, e.RejectedOn, e.RejectionReason = "", nil, ""
	e.Touch(actor.UserID, now)
	return e
}
