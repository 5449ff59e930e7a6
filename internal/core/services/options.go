package services

import (
	"time"

	"github.com/SscSPs/entry_workbench/internal/core/workflow"
	"github.com/google/uuid"
)

type serviceOptions struct {
	clock  func() time.Time
	policy workflow.PostingPolicy
	newID  func() string
}

// Option is a functional option shared by the service constructors.
type Option func(*serviceOptions)

// WithClock injects the time source used for audit stamps and date windows.
func WithClock(clock func() time.Time) Option {
	return func(o *serviceOptions) {
		o.clock = clock
	}
}

// WithPostingPolicy sets which roles may post an approved entry.
func WithPostingPolicy(policy workflow.PostingPolicy) Option {
	return func(o *serviceOptions) {
		o.policy = policy
	}
}

// WithIDGenerator replaces the UUID generator used for new entries and RFPs.
func WithIDGenerator(newID func() string) Option {
	return func(o *serviceOptions) {
		o.newID = newID
	}
}

func buildOptions(options []Option) serviceOptions {
	o := serviceOptions{
		policy: workflow.PostingAnyRole,
		newID:  func() string { return uuid.NewString() },
	}
	for _, option := range options {
		option(&o)
	}
	return o
}
