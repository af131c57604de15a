// Package followup computes when a lead is next due for contact.
// The cadence intervals are policy parameters injected from configuration,
// never hard-coded at call sites.
package followup

import (
	"time"

	"leadvault_backend/platform/config"
)

// Policy derives follow-up dates from the configured cadence intervals.
// It is pure and deterministic given its clock.
type Policy struct {
	initial   time.Duration
	extension time.Duration
	now       func() time.Time
}

// NewPolicy creates a Policy from application configuration.
func NewPolicy(cfg config.FollowupConfig) *Policy {
	return NewPolicyWithClock(cfg.GetFollowupInitialInterval(), cfg.GetFollowupExtensionInterval(), time.Now)
}

// NewPolicyWithClock creates a Policy with an explicit clock, for tests.
func NewPolicyWithClock(initial, extension time.Duration, now func() time.Time) *Policy {
	return &Policy{initial: initial, extension: extension, now: now}
}

// InitialDate returns the first scheduled contact date for a newly created lead.
func (p *Policy) InitialDate() time.Time {
	return p.now().Add(p.initial).UTC()
}

// ExtendedDate pushes out an existing follow-up date by the extension
// interval. Used when a lead is updated without an explicit new follow-up
// date and its status still requires one.
func (p *Policy) ExtendedDate(previous time.Time) time.Time {
	return previous.Add(p.extension).UTC()
}
