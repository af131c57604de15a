// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"time"

	"leadvault_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadCreated is published when a new lead enters the pipeline.
type LeadCreated struct {
	BaseEvent
	LeadID       uuid.UUID `json:"leadId"`
	TenantID     uuid.UUID `json:"tenantId"`
	Name         string    `json:"name"`
	Source       string    `json:"source"`
	NextFollowup time.Time `json:"nextFollowup"`
}

func (e LeadCreated) EventName() string { return "leads.created" }

// LeadUpdated is published after a lead mutation, carrying the rescheduled
// follow-up time when one was computed.
type LeadUpdated struct {
	BaseEvent
	LeadID       uuid.UUID  `json:"leadId"`
	TenantID     uuid.UUID  `json:"tenantId"`
	Status       string     `json:"status"`
	NextFollowup *time.Time `json:"nextFollowup,omitempty"`
}

func (e LeadUpdated) EventName() string { return "leads.updated" }

// LeadSoftDeleted is published when a lead is moved to the trash.
type LeadSoftDeleted struct {
	BaseEvent
	LeadID   uuid.UUID `json:"leadId"`
	TenantID uuid.UUID `json:"tenantId"`
}

func (e LeadSoftDeleted) EventName() string { return "leads.soft_deleted" }

// LeadRestored is published when a soft-deleted lead is restored.
type LeadRestored struct {
	BaseEvent
	LeadID   uuid.UUID `json:"leadId"`
	TenantID uuid.UUID `json:"tenantId"`
}

func (e LeadRestored) EventName() string { return "leads.restored" }

// LeadPermanentlyDeleted is published when a lead record is physically removed.
type LeadPermanentlyDeleted struct {
	BaseEvent
	LeadID   uuid.UUID `json:"leadId"`
	TenantID uuid.UUID `json:"tenantId"`
}

func (e LeadPermanentlyDeleted) EventName() string { return "leads.permanently_deleted" }

// FollowupDue is published by the reminder worker when a lead's scheduled
// follow-up time has arrived and the lead is still active.
type FollowupDue struct {
	BaseEvent
	LeadID       uuid.UUID `json:"leadId"`
	TenantID     uuid.UUID `json:"tenantId"`
	LeadName     string    `json:"leadName"`
	LeadEmail    string    `json:"leadEmail"`
	NextFollowup time.Time `json:"nextFollowup"`
}

func (e FollowupDue) EventName() string { return "leads.followup.due" }
