package events

import (
	platformevents "leadvault_backend/platform/events"
	"leadvault_backend/platform/logger"
)

// InMemoryBus is the in-process bus implementation from platform/events.
type InMemoryBus = platformevents.InMemoryBus

// NewInMemoryBus creates the in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return platformevents.NewInMemoryBus(log)
}
