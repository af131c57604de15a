// Package domain provides core business rules for the leads bounded context.
package domain

// Status is a lead's position in the sales pipeline.
type Status string

const (
	StatusNew         Status = "new"
	StatusContacted   Status = "contacted"
	StatusQualified   Status = "qualified"
	StatusProposal    Status = "proposal"
	StatusNegotiation Status = "negotiation"
	StatusClosed      Status = "closed"
	// StatusDeleted is only ever set together with a non-null deleted_at;
	// the repository writes both in a single statement.
	StatusDeleted Status = "deleted"
)

var knownStatuses = map[Status]struct{}{
	StatusNew:         {},
	StatusContacted:   {},
	StatusQualified:   {},
	StatusProposal:    {},
	StatusNegotiation: {},
	StatusClosed:      {},
	StatusDeleted:     {},
}

// IsKnownStatus reports whether the value is one of the defined pipeline statuses.
func IsKnownStatus(status Status) bool {
	_, ok := knownStatuses[status]
	return ok
}

// NeedsFollowup reports whether leads in this status keep a scheduled
// follow-up date. Closed leads are never due for contact.
func (s Status) NeedsFollowup() bool {
	return s != StatusClosed && s != StatusDeleted
}
