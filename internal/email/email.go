// Package email delivers transactional mail for the dashboard.
package email

import (
	"context"
	"time"
)

// Sender delivers follow-up reminder mail to a lead's owner.
type Sender interface {
	SendFollowupReminder(ctx context.Context, toEmail, leadName, leadEmail string, dueAt time.Time) error
}

// NoopSender drops all mail. Used when SMTP is not configured.
type NoopSender struct{}

func (NoopSender) SendFollowupReminder(context.Context, string, string, string, time.Time) error {
	return nil
}

var _ Sender = NoopSender{}
