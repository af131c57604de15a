package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"

	"leadvault_backend/platform/config"
)

const subjectFollowupReminder = "Follow-up due: %s"

var reminderTemplate = template.Must(template.New("followup_reminder").Parse(`
<html>
  <body style="font-family: sans-serif; color: #111827;">
    <h2>Time to follow up</h2>
    <p>Your lead <strong>{{.LeadName}}</strong> is due for contact.</p>
    <p>Scheduled follow-up: <strong>{{.DueAt}}</strong></p>
    {{if .LeadEmail}}<p>Reach them at <a href="mailto:{{.LeadEmail}}">{{.LeadEmail}}</a>.</p>{{end}}
  </body>
</html>`))

type reminderData struct {
	LeadName  string
	LeadEmail string
	DueAt     string
}

// SMTPSender implements Sender over a direct SMTP connection via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{
		host:      cfg.GetSMTPHost(),
		port:      cfg.GetSMTPPort(),
		username:  cfg.GetSMTPUsername(),
		password:  cfg.GetSMTPPassword(),
		fromName:  cfg.GetEmailFromName(),
		fromEmail: cfg.GetEmailFromAddress(),
	}
}

func (s *SMTPSender) SendFollowupReminder(ctx context.Context, toEmail, leadName, leadEmail string, dueAt time.Time) error {
	var body bytes.Buffer
	err := reminderTemplate.Execute(&body, reminderData{
		LeadName:  leadName,
		LeadEmail: leadEmail,
		DueAt:     dueAt.Format("Mon, 2 Jan 2006 15:04 MST"),
	})
	if err != nil {
		return err
	}

	return s.send(ctx, toEmail, fmt.Sprintf(subjectFollowupReminder, leadName), body.String())
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

var _ Sender = (*SMTPSender)(nil)
