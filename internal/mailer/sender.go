// Package mailer delivers transactional email through SendGrid. Delivery
// reports success or failure as a bool; it never returns an error, so a
// broken mail provider cannot fail the caller's request.
package mailer

import (
	"context"

	"survivalskills/internal/middleware"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Attachment is a base64-encoded file attached to a Message.
type Attachment struct {
	Content     string
	Filename    string
	Type        string
	Disposition string
}

// Message is a single outbound email.
type Message struct {
	To          string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// Sender delivers a message and reports whether it was accepted.
type Sender interface {
	Send(ctx context.Context, msg Message) bool
}

type sendgridSender struct {
	client *sendgrid.Client
	from   string
}

// NewSendGridSender returns a Sender backed by the SendGrid v3 API.
func NewSendGridSender(apiKey, from string) Sender {
	return &sendgridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
	}
}

func (s *sendgridSender) Send(ctx context.Context, msg Message) bool {
	m := sgmail.NewV3Mail()
	m.SetFrom(sgmail.NewEmail("", s.from))
	m.Subject = msg.Subject

	p := sgmail.NewPersonalization()
	p.AddTos(sgmail.NewEmail("", msg.To))
	m.AddPersonalizations(p)

	// SendGrid requires text/plain before text/html
	if msg.Text != "" {
		m.AddContent(sgmail.NewContent("text/plain", msg.Text))
	}
	if msg.HTML != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTML))
	}

	for _, att := range msg.Attachments {
		a := sgmail.NewAttachment()
		a.SetContent(att.Content)
		a.SetFilename(att.Filename)
		a.SetType(att.Type)
		a.SetDisposition(att.Disposition)
		m.AddAttachment(a)
	}

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "sendgrid send failed", "to", msg.To, "error", err)
		return false
	}
	if resp.StatusCode >= 400 {
		middleware.Logger.ErrorContext(ctx, "sendgrid rejected message",
			"to", msg.To,
			"status", resp.StatusCode,
			"body", resp.Body,
		)
		return false
	}
	return true
}
