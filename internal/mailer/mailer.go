package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"survivalskills/internal/guide"
	"survivalskills/internal/models"
	"survivalskills/internal/observability"
)

// Mailer composes and sends the application's emails.
type Mailer struct {
	sender   Sender
	operator string
	siteURL  string
}

// NewMailer creates a mailer that sends through the given Sender. Operator
// notifications go to operatorEmail.
func NewMailer(sender Sender, operatorEmail, siteURL string) *Mailer {
	return &Mailer{
		sender:   sender,
		operator: operatorEmail,
		siteURL:  siteURL,
	}
}

func (m *Mailer) send(ctx context.Context, template string, msg Message) bool {
	ok := m.sender.Send(ctx, msg)
	outcome := "sent"
	if !ok {
		outcome = "failed"
	}
	observability.EmailDeliveries.WithLabelValues(template, outcome).Inc()
	return ok
}

// SendGuide emails the subscriber their regional guide as an attachment.
func (m *Mailer) SendGuide(ctx context.Context, sub *models.Subscriber, doc string) bool {
	regionName := sub.Region.DisplayName()

	html := fmt.Sprintf(`
      <h2>Thank you for downloading your Budget Survival Skills Guide!</h2>
      <p>Hi %s,</p>

      <p>Thank you for subscribing to Budget Survival Skills! Your personalized <strong>%s Budget Survival Skills Guide</strong> is attached to this email.</p>

      <p>This comprehensive guide includes:</p>
      <ul>
        <li>Emergency fund strategies specific to %s</li>
        <li>Debt payoff methods that work in your region</li>
        <li>Government benefits and programs available to you</li>
        <li>Local investment and savings opportunities</li>
        <li>Side hustle ideas for your market</li>
      </ul>

      <p>Visit our website at <a href="%s">Budget Survival Skills</a> for more financial tips and guides.</p>

      <p>Best regards,<br>
      The Budget Survival Skills Team</p>
    `, sub.Name, regionName, regionName, m.siteURL)

	text := fmt.Sprintf(`
      Thank you for downloading your Budget Survival Skills Guide!

      Hi %s,

      Thank you for subscribing to Budget Survival Skills! Your personalized %s Budget Survival Skills Guide is attached to this email.

      This comprehensive guide includes:
      - Emergency fund strategies specific to %s
      - Debt payoff methods that work in your region
      - Government benefits and programs available to you
      - Local investment and savings opportunities
      - Side hustle ideas for your market

      Visit our website for more financial tips and guides.

      Best regards,
      The Budget Survival Skills Team
    `, sub.Name, regionName, regionName)

	return m.send(ctx, "guide", Message{
		To:      sub.Email,
		Subject: fmt.Sprintf("Your %s Budget Survival Skills Guide", regionName),
		Text:    text,
		HTML:    html,
		Attachments: []Attachment{{
			Content:     guide.EncodeAttachment(doc),
			Filename:    fmt.Sprintf("%s-Budget-Survival-Skills-Guide.pdf", sub.Region.Upper()),
			Type:        "application/pdf",
			Disposition: "attachment",
		}},
	})
}

// NotifyOperator tells the site operator about a new subscriber.
func (m *Mailer) NotifyOperator(ctx context.Context, sub *models.Subscriber) bool {
	region := sub.Region.Upper()
	date := time.Now().Format("1/2/2006")

	html := fmt.Sprintf(`
      <h2>New Budget Survival Skills Subscriber</h2>
      <p><strong>Email:</strong> %s</p>
      <p><strong>Name:</strong> %s</p>
      <p><strong>Region:</strong> %s</p>
      <p><strong>Downloaded:</strong> %s Budget Survival Skills Guide</p>
      <p><strong>Date:</strong> %s</p>
    `, sub.Email, sub.Name, region, region, date)

	text := fmt.Sprintf(`
      New Budget Survival Skills Subscriber

      Email: %s
      Name: %s
      Region: %s
      Downloaded: %s Budget Survival Skills Guide
      Date: %s
    `, sub.Email, sub.Name, region, region, date)

	return m.send(ctx, "operator_notice", Message{
		To:      m.operator,
		Subject: fmt.Sprintf("New PDF Download Subscriber - %s", region),
		Text:    text,
		HTML:    html,
	})
}

// RelayContact forwards a contact form submission to the operator.
func (m *Mailer) RelayContact(ctx context.Context, name, email, subject, message string) bool {
	html := fmt.Sprintf(`
      <h2>New Contact Form Submission</h2>
      <p><strong>From:</strong> %s (%s)</p>
      <p><strong>Subject:</strong> %s</p>
      <hr>
      <h3>Message:</h3>
      <p>%s</p>
      <hr>
      <p><em>This message was sent from the Budget Survival Skills contact form.</em></p>
    `, name, email, subject, strings.ReplaceAll(message, "\n", "<br>"))

	text := fmt.Sprintf(`
New Contact Form Submission

From: %s (%s)
Subject: %s

Message:
%s

This message was sent from the Budget Survival Skills contact form.
    `, name, email, subject, message)

	return m.send(ctx, "contact", Message{
		To:      m.operator,
		Subject: fmt.Sprintf("Contact Form: %s", subject),
		Text:    text,
		HTML:    html,
	})
}
