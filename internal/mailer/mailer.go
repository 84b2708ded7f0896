package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"              // SendGrid client
	"github.com/sendgrid/sendgrid-go/helpers/mail" // Message construction helpers
)

// Mailer sends transactional email through SendGrid. Callers treat delivery
// as fire-and-forget; no confirmation is tracked anywhere in the data model.
type Mailer struct {
	client   *sendgrid.Client // SendGrid send client
	fromName string           // Sender display name
	fromAddr string           // Sender address
	sandbox  bool             // Sandbox mode suppresses real delivery
}

// New creates a Mailer from an API key and sender identity
func New(apiKey, fromName, fromAddr string, sandbox bool) *Mailer {
	return &Mailer{
		client:   sendgrid.NewSendClient(apiKey),
		fromName: fromName,
		fromAddr: fromAddr,
		sandbox:  sandbox,
	}
}

// Send delivers a single plain-text message, mirrored as a minimal HTML body
func (m *Mailer) Send(to, subject, message string) error {
	from := mail.NewEmail(m.fromName, m.fromAddr)                  // Sender identity
	rcpt := mail.NewEmail("", to)                                  // Recipient address only
	html := fmt.Sprintf("<p>%s</p>", message)                      // HTML mirror of the message
	msg := mail.NewSingleEmail(from, subject, rcpt, message, html) // Build the message
	if m.sandbox {
		// Sandbox mode validates the request without delivering
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		msg.MailSettings = ms
	}
	resp, err := m.client.Send(msg) // Hand the message to SendGrid
	if err != nil {
		return err // Transport-level failure
	}
	// SendGrid reports acceptance via the HTTP status code
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message: status %d", resp.StatusCode)
	}
	return nil
}
