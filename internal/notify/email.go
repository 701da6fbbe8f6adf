package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	texttemplate "text/template"
	"time"

	"lawncare/internal/domain"
)

type EmailMessage struct {
	To      string
	Subject string
	Text    string
}

var bookingEmailTmpl = texttemplate.Must(texttemplate.New("booking").Parse(strings.TrimSpace(`
NEW LAWN CARE BOOKING

Customer Information:
- Name: {{.Name}}
- Email: {{.Email}}
- Phone: {{.Phone}}
- Address: {{.Address}}

Service Details:
- Service: {{.ServiceType}}
- Subscription: {{.SubscriptionType}}
- Property Size: {{.PropertySize}} acres
- Price: ${{.Price}}
- Status: {{if .Paid}}PAID{{else}}PENDING PAYMENT{{end}}
{{if .SpecialRequests}}
Special Requests: {{.SpecialRequests}}
{{end}}
Booking ID: #{{.ID}}
`)))

var contactEmailTmpl = texttemplate.Must(texttemplate.New("contact").Parse(strings.TrimSpace(`
NEW CONTACT MESSAGE

Contact Information:
- Name: {{.Name}}
- Email: {{.Email}}
- Phone: {{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}
- Service Interest: {{if .Service}}{{.Service}}{{else}}General Inquiry{{end}}
{{if .Address}}- Address: {{.Address}}
{{end}}
Message:
{{.Message}}

Contact ID: #{{.ID}}
`)))

func BuildBookingEmail(to string, b *domain.Booking) (EmailMessage, error) {
	var buf bytes.Buffer
	if err := bookingEmailTmpl.Execute(&buf, b); err != nil {
		return EmailMessage{}, fmt.Errorf("render booking email: %w", err)
	}
	return EmailMessage{
		To:      to,
		Subject: fmt.Sprintf("New Booking: %s - %s", b.Name, b.ServiceType),
		Text:    buf.String(),
	}, nil
}

func BuildContactEmail(to string, c *domain.Contact) (EmailMessage, error) {
	service := "General Inquiry"
	if c.Service != nil && *c.Service != "" {
		service = *c.Service
	}

	var buf bytes.Buffer
	if err := contactEmailTmpl.Execute(&buf, c); err != nil {
		return EmailMessage{}, fmt.Errorf("render contact email: %w", err)
	}
	return EmailMessage{
		To:      to,
		Subject: fmt.Sprintf("New Contact: %s - %s", c.Name, service),
		Text:    buf.String(),
	}, nil
}

// EmailChannel delivers notification emails through a form relay (e.g.
// FormSubmit), which forwards the submission to the business inbox.
type EmailChannel struct {
	relayURL string
	to       string
	client   *http.Client
}

var _ Channel = (*EmailChannel)(nil)

func NewEmailChannel(relayURL, to string, timeout time.Duration) *EmailChannel {
	return &EmailChannel{
		relayURL: relayURL,
		to:       to,
		client:   &http.Client{Timeout: timeout},
	}
}

func (e *EmailChannel) Name() string { return "email" }

func (e *EmailChannel) Send(ctx context.Context, ev Event) error {
	var (
		msg EmailMessage
		err error
	)
	switch ev.Type {
	case TypeBookingCreated:
		msg, err = BuildBookingEmail(e.to, ev.Booking)
	case TypeContactCreated:
		msg, err = BuildContactEmail(e.to, ev.Contact)
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("subject", msg.Subject)
	form.Set("message", msg.Text)
	form.Set("email", msg.To)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.relayURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("email relay: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return fmt.Errorf("email relay returned %d: %s", res.StatusCode, string(body))
	}
	return nil
}
