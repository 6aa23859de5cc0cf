package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"safarsaathi/config"
	"safarsaathi/models"
)

// Embedded notification template. Kept inline so deployments don't need a
// template directory next to the binary.
var leadNotificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2c3e50; border-bottom: 1px solid #eee; padding-bottom: 10px; }
        .content { margin: 20px 0; }
        table { border-collapse: collapse; width: 100%; }
        td { padding: 8px; border-bottom: 1px solid #eee; }
        td.label { color: #7f8c8d; width: 40%; }
        .footer { margin-top: 30px; font-size: 12px; color: #7f8c8d; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h2>New signup from the landing page</h2>
    </div>

    <div class="content">
        <table>
            <tr><td class="label">Parent</td><td>{{.Lead.ParentName}}</td></tr>
            <tr><td class="label">Child grade</td><td>{{.Lead.ChildGrade}}</td></tr>
            {{if .Lead.SchoolName}}<tr><td class="label">School</td><td>{{.Lead.SchoolName}}</td></tr>{{end}}
            <tr><td class="label">City</td><td>{{.Lead.City}}</td></tr>
            <tr><td class="label">Mobile</td><td>{{.Lead.MobileNumber}}</td></tr>
            {{if .Lead.Email}}<tr><td class="label">Email</td><td>{{.Lead.Email}}</td></tr>{{end}}
            <tr><td class="label">Submitted</td><td>{{.Lead.CreatedAt.Format "02 Jan 2006 15:04 MST"}}</td></tr>
        </table>
    </div>

    <div class="footer">
        <p>© {{.Year}} SafarSaathi. Sent to the sales inbox for every new lead.</p>
    </div>
</body>
</html>`

// LeadMailer emails the sales inbox when a lead is captured. When SMTP or
// the sales address is not configured the mailer is disabled and Send is a
// no-op, so local setups work without a mail server.
type LeadMailer struct {
	dialer    *gomail.Dialer
	fromEmail string
	toEmail   string
	tmpl      *template.Template
}

func NewLeadMailer(cfg config.SMTPConfig, fromEmail, toEmail string) *LeadMailer {
	m := &LeadMailer{
		fromEmail: fromEmail,
		toEmail:   toEmail,
		tmpl:      template.Must(template.New("lead_notification").Parse(leadNotificationTemplate)),
	}
	if cfg.Host != "" && toEmail != "" {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return m
}

// Enabled reports whether notifications are configured.
func (m *LeadMailer) Enabled() bool {
	return m.dialer != nil
}

// SendLeadNotification renders and sends the notification email for one
// captured lead.
func (m *LeadMailer) SendLeadNotification(lead models.Lead) error {
	if !m.Enabled() {
		return nil
	}

	subject := fmt.Sprintf("New lead: %s (%s)", lead.ParentName, lead.City)

	var body bytes.Buffer
	err := m.tmpl.Execute(&body, struct {
		Subject string
		Lead    models.Lead
		Year    int
	}{
		Subject: subject,
		Lead:    lead,
		Year:    time.Now().Year(),
	})
	if err != nil {
		return fmt.Errorf("render lead notification: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.fromEmail)
	msg.SetHeader("To", m.toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send lead notification: %w", err)
	}
	return nil
}
