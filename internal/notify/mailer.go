// Package notify sends best-effort email notifications for new
// contact submissions.
package notify

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"

	"github.com/igcsenotes/site/internal/model"
)

// Config holds the outbound email settings. An empty APIKey or
// NotifyEmail disables sending entirely.
type Config struct {
	APIURL      string
	APIKey      string
	FromEmail   string
	NotifyEmail string
}

// Mailer posts notification emails to a transactional email HTTP API.
type Mailer struct {
	http *resty.Client
	cfg  Config
}

// New creates a mailer from explicit configuration.
func New(cfg Config) *Mailer {
	httpClient := resty.New().
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		httpClient.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	}
	return &Mailer{http: httpClient, cfg: cfg}
}

// Enabled reports whether the mailer is configured to send.
func (m *Mailer) Enabled() bool {
	return m.cfg.APIKey != "" && m.cfg.NotifyEmail != ""
}

// SendSubmission emails the submission to the notification address.
func (m *Mailer) SendSubmission(ctx context.Context, sub *model.Submission) error {
	if !m.Enabled() {
		log.Debug("Email notifications not configured, skipping")
		return nil
	}

	payload := map[string]any{
		"from":    m.cfg.FromEmail,
		"to":      m.cfg.NotifyEmail,
		"subject": fmt.Sprintf("New Tutoring Request from %s", sub.FullName),
		"html":    submissionHTML(sub),
	}

	resp, err := m.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(m.cfg.APIURL + "/emails")
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("notification HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}
	return nil
}

func submissionHTML(sub *model.Submission) string {
	var b strings.Builder
	b.WriteString("<h2>New Tutoring Request</h2>")
	row := func(label, value string) {
		fmt.Fprintf(&b, "<p><strong>%s:</strong> %s</p>", label, html.EscapeString(value))
	}
	row("Name", sub.FullName)
	row("Country", sub.Country)
	row("Phone", sub.Phone)
	row("Email", sub.Email)
	row("Hourly Budget", sub.HourlyBudget)
	b.WriteString("<p><strong>Details:</strong></p>")
	details := html.EscapeString(sub.TutoringDetails)
	b.WriteString("<p>" + strings.ReplaceAll(details, "\n", "<br>") + "</p>")
	row("Submitted", sub.SubmittedAt.Format(time.RFC1123))
	return b.String()
}
