package notify

import (
	"fmt"

	"report2clean/config"
	"report2clean/models"
	"report2clean/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// Mailer sends outbound transactional email. Implementations must be safe
// for concurrent use; the fan-out calls them from multiple goroutines.
type Mailer interface {
	// NearbyReportAlert notifies a nearby resident about a fresh report.
	NearbyReportAlert(recipient models.UserRef, submitterName string, report *models.Report) error
	// SubmissionConfirmation acknowledges a submitter's own report.
	SubmissionConfirmation(recipient models.UserRef, report *models.Report) error
	// WeeklyDigest sends the pending-report summary to one admin.
	WeeklyDigest(recipient models.UserRef, pendingCount int64) error
}

// SendgridMailer is the production Mailer backed by SendGrid.
type SendgridMailer struct{}

// NewSendgridMailer creates a new SendGrid-backed Mailer.
func NewSendgridMailer() Mailer {
	return &SendgridMailer{}
}

func (m *SendgridMailer) send(toName, toAddr, subject, plain, html string) error {
	from := mail.NewEmail(config.AppConfig.MailFromName, config.AppConfig.MailFromAddr)
	to := mail.NewEmail(toName, toAddr)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toAddr, err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected email to %s: status %d", toAddr, response.StatusCode)
	}

	utils.GetLogger().Debug("Email sent",
		zap.String("to", toAddr),
		zap.String("subject", subject),
		zap.Int("status", response.StatusCode))
	return nil
}

func (m *SendgridMailer) NearbyReportAlert(recipient models.UserRef, submitterName string, report *models.Report) error {
	subject := "A new issue was reported near you"
	plain := fmt.Sprintf(
		"Hi %s,\n\n%s reported an issue near your location:\n\n%s\n\nAddress: %s\n\nOpen the app to see the details.",
		recipient.Fullname, submitterName, report.Description, report.Address,
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p><strong>%s</strong> reported an issue near your location:</p><p>%s</p><p>Address: %s</p><p>Open the app to see the details.</p>",
		recipient.Fullname, submitterName, report.Description, report.Address,
	)
	return m.send(recipient.Fullname, recipient.Email, subject, plain, html)
}

func (m *SendgridMailer) SubmissionConfirmation(recipient models.UserRef, report *models.Report) error {
	subject := "We received your report"
	plain := fmt.Sprintf(
		"Hi %s,\n\nThanks for your report:\n\n%s\n\nIt is now pending review. We will keep you posted.",
		recipient.Fullname, report.Description,
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Thanks for your report:</p><p>%s</p><p>It is now pending review. We will keep you posted.</p>",
		recipient.Fullname, report.Description,
	)
	return m.send(recipient.Fullname, recipient.Email, subject, plain, html)
}

func (m *SendgridMailer) WeeklyDigest(recipient models.UserRef, pendingCount int64) error {
	subject := "Weekly pending reports digest"
	plain := fmt.Sprintf(
		"Hi %s,\n\n%d report(s) submitted in the last week are still pending triage.",
		recipient.Fullname, pendingCount,
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p><strong>%d</strong> report(s) submitted in the last week are still pending triage.</p>",
		recipient.Fullname, pendingCount,
	)
	return m.send(recipient.Fullname, recipient.Email, subject, plain, html)
}
