package dispatch

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// StatusUpdate describes an article status-change email to the author.
type StatusUpdate struct {
	To           string
	Name         string
	ArticleTitle string
	ArticleID    string
	OldStatus    string
	NewStatus    string
	Message      string
	DOI          *string
}

// Mailer sends status-update emails. Implementations are best-effort
// collaborators: the workflow logs failures and moves on.
type Mailer interface {
	SendStatusUpdate(ctx context.Context, update StatusUpdate) error
}

// SMTPMailer sends status-update emails over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates an SMTPMailer.
func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendStatusUpdate sends a single status-change email to the author.
func (m *SMTPMailer) SendStatusUpdate(_ context.Context, update StatusUpdate) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", update.To)
	msg.SetHeader("Subject", fmt.Sprintf("Article Status Update: %s", update.ArticleTitle))
	msg.SetBody("text/html", statusUpdateBody(update))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send status email: %w", err)
	}
	return nil
}

func statusUpdateBody(update StatusUpdate) string {
	body := fmt.Sprintf(
		"Dear %s,<br><br>The status of your article <b>%s</b> has changed from <b>%s</b> to <b>%s</b>.<br><br>%s",
		update.Name, update.ArticleTitle, update.OldStatus, update.NewStatus, update.Message,
	)
	if update.DOI != nil && *update.DOI != "" {
		body += fmt.Sprintf("<br><br>DOI: %s", *update.DOI)
	}
	body += fmt.Sprintf("<br><br>Submission reference: %s", update.ArticleID)
	return body
}
