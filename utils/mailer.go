package utils

import (
	"fmt"

	"github.com/yurayurastudio/studio_backend/config"
	"gopkg.in/gomail.v2"
)

type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends plain text e-mail over SMTP
type Mailer struct {
	dialer mailDialer
	from   string
}

// NewMailer returns nil when SMTP is not configured
func NewMailer(cfg *config.Config) *Mailer {
	if !cfg.MailEnabled() {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailSender(),
	}
}

// Send implements services.Mailer
func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
