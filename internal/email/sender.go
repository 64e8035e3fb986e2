package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig carries the SMTP connection settings, passed in explicitly.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPSender implements Provider over gomail.
type SMTPSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(email *Email) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail))
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)

	contentType := "text/plain"
	if email.HTML {
		contentType = "text/html"
	}
	m.SetBody(contentType, email.Body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	return d.DialAndSend(m)
}
