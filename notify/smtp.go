// notify/smtp.go - SMTP-backed sender
package notify

import (
	"os"
	"strconv"

	gomail "gopkg.in/gomail.v2"
)

// SMTPSender delivers payloads over SMTP.
type SMTPSender struct {
	dialer *gomail.Dialer
}

// NewSMTPSenderFromEnv builds a sender from the SMTP_* environment
// variables. Returns nil when SMTP_HOST is unset, which disables delivery.
func NewSMTPSenderFromEnv() *SMTPSender {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD")),
	}
}

func (s *SMTPSender) Send(p Payload) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.From)
	m.SetHeader("To", p.To)
	m.SetHeader("Subject", p.Subject)
	m.SetBody("text/plain", p.Text)
	m.AddAlternative("text/html", p.HTML)
	return s.dialer.DialAndSend(m)
}
