package sender

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPSender delivers email over SMTP.
type SMTPSender struct {
	dialer *gomail.Dialer
}

func NewSMTPSender(host string, port int, username, password string) (*SMTPSender, error) {
	if host == "" {
		return nil, fmt.Errorf("SMTP host not set")
	}
	if username == "" || password == "" {
		return nil, fmt.Errorf("SMTP credentials not set")
	}
	return &SMTPSender{dialer: gomail.NewDialer(host, port, username, password)}, nil
}

func (s *SMTPSender) Send(from, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
