package notifier

import (
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type SMTPNotifier struct {
	config SMTPConfig
}

func NewSMTP(config SMTPConfig) (*SMTPNotifier, error) {
	if config.Username == "" || config.Password == "" {
		return nil, fmt.Errorf("SMTP credentials are not configured")
	}

	if config.From == "" {
		config.From = config.Username
	}

	return &SMTPNotifier{config: config}, nil
}

func (n *SMTPNotifier) Send(recipient, subject, body string) error {
	addr := net.JoinHostPort(n.config.Host, n.config.Port)
	auth := smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)

	msg := strings.Join([]string{
		"From: " + n.config.From,
		"To: " + recipient,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(addr, auth, n.config.From, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", recipient, err)
	}

	return nil
}
