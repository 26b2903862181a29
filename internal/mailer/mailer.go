// Package mailer sends the account activation email. Delivery is
// best-effort: a failed send never fails the registration that
// triggered it.
package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/gentleday/gentleday/internal/logger"
)

// Dispatcher delivers transactional mail.
type Dispatcher interface {
	SendActivation(to, link string) error
}

// SMTP sends mail through a plain SMTP relay.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func NewSMTP(host string, port int, username, password, from string) *SMTP {
	return &SMTP{Host: host, Port: port, Username: username, Password: password, From: from}
}

func (m *SMTP) SendActivation(to, link string) error {
	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Confirm your gentleday account\r\n"+
		"MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n"+
		"Welcome to gentleday.\r\n\r\n"+
		"Open this link to activate your account:\r\n\r\n%s\r\n\r\n"+
		"The link expires in 48 hours. If you did not register, ignore this email.\r\n",
		m.From, to, link)

	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	if err := smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send activation mail: %w", err)
	}
	return nil
}

// Log writes the activation link to the log instead of sending mail.
// Used in development and by the CLI's local mode.
type Log struct{}

func (Log) SendActivation(to, link string) error {
	logger.Info("activation link (mail disabled)", "to", to, "link", link)
	return nil
}
