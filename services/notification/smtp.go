package notification

import (
	"fmt"
	"net/smtp"

	"clinicbook/config"
)

// SMTPClient sends mail through the configured SMTP relay.
type SMTPClient struct {
	Host     string
	Port     int
	Sender   string
	Auth     smtp.Auth
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPClient wires an SMTP client from app configuration.
func NewSMTPClient(cfg config.Config) *SMTPClient {
	var auth smtp.Auth
	if cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return &SMTPClient{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Sender:   cfg.SMTPSender,
		Auth:     auth,
		sendMail: smtp.SendMail,
	}
}

// SendEmail delivers a plain-text message to a single recipient.
func (c *SMTPClient) SendEmail(to, subject, body string) error {
	msg := []byte(fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		to, c.Sender, subject, body))
	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
	if err := c.sendMail(addr, c.Auth, c.Sender, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email via %s: %w", c.Host, err)
	}
	return nil
}
