package mailing

import (
	"errors"
	"strconv"

	"ecotrack/internal/utils"

	"gopkg.in/gomail.v2"
)

var ErrMailNotConfigured = errors.New("SMTP host is not configured")

type MailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

// Dialer is satisfied by *gomail.Dialer.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer interface {
	SendMail(toEmail string, subject string, body string) error
}

type mailer struct {
	config MailConfig
	dialer Dialer
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func NewMailer(config MailConfig) (Mailer, error) {
	if config.SMTPHost == "" {
		return nil, ErrMailNotConfigured
	}
	port, err := strconv.Atoi(config.SMTPPort)
	if err != nil {
		return nil, err
	}
	dialer := gomail.NewDialer(
		config.SMTPHost,
		port,
		config.SMTPEmail,
		config.SMTPPassword,
	)
	return NewMailerWithDialer(config, dialer), nil
}

func NewMailerWithDialer(config MailConfig, dialer Dialer) Mailer {
	return &mailer{config: config, dialer: dialer}
}

func (m *mailer) SendMail(toEmail string, subject string, body string) error {
	return m.dialer.DialAndSend(m.buildMessage(toEmail, subject, body))
}

func (m *mailer) buildMessage(toEmail string, subject string, body string) *gomail.Message {
	message := gomail.NewMessage()
	if m.config.SMTPSender != "" {
		message.SetAddressHeader("From", m.config.SMTPEmail, m.config.SMTPSender)
	} else {
		message.SetHeader("From", m.config.SMTPEmail)
	}
	message.SetHeader("To", toEmail)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", body)
	return message
}
