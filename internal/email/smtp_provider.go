package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig содержит конфигурацию SMTP сервера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPProvider реализует Provider поверх gomail
type SMTPProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(config *SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (p *SMTPProvider) SendWelcome(to, name string) error {
	subject := "Welcome to HomePro!"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your account is ready. Find trusted professionals or start receiving leads today.</p>",
		name,
	)
	return p.send(to, subject, body)
}

func (p *SMTPProvider) SendLeadPurchased(to, providerName, serviceName string) error {
	subject := "A professional wants your project"
	body := fmt.Sprintf(
		"<p>%s has picked up your %s request and may contact you soon.</p>",
		providerName, serviceName,
	)
	return p.send(to, subject, body)
}

func (p *SMTPProvider) SendBackgroundCheckResult(to string, approved bool) error {
	subject := "Your background check result"
	body := "<p>Your background check is complete and your profile is now active.</p>"
	if !approved {
		body = "<p>We could not approve your background check. Support will reach out with details.</p>"
	}
	return p.send(to, subject, body)
}

func (p *SMTPProvider) Close() error {
	// gomail открывает соединение на каждую отправку
	return nil
}

func (p *SMTPProvider) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
