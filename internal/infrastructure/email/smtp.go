package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"pulsegym/internal/domain/retention"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendRetentionEmail sends the we-miss-you outreach for a member flagged by
// the risk engine. Copy is deliberately soft; the risk level only steers the
// subject line urgency.
func (s *SMTPEmailService) SendRetentionEmail(to, memberName string, level retention.RiskLevel) error {
	subject := "We miss you at the gym!"
	if level == retention.RiskLevelCritical {
		subject = "Your membership - let's catch up"
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hi %s,</h2>
			<p>It's been a while since your last visit and we'd love to see you back.</p>
			<p>Your membership gives you access to all classes and facilities - check the
			schedule and book your next session:</p>
			<p><a href="%s/schedule">View the class schedule</a></p>
			<p>If anything is getting in the way of your training, reply to this email
			and we'll help you sort it out.</p>
			<p>See you soon!</p>
		</body>
		</html>
	`, memberName, s.config.BaseURL)

	plainBody := fmt.Sprintf(`
Hi %s,

It's been a while since your last visit and we'd love to see you back.

Your membership gives you access to all classes and facilities. Check the
schedule and book your next session: %s/schedule

If anything is getting in the way of your training, reply to this email and
we'll help you sort it out.

See you soon!
	`, memberName, s.config.BaseURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
