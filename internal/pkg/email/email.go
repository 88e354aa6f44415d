package email

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendDeadlineReminder(toEmail, toName, internshipTitle, company string, daysLeft int) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendDeadlineReminder notifies an applicant that an internship deadline is
// approaching. With no SMTP credentials configured the message is only
// logged, which keeps development setups working.
func (s *EmailServiceImpl) SendDeadlineReminder(toEmail, toName, internshipTitle, company string, daysLeft int) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("internship", internshipTitle).
			Int("daysLeft", daysLeft).
			Msg("SMTP credentials not configured - deadline reminder not sent.")
		return nil
	}

	subject := fmt.Sprintf("Reminder: %s application deadline in %d day(s)", internshipTitle, daysLeft)

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Application Deadline Approaching</h2>
				<p>Hello %s,</p>
				<p>The application deadline for <strong>%s</strong> at <strong>%s</strong> is in %d day(s).</p>
				<p>Make sure your application and profile are up to date before the deadline passes.</p>
				<p>Best regards,<br>The InternHub Team</p>
			</div>
		</body>
		</html>
	`, toName, internshipTitle, company, daysLeft)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// sendHTMLEmail sends an HTML email
func (s *EmailServiceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	headers["To"] = toEmail
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if err := smtp.SendMail(serverAddress, auth, s.config.FromEmail, []string{toEmail}, []byte(message)); err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
