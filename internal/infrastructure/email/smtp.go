package email

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/gomail.v2"

	"grievance/internal/shared/config"
	"grievance/internal/shared/logger"
	"grievance/internal/shared/services/markdown"
)

// SMTPEmailService delivers account and concern lifecycle emails. Every
// send is retried a bounded number of times; callers treat delivery as
// best effort and never block a request on it.
type SMTPEmailService struct {
	config   config.EmailConfig
	dialer   *gomail.Dialer
	markdown markdown.Service
	logger   logger.Interface

	maxRetries int
	retryDelay time.Duration
}

func NewSMTPEmailService(cfg config.EmailConfig, log logger.Interface) *SMTPEmailService {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 3
	}
	retryDelaySec := cfg.RetryDelaySec
	if retryDelaySec < 1 {
		retryDelaySec = 2
	}

	return &SMTPEmailService{
		config:     cfg,
		dialer:     gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		markdown:   markdown.NewService(),
		logger:     log,
		maxRetries: maxRetries,
		retryDelay: time.Duration(retryDelaySec) * time.Second,
	}
}

var titleCaser = cases.Title(language.English)

func statusLabel(status string) string {
	return titleCaser.String(status)
}

func (s *SMTPEmailService) SendVerificationEmail(to, name, code string) error {
	subject := "Verify Your Email Address"
	body := fmt.Sprintf(`Hi %s,

Thanks for signing up. Your verification code is:

**%s**

The code expires in 15 minutes. If you didn't create an account, you can ignore this email.`, name, code)

	return s.send(to, subject, body)
}

func (s *SMTPEmailService) SendConcernCreatedEmail(to, studentName, ticketNumber, title string) error {
	subject := fmt.Sprintf("Concern Received: %s", ticketNumber)
	body := fmt.Sprintf(`Hi %s,

We received your concern **%s** and assigned it ticket number **%s**.

You will be notified as it moves through review.`, studentName, title, ticketNumber)

	return s.send(to, subject, body)
}

func (s *SMTPEmailService) SendStatusChangedEmail(to, studentName, ticketNumber, oldStatus, newStatus, remarks string) error {
	subject := fmt.Sprintf("Concern %s: %s", ticketNumber, statusLabel(newStatus))
	body := fmt.Sprintf(`Hi %s,

Your concern **%s** moved from %s to **%s**.`, studentName, ticketNumber, statusLabel(oldStatus), statusLabel(newStatus))
	if remarks != "" {
		body += fmt.Sprintf("\n\nRemarks: %s", remarks)
	}

	return s.send(to, subject, body)
}

func (s *SMTPEmailService) SendConcernAssignedEmail(to, studentName, ticketNumber, officeName string) error {
	subject := fmt.Sprintf("Concern %s Assigned", ticketNumber)
	body := fmt.Sprintf(`Hi %s,

Your concern **%s** has been assigned to **%s** for handling.`, studentName, ticketNumber, officeName)

	return s.send(to, subject, body)
}

func (s *SMTPEmailService) SendConcernResolvedEmail(to, studentName, ticketNumber, notes string) error {
	subject := fmt.Sprintf("Concern %s Resolved", ticketNumber)
	body := fmt.Sprintf(`Hi %s,

Your concern **%s** has been resolved.

Resolution notes: %s`, studentName, ticketNumber, notes)

	return s.send(to, subject, body)
}

func (s *SMTPEmailService) SendCommentEmail(to, studentName, ticketNumber, commentText string) error {
	subject := fmt.Sprintf("New Comment on Concern %s", ticketNumber)
	body := fmt.Sprintf(`Hi %s,

A staff member commented on your concern **%s**:

%s`, studentName, ticketNumber, commentText)

	return s.send(to, subject, body)
}

// send renders the markdown body to sanitized HTML and delivers it,
// retrying transient SMTP failures before giving up.
func (s *SMTPEmailService) send(to, subject, body string) error {
	htmlBody, err := s.markdown.ToHTMLSanitized(body)
	if err != nil {
		return fmt.Errorf("failed to render email body: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.AddAlternative("text/html", htmlBody)

	var lastErr error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		if lastErr = s.dialer.DialAndSend(m); lastErr == nil {
			return nil
		}
		s.logger.Warnw("email delivery failed",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"error", lastErr,
		)
		if attempt < s.maxRetries {
			time.Sleep(s.retryDelay)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", s.maxRetries, lastErr)
}
