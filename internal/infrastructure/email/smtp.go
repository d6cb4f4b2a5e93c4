package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"warsztat/internal/domain/request"
	"warsztat/internal/shared/services/markdown"
)

type SMTPConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	FromAddress   string
	FromName      string
	NotifyAddress string // workshop inbox that receives new-request notifications
}

// SMTPEmailService notifies the workshop inbox about new service requests.
// Request subjects are treated as markdown and sanitized before they land in
// an HTML body.
type SMTPEmailService struct {
	config   SMTPConfig
	dialer   *gomail.Dialer
	markdown markdown.MarkdownService
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config:   config,
		dialer:   dialer,
		markdown: markdown.NewMarkdownService(),
	}
}

func (s *SMTPEmailService) SendRequestReceived(req *request.ServiceRequest) error {
	subject := fmt.Sprintf("Nowe zgłoszenie: %s %s", req.FirstName(), req.LastName())

	subjectHTML, err := s.markdown.ToHTMLSanitized(req.Subject())
	if err != nil {
		return fmt.Errorf("failed to render request subject: %w", err)
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Nowe zgłoszenie serwisowe</h2>
			<p><strong>Imię i nazwisko:</strong> %s %s</p>
			<p><strong>Telefon:</strong> %s</p>
			<p><strong>Termin:</strong> %s</p>
			<p><strong>Data zgłoszenia:</strong> %s</p>
			<h3>Opis</h3>
			%s
		</body>
		</html>
	`,
		req.FirstName(), req.LastName(),
		req.Phone(),
		req.Slot(),
		req.CreatedAt().Format(time.DateTime),
		subjectHTML,
	)

	plainBody := fmt.Sprintf(`
Nowe zgłoszenie serwisowe

Imię i nazwisko: %s %s
Telefon: %s
Termin: %s
Data zgłoszenia: %s

Opis:
%s
	`,
		req.FirstName(), req.LastName(),
		req.Phone(),
		req.Slot(),
		req.CreatedAt().Format(time.DateTime),
		req.Subject(),
	)

	return s.sendEmail(s.config.NotifyAddress, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
