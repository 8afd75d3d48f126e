package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/docspot/booking-api/internal/config"
)

// Service mirrors workflow notifications over SMTP. Deliveries are
// best-effort; the workflow logs failures and moves on.
type Service interface {
	Send(to, subject, body string) error
}

func NewService(cfg config.SMTPConfig) Service {
	if cfg.Host == "" {
		return &noopService{}
	}
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

func (s *smtpService) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

type noopService struct{}

func (s *noopService) Send(to, subject, body string) error {
	return nil
}
