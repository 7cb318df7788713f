package email

import (
	"fmt"
	"time"

	"flohmarkt_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// GomailProvider sends mail over SMTP. Every send runs under a bounded
// timeout so a slow mail provider cannot stall a buyer-facing request.
type GomailProvider struct {
	cfg     *config.Config
	timeout time.Duration
}

func NewGomailProvider(cfg *config.Config) *GomailProvider {
	return &GomailProvider{
		cfg:     cfg,
		timeout: time.Duration(cfg.Email.TimeoutSec) * time.Second,
	}
}

func (p *GomailProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain; charset=UTF-8", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUser,
		p.cfg.Email.SMTPPassword,
	)

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(m)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(p.timeout):
		return fmt.Errorf("email send to %s timed out after %s", to, p.timeout)
	}
}
