package email

import (
	"errors"

	"flohmarkt_backend/internal/config"
)

// ErrNotConfigured is returned by the no-op provider. Missing SMTP
// credentials degrade every send to a reported failure, never a panic.
var ErrNotConfigured = errors.New("email transport is not configured")

// Provider is the outbound-email collaborator. Send is best-effort: callers
// record the outcome but never let a failure undo a committed write.
type Provider interface {
	Send(to, subject, body string) error
}

// NewProvider picks the SMTP provider when credentials exist, otherwise the
// no-op.
func NewProvider(cfg *config.Config) Provider {
	if cfg.Email.SMTPHost == "" || cfg.Email.FromEmail == "" {
		return &NoopProvider{}
	}
	return NewGomailProvider(cfg)
}

// NoopProvider reports failure for every send.
type NoopProvider struct{}

func (p *NoopProvider) Send(to, subject, body string) error {
	return ErrNotConfigured
}
