package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"

	"github.com/KittyCore/portfolio/internal/config"
)

// ErrNotConfigured is returned when sender address or password are missing.
var ErrNotConfigured = errors.New("email settings not configured")

// Sender delivers one message synchronously.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// transport is the part of *mail.Client used for delivery.
type transport interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// dialFunc creates a transport for port. implicitTLS selects SMTPS instead of STARTTLS.
type dialFunc func(cfg config.Mail, port int, implicitTLS bool) (transport, error)

// SMTPSender sends over STARTTLS and falls back to implicit TLS once.
type SMTPSender struct {
	cfg  config.Mail
	dial dialFunc
}

// NewSMTPSender returns a sender for the given mail settings.
func NewSMTPSender(cfg config.Mail) *SMTPSender {
	return &SMTPSender{cfg: cfg, dial: dialSMTP}
}

func dialSMTP(cfg config.Mail, port int, implicitTLS bool) (transport, error) {
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Sender),
		mail.WithPassword(cfg.Password),
	}

	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}

	if implicitTLS {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client for port %d: %w", port, err)
	}

	return client, nil
}

func (s *SMTPSender) build(msg Message) (*mail.Msg, error) {
	inbox := s.cfg.Inbox
	if inbox == "" {
		inbox = s.cfg.Sender
	}

	m := mail.NewMsg()

	if err := m.From(s.cfg.Sender); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}

	if err := m.To(inbox); err != nil {
		return nil, fmt.Errorf("invalid inbox address: %w", err)
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	return m, nil
}

// attempt delivers m over one port. Each attempt gets its own Timeout, so a hanging
// primary port leaves the fallback a full deadline.
func (s *SMTPSender) attempt(ctx context.Context, port int, implicitTLS bool, m *mail.Msg) error {
	client, err := s.dial(s.cfg, port, implicitTLS)
	if err != nil {
		return err
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	return client.DialAndSendWithContext(ctx, m) //nolint:wrapcheck
}

// Send implements Sender.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if s.cfg.Sender == "" || s.cfg.Password == "" {
		return ErrNotConfigured
	}

	m, err := s.build(msg)
	if err != nil {
		return err
	}

	primaryErr := s.attempt(ctx, s.cfg.Port, false, m)
	if primaryErr == nil {
		return nil
	}

	log.Debug().Err(primaryErr).Int("port", s.cfg.Port).Str("kind", msg.Kind).Msg("smtp send failed, trying fallback port")

	fallbackErr := s.attempt(ctx, s.cfg.FallbackPort, true, m)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("%d error: %w; %d error: %w", s.cfg.Port, primaryErr, s.cfg.FallbackPort, fallbackErr)
}
