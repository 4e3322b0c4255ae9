package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/KittyCore/portfolio/internal/metrics"
	"github.com/KittyCore/portfolio/internal/notify"
	"github.com/KittyCore/portfolio/internal/web/flash"
)

// Intake finishes a public form post. Every outcome redirects back to Path.
type Intake struct {
	Kind    string // metric label and log field
	Path    string
	Success string
	Failure string
}

// Rejected answers a post that failed parsing or validation. Nothing was stored.
func (in Intake) Rejected(c *fiber.Ctx, err error, msg string) error {
	log.Debug().Err(err).Str("kind", in.Kind).Msg("form rejected")
	metrics.Submissions.WithLabelValues(in.Kind, metrics.ResultRejected).Inc()

	flash.Error(c, msg)

	return c.Redirect(in.Path)
}

// Stored answers a post after the insert returned err.
// The notification is only queued for a stored submission.
func (in Intake) Stored(c *fiber.Ctx, err error, n notify.Notifier, msg func() notify.Message) error {
	metrics.Submissions.WithLabelValues(in.Kind, metrics.Result(err)).Inc()

	if err != nil {
		log.Error().Err(err).Str("entity", in.Kind).Msg("can't store submission")
		flash.Error(c, in.Failure)

		return c.Redirect(in.Path)
	}

	if n != nil {
		n.NotifyAsync(msg())
	}

	flash.Success(c, in.Success)

	return c.Redirect(in.Path)
}
