package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/KittyCore/portfolio/internal/metrics"
)

// Notifier schedules a notification without waiting for it.
type Notifier interface {
	NotifyAsync(msg Message)
}

// Dispatcher runs every notification in its own goroutine.
// The outcome is logged and counted, never reported to the caller.
type Dispatcher struct {
	sender  Sender
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewDispatcher returns a dispatcher. timeout bounds one Send including its fallback attempt.
func NewDispatcher(sender Sender, timeout time.Duration) *Dispatcher {
	return &Dispatcher{sender: sender, timeout: timeout}
}

// NotifyAsync implements Notifier.
func (d *Dispatcher) NotifyAsync(msg Message) {
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()

		err := d.send(msg)

		metrics.Notifications.WithLabelValues(msg.Kind, metrics.Result(err)).Inc()

		if err != nil {
			log.Error().Err(err).Str("kind", msg.Kind).Str("subject", msg.Subject).Msg("notification failed")

			return
		}

		log.Info().Str("kind", msg.Kind).Msg("notification sent")
	}()
}

func (d *Dispatcher) send(msg Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notification panic: %v", r) //nolint:err113
		}
	}()

	ctx := context.Background()

	if d.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	return d.sender.Send(ctx, msg)
}

// Wait blocks until all started notifications finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
