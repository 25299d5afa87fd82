package dispatch

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"remotesms/internal/domain"
)

// Poller pulls inbound messages from the gateway and dispatches them.
type Poller struct {
	messages   domain.MessageService
	dispatcher *Dispatcher
	me         domain.Address
	interval   time.Duration
	limit      int
	log        zerolog.Logger
}

// NewPoller returns a Poller for the mailbox me.
func NewPoller(
	messages domain.MessageService,
	dispatcher *Dispatcher,
	me domain.Address,
	interval time.Duration,
	limit int,
	log zerolog.Logger,
) *Poller {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Poller{
		messages:   messages,
		dispatcher: dispatcher,
		me:         me,
		interval:   interval,
		limit:      limit,
		log:        log.With().Str("component", "poller").Str("me", me.String()).Logger(),
	}
}

// Poll runs one receive-and-dispatch round. Nothing is dispatched when the
// receive failed, since the gateway may still hold those messages.
func (p *Poller) Poll(ctx context.Context) ([]Outcome, error) {
	msgs, err := p.messages.ReceiveMessages(ctx, p.me, p.limit)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return nil, nil
	}
	return p.dispatcher.HandleBatch(ctx, msgs), nil
}

// Run polls until ctx is cancelled. Gateway errors are logged and retried
// on the next tick.
func (p *Poller) Run(ctx context.Context) error {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	p.log.Info().Dur("interval", p.interval).Msg("polling")
	for {
		if _, err := p.Poll(ctx); err != nil && ctx.Err() == nil {
			p.log.Error().Err(err).Msg("poll failed")
		}
		select {
		case <-ctx.Done():
			p.log.Info().Msg("stopped")
			return nil
		case <-t.C:
		}
	}
}
